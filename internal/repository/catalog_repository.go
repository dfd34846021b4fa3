package repository

import (
	"errors"

	"github.com/rpg-companion/api/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository read access to races, classes and skills
type CatalogRepository interface {
	ListRaces() ([]models.Race, error)
	GetRaceByID(id uint) (*models.Race, error)
	ListClasses() ([]models.Class, error)
	GetClassByID(id uint, withSkills bool) (*models.Class, error)
	ListSkills(filter SkillListFilter) ([]models.Skill, error)
	ListSkillsByIDs(ids []uint) ([]models.Skill, error)
}

// GormCatalogRepository GORM implementation
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates the catalog repository
func NewCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ListRaces lists every race
func (r *GormCatalogRepository) ListRaces() ([]models.Race, error) {
	var races []models.Race
	if err := r.db.Order("id asc").Find(&races).Error; err != nil {
		return nil, err
	}
	return races, nil
}

// GetRaceByID loads a race
func (r *GormCatalogRepository) GetRaceByID(id uint) (*models.Race, error) {
	var race models.Race
	if err := r.db.First(&race, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &race, nil
}

// ListClasses lists every class
func (r *GormCatalogRepository) ListClasses() ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.Order("id asc").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// GetClassByID loads a class, optionally with its skills ordered by level
func (r *GormCatalogRepository) GetClassByID(id uint, withSkills bool) (*models.Class, error) {
	query := r.db
	if withSkills {
		query = query.Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("nivel_minimo asc, id asc")
		})
	}
	var class models.Class
	if err := query.First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

// ListSkills lists skills
func (r *GormCatalogRepository) ListSkills(filter SkillListFilter) ([]models.Skill, error) {
	query := r.db.Model(&models.Skill{})
	if filter.ClassID != 0 {
		query = query.Where("class_id = ?", filter.ClassID)
	}
	if filter.MaxLevel > 0 {
		query = query.Where("nivel_minimo <= ?", filter.MaxLevel)
	}
	if filter.Search != "" {
		query = query.Where(containsCondition(r.db, "nome"), containsPattern(filter.Search))
	}
	var skills []models.Skill
	if err := query.Order("class_id asc, nivel_minimo asc, id asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// ListSkillsByIDs loads skills by id
func (r *GormCatalogRepository) ListSkillsByIDs(ids []uint) ([]models.Skill, error) {
	if len(ids) == 0 {
		return []models.Skill{}, nil
	}
	var skills []models.Skill
	if err := r.db.Where("id IN ?", ids).Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
