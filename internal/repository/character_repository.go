package repository

import (
	"errors"

	"github.com/rpg-companion/api/internal/models"

	"gorm.io/gorm"
)

// CharacterRepository character store
type CharacterRepository interface {
	GetByID(id string) (*models.Character, error)
	ListByUser(filter CharacterListFilter) ([]models.Character, int64, error)
	Create(character *models.Character) error
	Update(character *models.Character) error
	Delete(id string) error
}

// GormCharacterRepository GORM implementation
type GormCharacterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository creates the character repository
func NewCharacterRepository(db *gorm.DB) *GormCharacterRepository {
	return &GormCharacterRepository{db: db}
}

func (r *GormCharacterRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Race").Preload("Class").Preload("Skills", func(db *gorm.DB) *gorm.DB {
		return db.Order("skills.nivel_minimo asc, skills.id asc")
	})
}

// GetByID loads a character with race, class and skills
func (r *GormCharacterRepository) GetByID(id string) (*models.Character, error) {
	var character models.Character
	if err := r.withRelations(r.db).Where("id = ?", id).First(&character).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &character, nil
}

// ListByUser lists the characters of one user, newest first
func (r *GormCharacterRepository) ListByUser(filter CharacterListFilter) ([]models.Character, int64, error) {
	query := r.db.Model(&models.Character{}).Where("user_id = ?", filter.UserID)
	if filter.ClassID != 0 {
		query = query.Where("class_id = ?", filter.ClassID)
	}
	if filter.RaceID != 0 {
		query = query.Where("race_id = ?", filter.RaceID)
	}
	if filter.Search != "" {
		query = query.Where(containsCondition(r.db, "nome"), containsPattern(filter.Search))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = query.Scopes(paginate(filter.Page, filter.PageSize))

	var characters []models.Character
	if err := r.withRelations(query).Order("created_at desc, id desc").Find(&characters).Error; err != nil {
		return nil, 0, err
	}
	return characters, total, nil
}

// Create inserts a character and its skill links
func (r *GormCharacterRepository) Create(character *models.Character) error {
	return r.db.Create(character).Error
}

// Update saves scalar fields and replaces the skill set
func (r *GormCharacterRepository) Update(character *models.Character) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(character).Select("nome", "race_id", "class_id", "nivel", "historia", "updated_at").
			Updates(character).Error; err != nil {
			return err
		}
		return tx.Model(character).Association("Skills").Replace(character.Skills)
	})
}

// Delete removes a character and its skill links
func (r *GormCharacterRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		character := &models.Character{ID: id}
		if err := tx.Model(character).Association("Skills").Clear(); err != nil {
			return err
		}
		return tx.Delete(character).Error
	})
}
