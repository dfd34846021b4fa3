package service

import (
	"context"

	"github.com/rpg-companion/api/internal/cache"
	"github.com/rpg-companion/api/internal/models"
	"github.com/rpg-companion/api/internal/repository"
)

// CatalogService read-only races, classes and skills, cached in Redis
type CatalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates the catalog service
func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListRaces lists races
func (s *CatalogService) ListRaces(ctx context.Context) ([]models.Race, error) {
	return cache.Remember(ctx, cache.CatalogRacesKey(), cache.CatalogTTL, func() ([]models.Race, error) {
		return s.repo.ListRaces()
	})
}

// GetRace loads a race
func (s *CatalogService) GetRace(ctx context.Context, id uint) (*models.Race, error) {
	if id == 0 {
		return nil, ErrRaceNotFound
	}
	return cache.Remember(ctx, cache.CatalogRaceKey(id), cache.CatalogTTL, func() (*models.Race, error) {
		race, err := s.repo.GetRaceByID(id)
		if err != nil {
			return nil, err
		}
		if race == nil {
			return nil, ErrRaceNotFound
		}
		return race, nil
	})
}

// ListClasses lists classes without skills
func (s *CatalogService) ListClasses(ctx context.Context) ([]models.Class, error) {
	return cache.Remember(ctx, cache.CatalogClassesKey(), cache.CatalogTTL, func() ([]models.Class, error) {
		return s.repo.ListClasses()
	})
}

// GetClass loads a class with its skills
func (s *CatalogService) GetClass(ctx context.Context, id uint) (*models.Class, error) {
	if id == 0 {
		return nil, ErrClassNotFound
	}
	return cache.Remember(ctx, cache.CatalogClassKey(id), cache.CatalogTTL, func() (*models.Class, error) {
		class, err := s.repo.GetClassByID(id, true)
		if err != nil {
			return nil, err
		}
		if class == nil {
			return nil, ErrClassNotFound
		}
		return class, nil
	})
}

// ListClassSkills lists the skills of a class, optionally up to maxLevel
func (s *CatalogService) ListClassSkills(ctx context.Context, classID uint, maxLevel int) ([]models.Skill, error) {
	if _, err := s.GetClass(ctx, classID); err != nil {
		return nil, err
	}
	return s.ListSkills(ctx, classID, maxLevel)
}

// ListSkills lists skills filtered by class and level
func (s *CatalogService) ListSkills(ctx context.Context, classID uint, maxLevel int) ([]models.Skill, error) {
	if maxLevel < 0 {
		maxLevel = 0
	}
	return cache.Remember(ctx, cache.CatalogSkillsKey(classID, maxLevel), cache.CatalogTTL, func() ([]models.Skill, error) {
		return s.repo.ListSkills(repository.SkillListFilter{ClassID: classID, MaxLevel: maxLevel})
	})
}

// SearchSkills matches skills by name; results are not cached
func (s *CatalogService) SearchSkills(term string) ([]models.Skill, error) {
	return s.repo.ListSkills(repository.SkillListFilter{Search: term})
}
