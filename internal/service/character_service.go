package service

import (
	"context"
	"strings"

	"github.com/rpg-companion/api/internal/constants"
	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/models"
	"github.com/rpg-companion/api/internal/repository"
)

// CharacterAuthorizer decides whether a user may act on a character
type CharacterAuthorizer interface {
	CanAccess(userID, ownerID, action string) (bool, error)
}

// CharacterService player characters
type CharacterService struct {
	repo    repository.CharacterRepository
	catalog repository.CatalogRepository
	authz   CharacterAuthorizer
}

// NewCharacterService creates the character service
func NewCharacterService(repo repository.CharacterRepository, catalog repository.CatalogRepository, authz CharacterAuthorizer) *CharacterService {
	return &CharacterService{repo: repo, catalog: catalog, authz: authz}
}

// CharacterInput create and full update request
type CharacterInput struct {
	Name      string `json:"nome" validate:"required,min=2,max=100"`
	RaceID    uint   `json:"racaId" validate:"required"`
	ClassID   uint   `json:"classeId" validate:"required"`
	Level     *int   `json:"nivel"`
	Backstory string `json:"historia" validate:"max=5000"`
	SkillIDs  []uint `json:"habilidadeIds"`
}

// CharacterListInput list request
type CharacterListInput struct {
	Page     int
	PageSize int
	ClassID  uint
	RaceID   uint
	Search   string
}

// Create creates a character owned by userID
func (s *CharacterService) Create(ctx context.Context, userID string, input CharacterInput) (*models.Character, error) {
	character := &models.Character{UserID: userID}
	if err := s.apply(character, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(character); err != nil {
		return nil, err
	}
	logger.Infow("character_created", "user_id", userID, "character_id", character.ID)
	return s.reload(character.ID)
}

// Get loads a character the caller owns
func (s *CharacterService) Get(ctx context.Context, userID, id string) (*models.Character, error) {
	return s.loadAuthorized(userID, id, constants.CharacterActionRead)
}

// List lists the caller's characters
func (s *CharacterService) List(ctx context.Context, userID string, input CharacterListInput) ([]models.Character, int64, error) {
	page, pageSize := normalizePage(input.Page, input.PageSize)
	return s.repo.ListByUser(repository.CharacterListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		ClassID:  input.ClassID,
		RaceID:   input.RaceID,
		Search:   strings.TrimSpace(input.Search),
	})
}

// Update replaces a character's editable fields
func (s *CharacterService) Update(ctx context.Context, userID, id string, input CharacterInput) (*models.Character, error) {
	character, err := s.loadAuthorized(userID, id, constants.CharacterActionUpdate)
	if err != nil {
		return nil, err
	}
	if err := s.apply(character, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(character); err != nil {
		return nil, err
	}
	return s.reload(character.ID)
}

// Delete removes a character
func (s *CharacterService) Delete(ctx context.Context, userID, id string) error {
	character, err := s.loadAuthorized(userID, id, constants.CharacterActionDelete)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(character.ID); err != nil {
		return err
	}
	logger.Infow("character_deleted", "user_id", userID, "character_id", character.ID)
	return nil
}

// loadAuthorized hides characters of other users behind ErrCharacterNotFound
func (s *CharacterService) loadAuthorized(userID, id, action string) (*models.Character, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(userID) == "" {
		return nil, ErrCharacterNotFound
	}
	character, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}
	allowed, err := s.canAccess(userID, character.UserID, action)
	if err != nil {
		return nil, err
	}
	if !allowed {
		logger.Debugw("character_access_denied", "user_id", userID, "character_id", id, "action", action)
		return nil, ErrCharacterNotFound
	}
	return character, nil
}

func (s *CharacterService) canAccess(userID, ownerID, action string) (bool, error) {
	if s.authz == nil {
		return userID == ownerID, nil
	}
	return s.authz.CanAccess(userID, ownerID, action)
}

// apply validates input against the catalog and copies it onto character
func (s *CharacterService) apply(character *models.Character, input CharacterInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Backstory = strings.TrimSpace(input.Backstory)
	if err := validateStruct(input); err != nil {
		return err
	}
	level := constants.CharacterMinLevel
	if input.Level != nil {
		level = *input.Level
	}
	if level < constants.CharacterMinLevel || level > constants.CharacterMaxLevel {
		return newValidationError("error.validation_range", "nivel", constants.CharacterMinLevel, constants.CharacterMaxLevel)
	}

	race, err := s.catalog.GetRaceByID(input.RaceID)
	if err != nil {
		return err
	}
	if race == nil {
		return ErrRaceNotFound
	}
	class, err := s.catalog.GetClassByID(input.ClassID, false)
	if err != nil {
		return err
	}
	if class == nil {
		return ErrClassNotFound
	}

	skills, err := s.resolveSkills(input.SkillIDs, class.ID, level)
	if err != nil {
		return err
	}

	character.Name = input.Name
	character.RaceID = race.ID
	character.ClassID = class.ID
	character.Level = level
	character.Backstory = input.Backstory
	character.Skills = skills
	character.Race = nil
	character.Class = nil
	return nil
}

func (s *CharacterService) resolveSkills(ids []uint, classID uint, level int) ([]models.Skill, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return nil, ErrSkillNotFound
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	skills, err := s.catalog.ListSkillsByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(skills) != len(unique) {
		return nil, ErrSkillNotFound
	}
	for _, skill := range skills {
		if skill.ClassID != classID || skill.MinLevel > level {
			return nil, ErrSkillInvalid
		}
	}
	return skills, nil
}

func (s *CharacterService) reload(id string) (*models.Character, error) {
	character, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}
	return character, nil
}
