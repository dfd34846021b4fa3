package repository

import (
	"time"

	"github.com/rpg-companion/api/internal/models"

	"gorm.io/gorm"
)

// LoginAttemptRepository login audit log store
type LoginAttemptRepository interface {
	Create(attempt *models.LoginAttempt) error
	ListByUser(filter LoginAttemptListFilter) ([]models.LoginAttempt, int64, error)
	DeleteBefore(cutoff time.Time) (int64, error)
}

// GormLoginAttemptRepository GORM implementation
type GormLoginAttemptRepository struct {
	db *gorm.DB
}

// NewLoginAttemptRepository creates the login attempt repository
func NewLoginAttemptRepository(db *gorm.DB) *GormLoginAttemptRepository {
	return &GormLoginAttemptRepository{db: db}
}

// Create stores an attempt
func (r *GormLoginAttemptRepository) Create(attempt *models.LoginAttempt) error {
	if attempt == nil {
		return nil
	}
	return r.db.Create(attempt).Error
}

// ListByUser lists a user's attempts, newest first
func (r *GormLoginAttemptRepository) ListByUser(filter LoginAttemptListFilter) ([]models.LoginAttempt, int64, error) {
	query := r.db.Model(&models.LoginAttempt{}).Where("user_id = ?", filter.UserID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = query.Scopes(paginate(filter.Page, filter.PageSize))

	var attempts []models.LoginAttempt
	if err := query.Order("id desc").Find(&attempts).Error; err != nil {
		return nil, 0, err
	}
	return attempts, total, nil
}

// DeleteBefore removes attempts older than cutoff
func (r *GormLoginAttemptRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.LoginAttempt{})
	return result.RowsAffected, result.Error
}
