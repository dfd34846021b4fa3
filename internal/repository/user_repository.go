package repository

import (
	"errors"
	"time"

	"github.com/rpg-companion/api/internal/models"

	"gorm.io/gorm"
)

// UserRepository credential store
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByNickname(nickname string) (*models.User, error)
	Create(user *models.User) error
	TouchLastLogin(id string, at time.Time) error
	SetResetToken(id, digest string, expiry time.Time) error
	ConsumeResetToken(digest, passwordHash string, now time.Time) (bool, error)
}

// GormUserRepository GORM implementation
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the user repository
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByID loads a user by id
func (r *GormUserRepository) GetByID(id string) (*models.User, error) {
	return r.first("id = ?", id)
}

// GetByEmail loads a user by exact email
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.first("email = ?", email)
}

// GetByNickname loads a user by exact nickname
func (r *GormUserRepository) GetByNickname(nickname string) (*models.User, error) {
	return r.first("nickname = ?", nickname)
}

func (r *GormUserRepository) first(query string, arg interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a user. Unique violations surface as gorm.ErrDuplicatedKey.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// TouchLastLogin records a successful login
func (r *GormUserRepository) TouchLastLogin(id string, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_login_at": at,
		"updated_at":    at,
	}).Error
}

// SetResetToken stores a reset token digest together with its expiry
func (r *GormUserRepository) SetResetToken(id, digest string, expiry time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_token":        digest,
		"reset_token_expiry": expiry,
		"updated_at":         time.Now().UTC(),
	}).Error
}

// ConsumeResetToken replaces the password of the user holding an unexpired
// token and clears the token in the same statement. It reports false when no
// row matched, which covers unknown, expired and already used tokens alike.
func (r *GormUserRepository) ConsumeResetToken(digest, passwordHash string, now time.Time) (bool, error) {
	result := r.db.Model(&models.User{}).
		Where("reset_token = ? AND reset_token_expiry >= ?", digest, now).
		Updates(map[string]interface{}{
			"password_hash":      passwordHash,
			"reset_token":        nil,
			"reset_token_expiry": nil,
			"updated_at":         now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
