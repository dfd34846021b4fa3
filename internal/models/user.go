package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User player account
type User struct {
	ID               string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	DisplayName      string     `gorm:"column:nome;not null" json:"nome"`
	Nickname         string     `gorm:"uniqueIndex;not null" json:"nickname"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	ResetToken       *string    `gorm:"index" json:"-"` // sha256 digest of the outstanding reset token
	ResetTokenExpiry *time.Time `json:"-"`
	LastLoginAt      *time.Time `json:"lastLoginAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// TableName table name
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an opaque id
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// HasActiveResetToken reports whether a reset token is outstanding and still
// valid at now.
func (u *User) HasActiveResetToken(now time.Time) bool {
	if u == nil || u.ResetToken == nil || u.ResetTokenExpiry == nil {
		return false
	}
	return !now.After(*u.ResetTokenExpiry)
}
