package models

import "time"

// LoginAttempt login audit record
// Both successful and failed attempts are stored; UserID is empty when the
// identifier matched no account.
type LoginAttempt struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      string    `gorm:"type:varchar(36);index" json:"userId"`
	Identifier  string    `gorm:"index;not null" json:"identifier"`
	Status      string    `gorm:"type:varchar(16);index;not null" json:"status"`
	FailReason  string    `gorm:"type:varchar(32);index" json:"failReason"`
	ClientIP    string    `gorm:"type:varchar(64);index" json:"clientIp"`
	UserAgent   string    `gorm:"type:text" json:"userAgent"`
	LoginSource string    `gorm:"type:varchar(32)" json:"loginSource"`
	RequestID   string    `gorm:"type:varchar(64);index" json:"requestId"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

// TableName table name
func (LoginAttempt) TableName() string {
	return "login_attempts"
}
