package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Character player character, owned by exactly one user
type Character struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	Name      string    `gorm:"column:nome;not null" json:"nome"`
	RaceID    uint      `gorm:"index;not null" json:"racaId"`
	ClassID   uint      `gorm:"index;not null" json:"classeId"`
	Level     int       `gorm:"column:nivel;not null;default:1" json:"nivel"`
	Backstory string    `gorm:"column:historia;type:text" json:"historia"`
	Race      *Race     `gorm:"foreignKey:RaceID" json:"raca,omitempty"`
	Class     *Class    `gorm:"foreignKey:ClassID" json:"classe,omitempty"`
	Skills    []Skill   `gorm:"many2many:character_skills;" json:"habilidades"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName table name
func (Character) TableName() string {
	return "characters"
}

// BeforeCreate assigns an opaque id
func (c *Character) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
