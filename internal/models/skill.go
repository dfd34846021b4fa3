package models

import "time"

// Skill class skill, unlocked at MinLevel
type Skill struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ClassID     uint      `gorm:"uniqueIndex:idx_skill_class_name;not null" json:"classeId"`
	Name        string    `gorm:"column:nome;uniqueIndex:idx_skill_class_name;not null" json:"nome"`
	Description string    `gorm:"column:descricao;type:text" json:"descricao"`
	MinLevel    int       `gorm:"column:nivel_minimo;not null;default:1" json:"nivelMinimo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName table name
func (Skill) TableName() string {
	return "skills"
}
