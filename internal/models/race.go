package models

import "time"

// AttributeBonus attribute modifiers granted by a race
type AttributeBonus struct {
	Strength     int `gorm:"column:forca;not null;default:0" json:"forca"`
	Dexterity    int `gorm:"column:destreza;not null;default:0" json:"destreza"`
	Constitution int `gorm:"column:constituicao;not null;default:0" json:"constituicao"`
	Intelligence int `gorm:"column:inteligencia;not null;default:0" json:"inteligencia"`
	Wisdom       int `gorm:"column:sabedoria;not null;default:0" json:"sabedoria"`
	Charisma     int `gorm:"column:carisma;not null;default:0" json:"carisma"`
}

// Race playable race
type Race struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"column:nome;uniqueIndex;not null" json:"nome"`
	Description string         `gorm:"column:descricao;type:text" json:"descricao"`
	Bonus       AttributeBonus `gorm:"embedded;embeddedPrefix:bonus_" json:"bonus"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TableName table name
func (Race) TableName() string {
	return "races"
}
