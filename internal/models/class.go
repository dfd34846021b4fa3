package models

import "time"

// Class playable class
type Class struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"column:nome;uniqueIndex;not null" json:"nome"`
	Description      string    `gorm:"column:descricao;type:text" json:"descricao"`
	HitDie           int       `gorm:"column:dado_vida;not null" json:"dadoVida"`
	PrimaryAttribute string    `gorm:"column:atributo_principal;type:varchar(32)" json:"atributoPrincipal"`
	Skills           []Skill   `gorm:"foreignKey:ClassID" json:"habilidades,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TableName table name
func (Class) TableName() string {
	return "classes"
}
