package repository

import "time"

// LoginAttemptListFilter login log list filter
type LoginAttemptListFilter struct {
	Page        int
	PageSize    int
	UserID      string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// SkillListFilter skill list filter
type SkillListFilter struct {
	ClassID  uint
	MaxLevel int
	Search   string
}

// CharacterListFilter character list filter
type CharacterListFilter struct {
	Page     int
	PageSize int
	UserID   string
	ClassID  uint
	RaceID   uint
	Search   string
}
