package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ValidDifficulty reports whether d is one of the card difficulty tags.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Card is a front/back pair belonging to exactly one deck.
type Card struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID     uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	Front      string    `gorm:"type:text;not null" json:"front"`
	Back       string    `gorm:"type:text;not null" json:"back"`
	Difficulty string    `gorm:"size:10;not null;default:'medium'" json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyMedium
	}
	return nil
}
