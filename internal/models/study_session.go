package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudySession is an append-only record of one study attempt against a deck.
type StudySession struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string    `gorm:"size:64;not null;index" json:"user_id"`
	DeckID       uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	CardsStudied int       `gorm:"not null" json:"cards_studied"`
	TotalCards   int       `gorm:"not null" json:"total_cards"`
	Duration     int       `gorm:"not null" json:"duration"` // minutes
	Completed    bool      `gorm:"default:false" json:"completed"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (s *StudySession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
