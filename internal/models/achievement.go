package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement is a one-time unlock. The unique index keeps at most one
// row per (user_id, achievement_type).
type Achievement struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string    `gorm:"size:64;not null;uniqueIndex:idx_achievements_user_type,priority:1" json:"user_id"`
	AchievementType string    `gorm:"size:50;not null;uniqueIndex:idx_achievements_user_type,priority:2" json:"achievement_type"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Description     string    `gorm:"size:500" json:"description"`
	Icon            string    `gorm:"size:20" json:"icon"`
	Points          int       `gorm:"default:0" json:"points"`
	UnlockedAt      time.Time `gorm:"not null;index" json:"unlocked_at"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.UnlockedAt.IsZero() {
		a.UnlockedAt = time.Now().UTC()
	}
	return nil
}
