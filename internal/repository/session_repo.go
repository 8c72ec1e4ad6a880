package repository

import (
	"context"
	"time"

	"github.com/memora-app/memora-api/internal/models"
	"gorm.io/gorm"
)

// SessionTotals aggregates a user's study sessions. Zero when none exist.
type SessionTotals struct {
	TotalMinutes      int64
	TotalSessions     int64
	TotalCardsStudied int64
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.StudySession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) Totals(ctx context.Context, userID string) (SessionTotals, error) {
	var totals SessionTotals
	err := r.db.WithContext(ctx).Model(&models.StudySession{}).
		Select("COALESCE(SUM(duration), 0) AS total_minutes, COUNT(*) AS total_sessions, COALESCE(SUM(cards_studied), 0) AS total_cards_studied").
		Scopes(ForUser(userID)).
		Scan(&totals).Error
	return totals, err
}

// Times returns the creation time of every session of the user since the
// given instant.
func (r *SessionRepository) Times(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).Model(&models.StudySession{}).
		Scopes(ForUser(userID)).
		Where("created_at >= ?", since.UTC()).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	return times, err
}
