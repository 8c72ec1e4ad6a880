package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/models"
	"github.com/memora-app/memora-api/internal/repository"
)

// The interfaces below are implemented by the repository package.

type DeckStore interface {
	List(ctx context.Context, userID string) ([]models.Deck, error)
	Get(ctx context.Context, userID string, deckID uuid.UUID) (*models.Deck, error)
	Create(ctx context.Context, deck *models.Deck) error
	Update(ctx context.Context, deck *models.Deck) error
	Delete(ctx context.Context, userID string, deckID uuid.UUID) error
	Count(ctx context.Context, userID string) (int64, error)
}

type CardStore interface {
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]models.Card, error)
	Get(ctx context.Context, deckID, cardID uuid.UUID) (*models.Card, error)
	Create(ctx context.Context, card *models.Card) error
	CreateBatch(ctx context.Context, cards []models.Card) error
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, deckID, cardID uuid.UUID) error
}

type SessionStore interface {
	Create(ctx context.Context, session *models.StudySession) error
	Totals(ctx context.Context, userID string) (repository.SessionTotals, error)
	Times(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}

type AchievementStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Achievement, error)
	Types(ctx context.Context, userID string) ([]string, error)
	CreateIfAbsent(ctx context.Context, a *models.Achievement) (bool, error)
	Totals(ctx context.Context, userID string) (repository.AchievementTotals, error)
	Leaderboard(ctx context.Context, limit int) ([]repository.LeaderboardRow, error)
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	EmailExists(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Names(ctx context.Context, ids []string) (map[string]string, error)
}

// LeaderboardCache holds the computed leaderboard between writes.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]dto.LeaderboardEntry, bool, error)
	Set(ctx context.Context, entries []dto.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}
