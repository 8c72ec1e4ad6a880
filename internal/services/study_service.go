package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/achievements"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/models"
	"github.com/memora-app/memora-api/internal/repository"
)

// streakWindow bounds the session history loaded for streak rules.
const streakWindow = 8 * 24 * time.Hour

type StudyService struct {
	decks        DeckStore
	sessions     SessionStore
	achievements *AchievementService
	evaluator    *achievements.Evaluator
	cache        LeaderboardCache
}

func NewStudyService(decks DeckStore, sessions SessionStore, achievementService *AchievementService, evaluator *achievements.Evaluator, cache LeaderboardCache) *StudyService {
	return &StudyService{
		decks:        decks,
		sessions:     sessions,
		achievements: achievementService,
		evaluator:    evaluator,
		cache:        cache,
	}
}

// Record stores a study session and awards every achievement it unlocks.
// Award failures are logged; the session is still returned.
func (s *StudyService) Record(ctx context.Context, userID string, req *dto.StudySessionRequest) (*dto.StudySessionResponse, error) {
	deckID, err := validateSession(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.decks.Get(ctx, userID, deckID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}

	session := models.StudySession{
		UserID:       userID,
		DeckID:       deckID,
		CardsStudied: req.CardsStudied,
		TotalCards:   req.TotalCards,
		Duration:     req.Duration,
		Completed:    req.Completed,
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, fmt.Errorf("failed to record study session: %w", err)
	}

	resp := &dto.StudySessionResponse{
		StudySession:    session,
		NewAchievements: []models.Achievement{},
	}

	awarded, err := s.evaluate(ctx, &session)
	if err != nil {
		slog.Error("achievement evaluation failed",
			"user_id", userID,
			"session_id", session.ID,
			"error", err,
		)
	}
	if len(awarded) > 0 {
		resp.NewAchievements = awarded
	}

	invalidateLeaderboard(ctx, s.cache)
	return resp, nil
}

func (s *StudyService) evaluate(ctx context.Context, session *models.StudySession) ([]models.Achievement, error) {
	totals, err := s.sessions.Totals(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session totals: %w", err)
	}

	asOf := session.CreatedAt
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	times, err := s.sessions.Times(ctx, session.UserID, asOf.Add(-streakWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}

	unlocked, err := s.achievements.Unlocked(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	earned := s.evaluator.EvaluateSession(
		achievements.Session{
			CardsStudied: session.CardsStudied,
			TotalCards:   session.TotalCards,
			Duration:     session.Duration,
			Completed:    session.Completed,
		},
		achievements.Aggregates{
			TotalSessions:     totals.TotalSessions,
			TotalCardsStudied: totals.TotalCardsStudied,
			TotalMinutes:      totals.TotalMinutes,
			CurrentStreak:     achievements.CurrentStreak(times, asOf),
		},
		unlocked,
	)
	if len(earned) == 0 {
		return nil, nil
	}
	return s.achievements.AwardAll(ctx, session.UserID, earned)
}

func validateSession(req *dto.StudySessionRequest) (uuid.UUID, error) {
	if req.DeckID == "" {
		return uuid.Nil, invalid("deck_id is required")
	}
	deckID, err := uuid.Parse(req.DeckID)
	if err != nil {
		return uuid.Nil, invalid("deck_id must be a valid UUID")
	}
	if req.CardsStudied < 0 || req.TotalCards < 0 || req.Duration < 0 {
		return uuid.Nil, invalid("cards_studied, total_cards and duration must not be negative")
	}
	if req.CardsStudied > req.TotalCards {
		return uuid.Nil, invalid("cards_studied cannot exceed total_cards")
	}
	return deckID, nil
}
