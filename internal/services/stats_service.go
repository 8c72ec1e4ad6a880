package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/memora-app/memora-api/internal/dto"
)

// LeaderboardLimit caps the number of ranked entries.
const LeaderboardLimit = 50

type StatsService struct {
	decks        DeckStore
	sessions     SessionStore
	achievements AchievementStore
	users        UserStore
	cache        LeaderboardCache
}

func NewStatsService(decks DeckStore, sessions SessionStore, achievementStore AchievementStore, users UserStore, cache LeaderboardCache) *StatsService {
	return &StatsService{
		decks:        decks,
		sessions:     sessions,
		achievements: achievementStore,
		users:        users,
		cache:        cache,
	}
}

// UserStats returns the caller's totals. Every field is zero for a user with
// no activity.
func (s *StatsService) UserStats(ctx context.Context, userID string) (*dto.UserStats, error) {
	sessions, err := s.sessions.Totals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session totals: %w", err)
	}
	decks, err := s.decks.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count decks: %w", err)
	}
	earned, err := s.achievements.Totals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement totals: %w", err)
	}

	return &dto.UserStats{
		TotalStudyTime:       sessions.TotalMinutes,
		TotalSessions:        sessions.TotalSessions,
		TotalCardsStudied:    sessions.TotalCardsStudied,
		TotalDecks:           decks,
		AchievementsUnlocked: earned.Count,
		TotalPoints:          earned.TotalPoints,
	}, nil
}

// Leaderboard ranks users by points, then achievement count, then user id.
// Results are served from the cache when one is configured.
func (s *StatsService) Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx)
		if err != nil {
			slog.Warn("leaderboard cache read failed", "error", err)
		} else if ok {
			return entries, nil
		}
	}

	rows, err := s.achievements.Leaderboard(ctx, LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute leaderboard: %w", err)
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.UserID
	}
	names, err := s.users.Names(ctx, ids)
	if err != nil {
		slog.Warn("leaderboard display names unavailable", "error", err)
		names = nil
	}

	entries := make([]dto.LeaderboardEntry, len(rows))
	for i, r := range rows {
		name := names[r.UserID]
		if name == "" {
			name = "User " + r.UserID
		}
		entries[i] = dto.LeaderboardEntry{
			UserID:            r.UserID,
			DisplayName:       name,
			Points:            r.Points,
			AchievementsCount: r.AchievementsCount,
			TotalStudyTime:    r.TotalStudyTime,
			Rank:              i + 1,
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			slog.Warn("leaderboard cache write failed", "error", err)
		}
	}
	return entries, nil
}

func invalidateLeaderboard(ctx context.Context, cache LeaderboardCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("leaderboard cache invalidation failed", "error", err)
	}
}
