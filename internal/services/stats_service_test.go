package services

import (
	"context"
	"testing"

	"github.com/memora-app/memora-api/internal/dto"
)

func TestUserStatsZeroForNewUser(t *testing.T) {
	f := newFixture(t, false)

	stats, err := f.stats.UserStats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if *stats != (dto.UserStats{}) {
		t.Errorf("stats = %+v, want zero", stats)
	}
}

func TestUserStatsTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	d := f.deck(t, "1")
	f.deck(t, "1")

	for _, minutes := range []int{20, 25} {
		if _, err := f.study.Record(ctx, "1", &dto.StudySessionRequest{DeckID: d.ID.String(), CardsStudied: 5, TotalCards: 10, Duration: minutes}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	stats, err := f.stats.UserStats(ctx, "1")
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	want := dto.UserStats{
		TotalStudyTime:       45,
		TotalSessions:        2,
		TotalCardsStudied:    10,
		TotalDecks:           2,
		AchievementsUnlocked: 2,  // first_deck, first_session
		TotalPoints:          30, // 10 + 20
	}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
}

func TestLeaderboardRanksAndNames(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	user, err := f.users.Create(ctx, &dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	ada := user.ID.String()

	d := f.deck(t, ada)
	if _, err := f.study.Record(ctx, ada, &dto.StudySessionRequest{DeckID: d.ID.String(), CardsStudied: 1, TotalCards: 1, Duration: 7, Completed: true}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	f.deck(t, "1")

	entries, err := f.stats.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	first, second := entries[0], entries[1]
	if first.UserID != ada || first.DisplayName != "Ada" || first.Rank != 1 {
		t.Errorf("entries[0] = %+v", first)
	}
	// first_deck 10 + first_session 20 + perfect_session 45
	if first.Points != 75 || first.AchievementsCount != 3 || first.TotalStudyTime != 7 {
		t.Errorf("entries[0] totals = %+v", first)
	}
	if second.UserID != "1" || second.DisplayName != "User 1" || second.Rank != 2 {
		t.Errorf("entries[1] = %+v", second)
	}
}

func TestLeaderboardServedFromCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.deck(t, "1")

	if _, err := f.stats.Leaderboard(ctx); err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if f.cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", f.cache.sets)
	}

	f.cache.entries = []dto.LeaderboardEntry{{UserID: "cached", Rank: 1}}
	entries, err := f.stats.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != "cached" {
		t.Errorf("entries = %+v, want cached entry", entries)
	}

	f.deck(t, "2")
	entries, err = f.stats.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("after invalidation len(entries) = %d, want 2", len(entries))
	}
}
