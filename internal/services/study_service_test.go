package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/achievements"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/repository"
	"github.com/memora-app/memora-api/internal/testutil"
)

func TestRecordTenthSessionUnlocksTenSessions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	d := f.deck(t, "1")

	req := &dto.StudySessionRequest{DeckID: d.ID.String(), CardsStudied: 1, TotalCards: 2, Duration: 1}
	for i := 1; i <= 9; i++ {
		resp, err := f.study.Record(ctx, "1", req)
		if err != nil {
			t.Fatalf("Record #%d: %v", i, err)
		}
		if hasType(resp.NewAchievements, achievements.TenSessions) {
			t.Fatalf("ten_sessions awarded on session %d", i)
		}
		if i == 1 && !hasType(resp.NewAchievements, achievements.FirstSession) {
			t.Errorf("first session awarded %v", achievementTypes(resp.NewAchievements))
		}
		if i > 1 && len(resp.NewAchievements) != 0 {
			t.Errorf("session %d awarded %v", i, achievementTypes(resp.NewAchievements))
		}
	}

	resp, err := f.study.Record(ctx, "1", req)
	if err != nil {
		t.Fatalf("Record #10: %v", err)
	}
	got := achievementTypes(resp.NewAchievements)
	if len(got) != 1 || got[0] != string(achievements.TenSessions) {
		t.Errorf("tenth session awarded %v, want [ten_sessions]", got)
	}
}

func TestRecordAwardsSeveralAtOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	d := f.deck(t, "1")

	resp, err := f.study.Record(ctx, "1", &dto.StudySessionRequest{
		DeckID:       d.ID.String(),
		CardsStudied: 120,
		TotalCards:   120,
		Duration:     90,
		Completed:    true,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	for _, want := range []achievements.Type{
		achievements.FirstSession,
		achievements.HundredCards,
		achievements.HourStudy,
		achievements.PerfectSession,
	} {
		if !hasType(resp.NewAchievements, want) {
			t.Errorf("awarded %v, missing %s", achievementTypes(resp.NewAchievements), want)
		}
	}
	if resp.ID == uuid.Nil || resp.UserID != "1" {
		t.Errorf("session = %+v", resp.StudySession)
	}

	again, err := f.study.Record(ctx, "1", &dto.StudySessionRequest{
		DeckID:       d.ID.String(),
		CardsStudied: 120,
		TotalCards:   120,
		Duration:     90,
		Completed:    true,
	})
	if err != nil {
		t.Fatalf("second Record: %v", err)
	}
	if len(again.NewAchievements) != 0 {
		t.Errorf("second session awarded %v, want none", achievementTypes(again.NewAchievements))
	}
}

func TestRecordExtendedRules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	d := f.deck(t, "1")

	resp, err := f.study.Record(ctx, "1", &dto.StudySessionRequest{DeckID: d.ID.String(), CardsStudied: 5, TotalCards: 10, Duration: 3})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !hasType(resp.NewAchievements, achievements.FiveCards) {
		t.Errorf("awarded %v, want five_cards", achievementTypes(resp.NewAchievements))
	}
	if hasType(resp.NewAchievements, achievements.StudyStreak3) {
		t.Error("study_streak_3 awarded after one day")
	}
}

func TestRecordValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	d := f.deck(t, "1")
	id := d.ID.String()

	tests := []struct {
		name string
		req  dto.StudySessionRequest
	}{
		{"missing deck id", dto.StudySessionRequest{CardsStudied: 1, TotalCards: 1}},
		{"malformed deck id", dto.StudySessionRequest{DeckID: "abc", CardsStudied: 1, TotalCards: 1}},
		{"negative duration", dto.StudySessionRequest{DeckID: id, Duration: -1}},
		{"negative cards", dto.StudySessionRequest{DeckID: id, CardsStudied: -1}},
		{"studied exceeds total", dto.StudySessionRequest{DeckID: id, CardsStudied: 3, TotalCards: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.study.Record(ctx, "1", &tt.req); !isValidation(err) {
				t.Errorf("Record() error = %v, want validation error", err)
			}
		})
	}
}

func TestRecordUnknownDeck(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	d := f.deck(t, "alice")

	for _, deckID := range []string{uuid.NewString(), d.ID.String()} {
		_, err := f.study.Record(ctx, "bob", &dto.StudySessionRequest{DeckID: deckID, CardsStudied: 1, TotalCards: 1})
		if !errors.Is(err, ErrDeckNotFound) {
			t.Errorf("Record(%s) error = %v, want ErrDeckNotFound", deckID, err)
		}
	}
}

func TestRecordSurvivesAwardFailure(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	deckRepo := repository.NewDeckRepository(db)
	achievementService := NewAchievementService(failingAwards{repository.NewAchievementRepository(db)})
	study := NewStudyService(deckRepo, repository.NewSessionRepository(db), achievementService, achievements.NewEvaluator(false), nil)

	deck := &dto.DeckRequest{Title: "d"}
	decks := NewDeckService(deckRepo, repository.NewCardRepository(db), achievementService, achievements.NewEvaluator(false), nil)
	created, err := decks.Create(ctx, "1", deck)
	if err != nil {
		t.Fatalf("deck Create should not surface award errors: %v", err)
	}

	resp, err := study.Record(ctx, "1", &dto.StudySessionRequest{DeckID: created.ID.String(), CardsStudied: 1, TotalCards: 1, Completed: true})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if resp.NewAchievements == nil || len(resp.NewAchievements) != 0 {
		t.Errorf("NewAchievements = %v, want empty", resp.NewAchievements)
	}
}
