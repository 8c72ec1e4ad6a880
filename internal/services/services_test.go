package services

import (
	"context"
	"errors"
	"testing"

	"github.com/memora-app/memora-api/internal/achievements"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/models"
	"github.com/memora-app/memora-api/internal/repository"
	"github.com/memora-app/memora-api/internal/testutil"
)

type memCache struct {
	entries       []dto.LeaderboardEntry
	ok            bool
	sets          int
	invalidations int
}

func (m *memCache) Get(context.Context) ([]dto.LeaderboardEntry, bool, error) {
	return m.entries, m.ok, nil
}

func (m *memCache) Set(_ context.Context, entries []dto.LeaderboardEntry) error {
	m.entries, m.ok = entries, true
	m.sets++
	return nil
}

func (m *memCache) Invalidate(context.Context) error {
	m.entries, m.ok = nil, false
	m.invalidations++
	return nil
}

// failingAwards accepts reads but rejects every award write.
type failingAwards struct {
	*repository.AchievementRepository
}

func (failingAwards) CreateIfAbsent(context.Context, *models.Achievement) (bool, error) {
	return false, errors.New("disk full")
}

type fixture struct {
	decks        *DeckService
	cards        *CardService
	study        *StudyService
	stats        *StatsService
	users        *UserService
	achievements *AchievementService
	cache        *memCache
}

func newFixture(t *testing.T, extended bool) *fixture {
	t.Helper()
	db := testutil.DB(t)

	deckRepo := repository.NewDeckRepository(db)
	cardRepo := repository.NewCardRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	userRepo := repository.NewUserRepository(db)

	cache := &memCache{}
	evaluator := achievements.NewEvaluator(extended)
	achievementService := NewAchievementService(achievementRepo)

	return &fixture{
		decks:        NewDeckService(deckRepo, cardRepo, achievementService, evaluator, cache),
		cards:        NewCardService(deckRepo, cardRepo),
		study:        NewStudyService(deckRepo, sessionRepo, achievementService, evaluator, cache),
		stats:        NewStatsService(deckRepo, sessionRepo, achievementRepo, userRepo, cache),
		users:        NewUserService(userRepo),
		achievements: achievementService,
		cache:        cache,
	}
}

func (f *fixture) deck(t *testing.T, userID string) *dto.DeckWithCards {
	t.Helper()
	d, err := f.decks.Create(context.Background(), userID, &dto.DeckRequest{Title: "Spanish"})
	if err != nil {
		t.Fatalf("create deck: %v", err)
	}
	return d
}

func achievementTypes(list []models.Achievement) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.AchievementType
	}
	return out
}

func hasType(list []models.Achievement, t achievements.Type) bool {
	for _, a := range list {
		if a.AchievementType == string(t) {
			return true
		}
	}
	return false
}

func isValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
