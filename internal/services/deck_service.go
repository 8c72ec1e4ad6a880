package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/achievements"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/models"
	"github.com/memora-app/memora-api/internal/repository"
)

type DeckService struct {
	decks        DeckStore
	cards        CardStore
	achievements *AchievementService
	evaluator    *achievements.Evaluator
	cache        LeaderboardCache
}

func NewDeckService(decks DeckStore, cards CardStore, achievementService *AchievementService, evaluator *achievements.Evaluator, cache LeaderboardCache) *DeckService {
	return &DeckService{
		decks:        decks,
		cards:        cards,
		achievements: achievementService,
		evaluator:    evaluator,
		cache:        cache,
	}
}

func (s *DeckService) List(ctx context.Context, userID string) ([]models.Deck, error) {
	decks, err := s.decks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// Get returns the deck with its cards. Decks of other users are reported as
// not found.
func (s *DeckService) Get(ctx context.Context, userID string, deckID uuid.UUID) (*dto.DeckWithCards, error) {
	deck, err := s.owned(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.ListByDeck(ctx, deck.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return &dto.DeckWithCards{Deck: *deck, Cards: cards}, nil
}

// Create stores a new deck and awards FIRST_DECK when the user lacks it.
func (s *DeckService) Create(ctx context.Context, userID string, req *dto.DeckRequest) (*dto.DeckWithCards, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title is required")
	}

	deck := models.Deck{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
	}
	if err := s.decks.Create(ctx, &deck); err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}

	s.awardFirstDeck(ctx, userID)
	invalidateLeaderboard(ctx, s.cache)

	return &dto.DeckWithCards{Deck: deck, Cards: []models.Card{}}, nil
}

func (s *DeckService) awardFirstDeck(ctx context.Context, userID string) {
	unlocked, err := s.achievements.Unlocked(ctx, userID)
	if err != nil {
		slog.Error("first deck evaluation failed", "user_id", userID, "error", err)
		return
	}
	earned := s.evaluator.EvaluateDeckCreated(unlocked)
	if _, err := s.achievements.AwardAll(ctx, userID, earned); err != nil {
		slog.Error("failed to award first deck achievement", "user_id", userID, "error", err)
	}
}

func (s *DeckService) Update(ctx context.Context, userID string, deckID uuid.UUID, req *dto.DeckRequest) (*models.Deck, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title is required")
	}

	deck, err := s.owned(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}
	deck.Title = title
	deck.Description = req.Description
	if err := s.decks.Update(ctx, deck); err != nil {
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}
	return deck, nil
}

// Delete removes the deck together with its cards.
func (s *DeckService) Delete(ctx context.Context, userID string, deckID uuid.UUID) error {
	if err := s.decks.Delete(ctx, userID, deckID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDeckNotFound
		}
		return err
	}
	invalidateLeaderboard(ctx, s.cache)
	return nil
}

func (s *DeckService) owned(ctx context.Context, userID string, deckID uuid.UUID) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, userID, deckID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	return deck, nil
}
