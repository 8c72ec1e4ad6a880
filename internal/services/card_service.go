package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/models"
	"github.com/memora-app/memora-api/internal/repository"
)

// CardService manages cards. Every operation first checks that the parent
// deck belongs to the caller.
type CardService struct {
	decks DeckStore
	cards CardStore
}

func NewCardService(decks DeckStore, cards CardStore) *CardService {
	return &CardService{decks: decks, cards: cards}
}

func (s *CardService) List(ctx context.Context, userID string, deckID uuid.UUID) ([]models.Card, error) {
	if err := s.checkDeck(ctx, userID, deckID); err != nil {
		return nil, err
	}
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (s *CardService) Get(ctx context.Context, userID string, deckID, cardID uuid.UUID) (*models.Card, error) {
	if err := s.checkDeck(ctx, userID, deckID); err != nil {
		return nil, err
	}
	return s.card(ctx, deckID, cardID)
}

func (s *CardService) Create(ctx context.Context, userID string, deckID uuid.UUID, req *dto.CardRequest) (*models.Card, error) {
	front, back, difficulty, err := validateCard(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkDeck(ctx, userID, deckID); err != nil {
		return nil, err
	}

	card := models.Card{
		DeckID:     deckID,
		Front:      front,
		Back:       back,
		Difficulty: difficulty,
	}
	if err := s.cards.Create(ctx, &card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return &card, nil
}

// Update replaces front, back and difficulty. An omitted difficulty resets
// the card to medium.
func (s *CardService) Update(ctx context.Context, userID string, deckID, cardID uuid.UUID, req *dto.CardRequest) (*models.Card, error) {
	front, back, difficulty, err := validateCard(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkDeck(ctx, userID, deckID); err != nil {
		return nil, err
	}

	card, err := s.card(ctx, deckID, cardID)
	if err != nil {
		return nil, err
	}
	card.Front = front
	card.Back = back
	card.Difficulty = difficulty
	if err := s.cards.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	return card, nil
}

func (s *CardService) Delete(ctx context.Context, userID string, deckID, cardID uuid.UUID) error {
	if err := s.checkDeck(ctx, userID, deckID); err != nil {
		return err
	}
	if err := s.cards.Delete(ctx, deckID, cardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

func (s *CardService) checkDeck(ctx context.Context, userID string, deckID uuid.UUID) error {
	_, err := s.decks.Get(ctx, userID, deckID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDeckNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load deck: %w", err)
	}
	return nil
}

func (s *CardService) card(ctx context.Context, deckID, cardID uuid.UUID) (*models.Card, error) {
	card, err := s.cards.Get(ctx, deckID, cardID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load card: %w", err)
	}
	return card, nil
}

func validateCard(req *dto.CardRequest) (front, back, difficulty string, err error) {
	front = strings.TrimSpace(req.Front)
	back = strings.TrimSpace(req.Back)
	if front == "" || back == "" {
		return "", "", "", invalid("front and back are required")
	}
	difficulty, err = normalizeDifficulty(req.Difficulty)
	return front, back, difficulty, err
}

func normalizeDifficulty(d string) (string, error) {
	d = strings.ToLower(strings.TrimSpace(d))
	if d == "" {
		return models.DifficultyMedium, nil
	}
	if !models.ValidDifficulty(d) {
		return "", invalid("difficulty must be easy, medium, or hard")
	}
	return d, nil
}
