package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/models"
	"gorm.io/gorm"
)

type DeckRepository struct {
	db *gorm.DB
}

func NewDeckRepository(db *gorm.DB) *DeckRepository {
	return &DeckRepository{db: db}
}

func (r *DeckRepository) List(ctx context.Context, userID string) ([]models.Deck, error) {
	decks := []models.Deck{}
	err := r.db.WithContext(ctx).Scopes(ForUser(userID)).
		Order("created_at DESC").
		Find(&decks).Error
	return decks, err
}

// Get returns the deck only when it belongs to userID.
func (r *DeckRepository) Get(ctx context.Context, userID string, deckID uuid.UUID) (*models.Deck, error) {
	var deck models.Deck
	if err := r.db.WithContext(ctx).Scopes(ForUser(userID)).First(&deck, "id = ?", deckID).Error; err != nil {
		return nil, translate(err)
	}
	return &deck, nil
}

func (r *DeckRepository) Create(ctx context.Context, deck *models.Deck) error {
	return r.db.WithContext(ctx).Create(deck).Error
}

func (r *DeckRepository) Update(ctx context.Context, deck *models.Deck) error {
	return r.db.WithContext(ctx).Save(deck).Error
}

// Delete removes the deck and all of its cards in one transaction.
func (r *DeckRepository) Delete(ctx context.Context, userID string, deckID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(ForUser(userID)).Where("id = ?", deckID).Delete(&models.Deck{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete deck: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("deck_id = ?", deckID).Delete(&models.Card{}).Error; err != nil {
			return fmt.Errorf("failed to delete deck cards: %w", err)
		}
		return nil
	})
}

func (r *DeckRepository) Count(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Deck{}).Scopes(ForUser(userID)).Count(&n).Error
	return n, err
}
