package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/models"
	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]models.Card, error) {
	cards := []models.Card{}
	err := r.db.WithContext(ctx).Where("deck_id = ?", deckID).
		Order("created_at ASC").
		Find(&cards).Error
	return cards, err
}

// Get returns the card only when it belongs to deckID.
func (r *CardRepository) Get(ctx context.Context, deckID, cardID uuid.UUID) (*models.Card, error) {
	var card models.Card
	if err := r.db.WithContext(ctx).Where("deck_id = ?", deckID).First(&card, "id = ?", cardID).Error; err != nil {
		return nil, translate(err)
	}
	return &card, nil
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *CardRepository) CreateBatch(ctx context.Context, cards []models.Card) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(cards, 100).Error
}

func (r *CardRepository) Update(ctx context.Context, card *models.Card) error {
	return r.db.WithContext(ctx).Save(card).Error
}

func (r *CardRepository) Delete(ctx context.Context, deckID, cardID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND deck_id = ?", cardID, deckID).Delete(&models.Card{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
