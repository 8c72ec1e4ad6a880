package dto

import "github.com/memora-app/memora-api/internal/models"

type DeckRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DeckWithCards is a deck with its cards embedded.
type DeckWithCards struct {
	models.Deck
	Cards []models.Card `json:"cards"`
}

type CardRequest struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Difficulty string `json:"difficulty"`
}

type ImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}
