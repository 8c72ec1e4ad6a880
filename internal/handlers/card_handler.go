package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/identity"
	"github.com/memora-app/memora-api/internal/services"
)

const maxImportSize = 2 * 1024 * 1024

type CardHandler struct {
	cardService *services.CardService
}

func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

func cardParams(c *fiber.Ctx) (deckID, cardID uuid.UUID, err error) {
	if deckID, err = paramID(c, "deckId", services.ErrDeckNotFound); err != nil {
		return
	}
	if c.Params("cardId") == "" {
		return
	}
	cardID, err = paramID(c, "cardId", services.ErrCardNotFound)
	return
}

// List handles GET /api/decks/:deckId/cards.
func (h *CardHandler) List(c *fiber.Ctx) error {
	deckID, _, err := cardParams(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch cards")
	}
	cards, err := h.cardService.List(c.UserContext(), identity.GetUserID(c), deckID)
	if err != nil {
		return respondError(c, err, "Failed to fetch cards")
	}
	return c.JSON(cards)
}

// Get handles GET /api/decks/:deckId/cards/:cardId.
func (h *CardHandler) Get(c *fiber.Ctx) error {
	deckID, cardID, err := cardParams(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch card")
	}
	card, err := h.cardService.Get(c.UserContext(), identity.GetUserID(c), deckID, cardID)
	if err != nil {
		return respondError(c, err, "Failed to fetch card")
	}
	return c.JSON(card)
}

// Create handles POST /api/decks/:deckId/cards.
func (h *CardHandler) Create(c *fiber.Ctx) error {
	deckID, _, err := cardParams(c)
	if err != nil {
		return respondError(c, err, "Failed to create card")
	}
	var req dto.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	card, err := h.cardService.Create(c.UserContext(), identity.GetUserID(c), deckID, &req)
	if err != nil {
		return respondError(c, err, "Failed to create card")
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// Import handles POST /api/decks/:deckId/cards/import with a multipart
// "file" field holding an .xlsx or .csv file.
func (h *CardHandler) Import(c *fiber.Ctx) error {
	deckID, _, err := cardParams(c)
	if err != nil {
		return respondError(c, err, "Failed to import cards")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "File is required")
	}
	if file.Size > maxImportSize {
		return errorJSON(c, fiber.StatusBadRequest, "File size must be less than 2MB")
	}

	f, err := file.Open()
	if err != nil {
		return respondError(c, err, "Failed to import cards")
	}
	defer f.Close()

	result, err := h.cardService.Import(c.UserContext(), identity.GetUserID(c), deckID, file.Filename, f)
	if err != nil {
		return respondError(c, err, "Failed to import cards")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Update handles PUT /api/decks/:deckId/cards/:cardId.
func (h *CardHandler) Update(c *fiber.Ctx) error {
	deckID, cardID, err := cardParams(c)
	if err != nil {
		return respondError(c, err, "Failed to update card")
	}
	var req dto.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	card, err := h.cardService.Update(c.UserContext(), identity.GetUserID(c), deckID, cardID, &req)
	if err != nil {
		return respondError(c, err, "Failed to update card")
	}
	return c.JSON(card)
}

// Delete handles DELETE /api/decks/:deckId/cards/:cardId.
func (h *CardHandler) Delete(c *fiber.Ctx) error {
	deckID, cardID, err := cardParams(c)
	if err != nil {
		return respondError(c, err, "Failed to delete card")
	}
	if err := h.cardService.Delete(c.UserContext(), identity.GetUserID(c), deckID, cardID); err != nil {
		return respondError(c, err, "Failed to delete card")
	}
	return c.JSON(dto.MessageResponse{Message: "Card deleted successfully"})
}
