package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/identity"
	"github.com/memora-app/memora-api/internal/services"
)

type DeckHandler struct {
	deckService *services.DeckService
}

func NewDeckHandler(deckService *services.DeckService) *DeckHandler {
	return &DeckHandler{deckService: deckService}
}

// paramID parses a UUID path parameter. Malformed ids cannot match a row, so
// they are reported with the not-found error.
func paramID(c *fiber.Ctx, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

// List handles GET /api/decks.
func (h *DeckHandler) List(c *fiber.Ctx) error {
	decks, err := h.deckService.List(c.UserContext(), identity.GetUserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch decks")
	}
	return c.JSON(decks)
}

// Get handles GET /api/decks/:id.
func (h *DeckHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id", services.ErrDeckNotFound)
	if err != nil {
		return respondError(c, err, "Failed to fetch deck")
	}
	deck, err := h.deckService.Get(c.UserContext(), identity.GetUserID(c), id)
	if err != nil {
		return respondError(c, err, "Failed to fetch deck")
	}
	return c.JSON(deck)
}

// Create handles POST /api/decks.
func (h *DeckHandler) Create(c *fiber.Ctx) error {
	var req dto.DeckRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	deck, err := h.deckService.Create(c.UserContext(), identity.GetUserID(c), &req)
	if err != nil {
		return respondError(c, err, "Failed to create deck")
	}
	return c.Status(fiber.StatusCreated).JSON(deck)
}

// Update handles PUT /api/decks/:id.
func (h *DeckHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", services.ErrDeckNotFound)
	if err != nil {
		return respondError(c, err, "Failed to update deck")
	}
	var req dto.DeckRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	deck, err := h.deckService.Update(c.UserContext(), identity.GetUserID(c), id, &req)
	if err != nil {
		return respondError(c, err, "Failed to update deck")
	}
	return c.JSON(deck)
}

// Delete handles DELETE /api/decks/:id.
func (h *DeckHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", services.ErrDeckNotFound)
	if err != nil {
		return respondError(c, err, "Failed to delete deck")
	}
	if err := h.deckService.Delete(c.UserContext(), identity.GetUserID(c), id); err != nil {
		return respondError(c, err, "Failed to delete deck")
	}
	return c.JSON(dto.MessageResponse{Message: "Deck deleted successfully"})
}
