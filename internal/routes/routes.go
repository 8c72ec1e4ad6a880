package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memora-app/memora-api/internal/config"
	"github.com/memora-app/memora-api/internal/handlers"
	"github.com/memora-app/memora-api/internal/middleware"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Deck        *handlers.DeckHandler
	Card        *handlers.CardHandler
	Study       *handlers.StudyHandler
	Achievement *handlers.AchievementHandler
	User        *handlers.UserHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	app.Get("/", h.Health.Welcome)

	api := app.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

	api.Get("/health", h.Health.Check)

	// Decks
	decks := api.Group("/decks")
	decks.Get("/", h.Deck.List)
	decks.Post("/", h.Deck.Create)
	decks.Get("/:id", h.Deck.Get)
	decks.Put("/:id", h.Deck.Update)
	decks.Delete("/:id", h.Deck.Delete)

	// Cards
	cards := decks.Group("/:deckId/cards")
	cards.Get("/", h.Card.List)
	cards.Post("/", h.Card.Create)
	cards.Post("/import", h.Card.Import)
	cards.Get("/:cardId", h.Card.Get)
	cards.Put("/:cardId", h.Card.Update)
	cards.Delete("/:cardId", h.Card.Delete)

	// Study & achievements
	api.Post("/study-session", h.Study.Record)
	api.Get("/achievements", h.Achievement.List)
	api.Get("/user-stats", h.Achievement.UserStats)
	api.Get("/leaderboard", h.Achievement.Leaderboard)

	// Users
	users := api.Group("/users")
	users.Get("/", h.User.List)
	users.Post("/", h.User.Create)
	users.Get("/:id", h.User.Get)
	users.Put("/:id", h.User.Update)
	users.Delete("/:id", h.User.Delete)
}
