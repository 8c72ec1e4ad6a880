// Package server assembles the Fiber application from its stores, services
// and handlers.
package server

import (
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/memora-app/memora-api/internal/achievements"
	"github.com/memora-app/memora-api/internal/config"
	"github.com/memora-app/memora-api/internal/handlers"
	"github.com/memora-app/memora-api/internal/middleware"
	"github.com/memora-app/memora-api/internal/repository"
	"github.com/memora-app/memora-api/internal/routes"
	"github.com/memora-app/memora-api/internal/services"
	"gorm.io/gorm"
)

// New builds the application. cache may be nil, in which case the
// leaderboard is computed on every request.
func New(cfg *config.Config, db *gorm.DB, cache services.LeaderboardCache) *fiber.App {
	deckRepo := repository.NewDeckRepository(db)
	cardRepo := repository.NewCardRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	userRepo := repository.NewUserRepository(db)

	evaluator := achievements.NewEvaluator(cfg.ExtendedAchievements)
	achievementService := services.NewAchievementService(achievementRepo)
	deckService := services.NewDeckService(deckRepo, cardRepo, achievementService, evaluator, cache)
	cardService := services.NewCardService(deckRepo, cardRepo)
	studyService := services.NewStudyService(deckRepo, sessionRepo, achievementService, evaluator, cache)
	statsService := services.NewStatsService(deckRepo, sessionRepo, achievementRepo, userRepo, cache)
	userService := services.NewUserService(userRepo)

	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 4
	}
	app := fiber.New(fiber.Config{
		BodyLimit:    bodyLimit * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.Identity(cfg.DefaultUserID))

	routes.Setup(app, cfg, routes.Handlers{
		Health:      handlers.NewHealthHandler(db),
		Deck:        handlers.NewDeckHandler(deckService),
		Card:        handlers.NewCardHandler(cardService),
		Study:       handlers.NewStudyHandler(studyService),
		Achievement: handlers.NewAchievementHandler(achievementService, statsService),
		User:        handlers.NewUserHandler(userService),
	})

	return app
}
