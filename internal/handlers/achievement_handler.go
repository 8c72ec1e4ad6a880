package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memora-app/memora-api/internal/identity"
	"github.com/memora-app/memora-api/internal/services"
)

type AchievementHandler struct {
	achievementService *services.AchievementService
	statsService       *services.StatsService
}

func NewAchievementHandler(achievementService *services.AchievementService, statsService *services.StatsService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
		statsService:       statsService,
	}
}

// List handles GET /api/achievements.
func (h *AchievementHandler) List(c *fiber.Ctx) error {
	list, err := h.achievementService.List(c.UserContext(), identity.GetUserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch achievements")
	}
	return c.JSON(list)
}

// UserStats handles GET /api/user-stats.
func (h *AchievementHandler) UserStats(c *fiber.Ctx) error {
	stats, err := h.statsService.UserStats(c.UserContext(), identity.GetUserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch user stats")
	}
	return c.JSON(stats)
}

// Leaderboard handles GET /api/leaderboard.
func (h *AchievementHandler) Leaderboard(c *fiber.Ctx) error {
	entries, err := h.statsService.Leaderboard(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch leaderboard")
	}
	return c.JSON(entries)
}
