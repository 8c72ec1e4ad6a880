package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/identity"
	"github.com/memora-app/memora-api/internal/services"
)

type StudyHandler struct {
	studyService *services.StudyService
}

func NewStudyHandler(studyService *services.StudyService) *StudyHandler {
	return &StudyHandler{studyService: studyService}
}

// Record handles POST /api/study-session.
func (h *StudyHandler) Record(c *fiber.Ctx) error {
	var req dto.StudySessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.studyService.Record(c.UserContext(), identity.GetUserID(c), &req)
	if err != nil {
		return respondError(c, err, "Failed to record study session")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
