package handlers

import (
	"errors"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/identity"
	"github.com/memora-app/memora-api/internal/services"
)

var notFoundMessages = map[error]string{
	services.ErrDeckNotFound: "Deck not found",
	services.ErrCardNotFound: "Card not found",
	services.ErrUserNotFound: "User not found",
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// respondError maps a service error to a status code. Unexpected errors are
// reported as "<fallback>: <cause>" with status 500.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return errorJSON(c, fiber.StatusBadRequest, ve.Message)
	}
	for target, msg := range notFoundMessages {
		if errors.Is(err, target) {
			return errorJSON(c, fiber.StatusNotFound, msg)
		}
	}
	if errors.Is(err, services.ErrEmailTaken) {
		return errorJSON(c, fiber.StatusConflict, "Email already registered")
	}

	logServerError(c, fallback, err)
	return errorJSON(c, fiber.StatusInternalServerError, fallback+": "+err.Error())
}

func logServerError(c *fiber.Ctx, msg string, err error) {
	slog.Error(msg,
		"request_id", requestID(c),
		"user_id", identity.GetUserID(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// ErrorHandler is the Fiber error handler. Only client errors expose their
// message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		logServerError(c, "unhandled server error", err)
		message = "Internal server error"
	}

	return errorJSON(c, code, message)
}

func badBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
}
