package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/identity"
	"github.com/memora-app/memora-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch users")
	}
	return c.JSON(users)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.userService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch user")
	}
	return c.JSON(user)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	user, err := h.userService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	user, err := h.userService.Update(c.UserContext(), identity.GetUserID(c), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "Failed to update user")
	}
	return c.JSON(user)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.UserContext(), identity.GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err, "Failed to delete user")
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}
