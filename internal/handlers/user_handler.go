package handlers

import (
	"log/slog"

	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user initialisation.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/init", h.HandleInit)
}

type initUserRequest struct {
	UserID string `json:"userId"`
}

// HandleInit validates a known user id or creates a new user. The body is optional.
func (h *UserHandler) HandleInit(c *fiber.Ctx) error {
	var req initUserRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			slog.Debug("Error parsing init request body", "error", err)
			return failure(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	userID, created, err := h.service.InitUser(c.UserContext(), req.UserID)
	if err != nil {
		return storeFailure(c, err, "User not found")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
		slog.Info("User initialised", "user_id", userID)
	}
	return success(c, status, fiber.Map{
		"userId":  userID,
		"created": created,
	})
}
