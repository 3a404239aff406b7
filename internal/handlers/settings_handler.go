package handlers

import (
	"encoding/json"

	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles HTTP requests for user settings.
type SettingsHandler struct {
	service  *services.SettingsService
	validate *validator.Validate
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the settings routes.
func (h *SettingsHandler) RegisterRoutes(router fiber.Router) {
	settingsRoutes := router.Group("/settings")
	settingsRoutes.Get("/:userId", h.HandleGetSettings)
	settingsRoutes.Put("/:userId", h.HandleUpdateSettings)
}

type settingsRequest struct {
	Currency        string          `json:"currency"`
	AppName         string          `json:"appName"`
	UnitPreferences json.RawMessage `json:"unitPreferences"`
}

// HandleGetSettings returns the settings of a user.
func (h *SettingsHandler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings(c.UserContext(), c.Params("userId"))
	if err != nil {
		return storeFailure(c, err, "Settings not found")
	}
	return success(c, fiber.StatusOK, fiber.Map{"settings": settings})
}

// HandleUpdateSettings replaces the settings of a user.
func (h *SettingsHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var req settingsRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	settings, err := h.service.UpdateSettings(c.UserContext(), c.Params("userId"), services.SettingsUpdate{
		Currency:        req.Currency,
		AppName:         req.AppName,
		UnitPreferences: req.UnitPreferences,
	})
	if err != nil {
		return storeFailure(c, err, "Settings not found")
	}
	return success(c, fiber.StatusOK, fiber.Map{"settings": settings})
}
