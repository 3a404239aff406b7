package handlers

import (
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles HTTP requests for inventory analytics.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// RegisterRoutes registers the analytics routes.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/analytics/:userId", h.HandleGetAnalytics)
}

// HandleGetAnalytics returns totals, margin and the most profitable items.
func (h *AnalyticsHandler) HandleGetAnalytics(c *fiber.Ctx) error {
	analytics, err := h.service.ComputeAnalytics(c.UserContext(), c.Params("userId"))
	if err != nil {
		return storeFailure(c, err, "Items not found")
	}
	return success(c, fiber.StatusOK, fiber.Map{"analytics": analytics})
}
