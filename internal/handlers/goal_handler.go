package handlers

import (
	"fmt"
	"strings"
	"time"

	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GoalHandler handles HTTP requests for goals.
type GoalHandler struct {
	service  *services.GoalService
	validate *validator.Validate
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(service *services.GoalService) *GoalHandler {
	return &GoalHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the goal routes.
func (h *GoalHandler) RegisterRoutes(router fiber.Router) {
	goalRoutes := router.Group("/goals")
	goalRoutes.Post("/", h.HandleSetGoal)
	goalRoutes.Get("/:userId", h.HandleGetGoal)
}

type goalRequest struct {
	UserID        string  `json:"userId" validate:"required"`
	Name          string  `json:"name"`
	TargetRevenue number  `json:"target_revenue"`
	TargetProfit  number  `json:"target_profit"`
	TargetItems   number  `json:"target_items"`
	Deadline      string  `json:"deadline"`
	Description   *string `json:"description"`
}

// HandleSetGoal replaces the user's current goal.
func (h *GoalHandler) HandleSetGoal(c *fiber.Ctx) error {
	var req goalRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, err.Error())
	}
	targetItems, err := wholeNumber(req.TargetItems)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "target_items must be a whole number")
	}

	goal, err := h.service.SetGoal(c.UserContext(), req.UserID, services.GoalFields{
		Name:          req.Name,
		TargetRevenue: float64(req.TargetRevenue),
		TargetProfit:  float64(req.TargetProfit),
		TargetItems:   targetItems,
		Deadline:      deadline,
		Description:   req.Description,
	})
	if err != nil {
		return storeFailure(c, err, "Goal not found")
	}
	return success(c, fiber.StatusCreated, fiber.Map{"goal": goal})
}

// HandleGetGoal returns the user's current goal, or null.
func (h *GoalHandler) HandleGetGoal(c *fiber.Ctx) error {
	goal, err := h.service.GetCurrentGoal(c.UserContext(), c.Params("userId"))
	if err != nil {
		return storeFailure(c, err, "Goal not found")
	}
	return success(c, fiber.StatusOK, fiber.Map{"goal": goal})
}

// parseDeadline accepts YYYY-MM-DD or RFC 3339. An empty value means no deadline.
func parseDeadline(value string) (*datatypes.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			d := datatypes.Date(t)
			return &d, nil
		}
	}
	return nil, fmt.Errorf("invalid deadline %q, expected YYYY-MM-DD", value)
}
