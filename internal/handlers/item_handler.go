package handlers

import (
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	service  *services.ItemService
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the item routes.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/:userId", h.HandleListItems)
	itemRoutes.Post("/", h.HandleAddItem)
	itemRoutes.Put("/:id", h.HandleUpdateItem)
	itemRoutes.Delete("/:id/:userId", h.HandleDeleteItem)
}

type itemRequest struct {
	UserID       string  `json:"userId" validate:"required"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     number  `json:"quantity"`
	BuyingPrice  number  `json:"buying_price"`
	SellingPrice number  `json:"selling_price"`
	Description  *string `json:"description"`
}

func (r itemRequest) fields() services.ItemFields {
	return services.ItemFields{
		Name:         r.Name,
		Category:     r.Category,
		Quantity:     float64(r.Quantity),
		BuyingPrice:  float64(r.BuyingPrice),
		SellingPrice: float64(r.SellingPrice),
		Description:  r.Description,
	}
}

// HandleListItems lists the items of a user, newest first.
func (h *ItemHandler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.UserContext(), c.Params("userId"))
	if err != nil {
		return storeFailure(c, err, "Items not found")
	}
	return success(c, fiber.StatusOK, fiber.Map{"items": items})
}

// HandleAddItem creates an item.
func (h *ItemHandler) HandleAddItem(c *fiber.Ctx) error {
	var req itemRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	item, err := h.service.AddItem(c.UserContext(), req.UserID, req.fields())
	if err != nil {
		return storeFailure(c, err, "Item not found")
	}
	return success(c, fiber.StatusCreated, fiber.Map{"item": item})
}

// HandleUpdateItem updates an item owned by the userId given in the body.
func (h *ItemHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req itemRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	item, err := h.service.UpdateItem(c.UserContext(), c.Params("id"), req.UserID, req.fields())
	if err != nil {
		return storeFailure(c, err, "Item not found or unauthorized")
	}
	return success(c, fiber.StatusOK, fiber.Map{"item": item})
}

// HandleDeleteItem deletes an item owned by the userId in the path.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	err := h.service.DeleteItem(c.UserContext(), c.Params("id"), c.Params("userId"))
	if err != nil {
		return storeFailure(c, err, "Item not found or unauthorized")
	}
	return success(c, fiber.StatusOK, fiber.Map{"message": "Item deleted successfully"})
}
