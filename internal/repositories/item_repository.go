package repositories

import (
	"context"

	"gudang/internal/models"
)

// ItemRepository defines the interface for item data access.
// Every method is scoped to the owning user.
type ItemRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id, userID string) error
}
