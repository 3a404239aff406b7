package repositories

import (
	"context"
	"errors"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// ListByUser returns the user's items, newest first.
func (r *GORMItemRepository) ListByUser(ctx context.Context, userID string) ([]models.Item, error) {
	items := []models.Item{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, storeError("list items", err)
	}
	return items, nil
}

// Create inserts a new item and fills in its ID and CreatedAt.
func (r *GORMItemRepository) Create(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.UpdatedAt = nil
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return storeError("create item", err)
	}
	return nil
}

// Update overwrites every mutable column of the item matching both item.ID and
// item.UserID, then reloads the stored row into item.
func (r *GORMItemRepository) Update(ctx context.Context, item *models.Item) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Updates(map[string]interface{}{
			"name":          item.Name,
			"category":      item.Category,
			"quantity":      item.Quantity,
			"buying_price":  item.BuyingPrice,
			"selling_price": item.SellingPrice,
			"description":   item.Description,
			"updated_at":    now,
		})
	if res.Error != nil {
		return storeError("update item", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	err := r.db.WithContext(ctx).First(item, "id = ? AND user_id = ?", item.ID, item.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// deleted between the two statements
		return ErrNotFound
	}
	if err != nil {
		return storeError("reload item", err)
	}
	return nil
}

// Delete removes the item matching both ids.
func (r *GORMItemRepository) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).Delete(&models.Item{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return storeError("delete item", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
