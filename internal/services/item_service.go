package services

import (
	"context"
	"log/slog"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

const (
	EventItemCreated = "item.created"
	EventItemUpdated = "item.updated"
	EventItemDeleted = "item.deleted"
)

// EventPublisher delivers item change notifications. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishJSON(eventType string, v interface{}) error
}

// ItemEvent is the payload published after an item changes.
type ItemEvent struct {
	ItemID     string       `json:"item_id"`
	UserID     string       `json:"user_id"`
	Item       *models.Item `json:"item,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// ItemFields are the caller-supplied columns of an item.
type ItemFields struct {
	Name         string
	Category     string
	Quantity     float64
	BuyingPrice  float64
	SellingPrice float64
	Description  *string
}

// ItemService handles business logic related to items.
type ItemService struct {
	repo   repositories.ItemRepository
	events EventPublisher // optional
}

// NewItemService creates a new ItemService. events may be nil.
func NewItemService(repo repositories.ItemRepository, events EventPublisher) *ItemService {
	return &ItemService{
		repo:   repo,
		events: events,
	}
}

// ListItems retrieves the user's items, newest first.
func (s *ItemService) ListItems(ctx context.Context, userID string) ([]models.Item, error) {
	return s.repo.ListByUser(ctx, userID)
}

// AddItem stores a new item for the user and returns the stored row.
func (s *ItemService) AddItem(ctx context.Context, userID string, fields ItemFields) (*models.Item, error) {
	item := fields.toItem()
	item.UserID = userID
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.publish(EventItemCreated, item.ID, userID, item)
	return item, nil
}

// UpdateItem overwrites the item only when it belongs to userID.
func (s *ItemService) UpdateItem(ctx context.Context, itemID, userID string, fields ItemFields) (*models.Item, error) {
	item := fields.toItem()
	item.ID = itemID
	item.UserID = userID
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.publish(EventItemUpdated, item.ID, userID, item)
	return item, nil
}

// DeleteItem removes the item only when it belongs to userID.
func (s *ItemService) DeleteItem(ctx context.Context, itemID, userID string) error {
	if err := s.repo.Delete(ctx, itemID, userID); err != nil {
		return err
	}
	s.publish(EventItemDeleted, itemID, userID, nil)
	return nil
}

// publish never fails the request; the row is already committed.
func (s *ItemService) publish(eventType, itemID, userID string, item *models.Item) {
	if s.events == nil {
		return
	}
	event := ItemEvent{
		ItemID:     itemID,
		UserID:     userID,
		Item:       item,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.PublishJSON(eventType, event); err != nil {
		slog.Warn("Failed to publish item event", "type", eventType, "item_id", itemID, "error", err)
	}
}

func (f ItemFields) toItem() *models.Item {
	return &models.Item{
		Name:         f.Name,
		Category:     f.Category,
		Quantity:     f.Quantity,
		BuyingPrice:  f.BuyingPrice,
		SellingPrice: f.SellingPrice,
		Description:  f.Description,
	}
}
