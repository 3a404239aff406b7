package services_test

import (
	"context"
	"errors"
	"testing"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestItemService_ListItems(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil)
	ctx := context.Background()

	expectedItems := []models.Item{
		{ID: "2", UserID: "u1", Name: "Rice", Quantity: 4},
		{ID: "1", UserID: "u1", Name: "Sugar", Quantity: 2},
	}
	mockRepo.On("ListByUser", ctx, "u1").Return(expectedItems, nil).Once()

	items, err := service.ListItems(ctx, "u1")

	assert.NoError(t, err)
	assert.Equal(t, expectedItems, items)
	mockRepo.AssertExpectations(t)
}

func TestItemService_AddItem(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockMQ := new(MockPublisher)
	service := services.NewItemService(mockRepo, mockMQ)
	ctx := context.Background()

	desc := "long grain"
	fields := services.ItemFields{Name: "Rice", Category: "kg", Quantity: 2.5, BuyingPrice: 1, SellingPrice: 1.5, Description: &desc}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(item *models.Item) bool {
		return item.UserID == "u1" && item.Name == "Rice" && item.Quantity == 2.5 && *item.Description == desc
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Item).ID = "item-1"
	}).Return(nil).Once()
	mockMQ.On("PublishJSON", services.EventItemCreated, mock.MatchedBy(func(e services.ItemEvent) bool {
		return e.ItemID == "item-1" && e.UserID == "u1"
	})).Return(nil).Once()

	item, err := service.AddItem(ctx, "u1", fields)
	assert.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)

	// A store failure is returned unchanged and nothing is published
	storeErr := &repositories.StoreError{Op: "create item", Err: errors.New("connection refused")}
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Item")).Return(storeErr).Once()
	item, err = service.AddItem(ctx, "u1", fields)
	assert.Nil(t, item)
	var target *repositories.StoreError
	assert.ErrorAs(t, err, &target)
	mockMQ.AssertNumberOfCalls(t, "PublishJSON", 1)
}

func TestItemService_AddItemPublishFailureIsIgnored(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockMQ := new(MockPublisher)
	service := services.NewItemService(mockRepo, mockMQ)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Item")).Return(nil).Once()
	mockMQ.On("PublishJSON", services.EventItemCreated, mock.Anything).Return(errors.New("broker down")).Once()

	item, err := service.AddItem(ctx, "u1", services.ItemFields{Name: "Salt"})
	assert.NoError(t, err)
	assert.Equal(t, "Salt", item.Name)
	mockMQ.AssertExpectations(t)
}

func TestItemService_UpdateItem(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil)
	ctx := context.Background()

	fields := services.ItemFields{Name: "Rice", Quantity: 3}

	mockRepo.On("Update", ctx, mock.MatchedBy(func(item *models.Item) bool {
		return item.ID == "item-1" && item.UserID == "u1" && item.Quantity == 3
	})).Return(nil).Once()
	item, err := service.UpdateItem(ctx, "item-1", "u1", fields)
	assert.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)

	// Item owned by someone else
	mockRepo.On("Update", ctx, mock.MatchedBy(func(item *models.Item) bool {
		return item.UserID == "intruder"
	})).Return(repositories.ErrNotFound).Once()
	item, err = service.UpdateItem(ctx, "item-1", "intruder", fields)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestItemService_DeleteItem(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockMQ := new(MockPublisher)
	service := services.NewItemService(mockRepo, mockMQ)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "item-1", "u1").Return(nil).Once()
	mockMQ.On("PublishJSON", services.EventItemDeleted, mock.MatchedBy(func(e services.ItemEvent) bool {
		return e.ItemID == "item-1" && e.Item == nil
	})).Return(nil).Once()
	assert.NoError(t, service.DeleteItem(ctx, "item-1", "u1"))

	// Second delete of the same item
	mockRepo.On("Delete", ctx, "item-1", "u1").Return(repositories.ErrNotFound).Once()
	err := service.DeleteItem(ctx, "item-1", "u1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}
