package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

func TestGoalService_SetGoal(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	service := services.NewGoalService(mockRepo)
	ctx := context.Background()

	deadline := datatypes.Date(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	fields := services.GoalFields{Name: "Q4", TargetRevenue: 1000, TargetProfit: 300, TargetItems: 50, Deadline: &deadline}

	mockRepo.On("Replace", ctx, mock.MatchedBy(func(g *models.Goal) bool {
		return g.UserID == "u1" && g.Name == "Q4" && g.TargetItems == 50 && g.Deadline == &deadline
	})).Return(nil).Once()

	goal, err := service.SetGoal(ctx, "u1", fields)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, goal.TargetRevenue)
	mockRepo.AssertExpectations(t)

	storeErr := &repositories.StoreError{Op: "replace goal", Err: errors.New("deadlock")}
	mockRepo.On("Replace", ctx, mock.AnythingOfType("*models.Goal")).Return(storeErr).Once()
	goal, err = service.SetGoal(ctx, "u1", fields)
	assert.Nil(t, goal)
	assert.ErrorIs(t, err, storeErr)
}

func TestGoalService_GetCurrentGoal(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	service := services.NewGoalService(mockRepo)
	ctx := context.Background()

	expected := &models.Goal{ID: "g1", UserID: "u1"}
	mockRepo.On("Latest", ctx, "u1").Return(expected, nil).Once()
	mockRepo.On("Latest", ctx, "u2").Return(nil, repositories.ErrNotFound).Once()

	goal, err := service.GetCurrentGoal(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, expected, goal)

	// No goal is not an error
	goal, err = service.GetCurrentGoal(ctx, "u2")
	assert.NoError(t, err)
	assert.Nil(t, goal)
	mockRepo.AssertExpectations(t)
}
