package services

import (
	"context"
	"errors"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"gorm.io/datatypes"
)

// GoalFields are the caller-supplied columns of a goal.
type GoalFields struct {
	Name          string
	TargetRevenue float64
	TargetProfit  float64
	TargetItems   int
	Deadline      *datatypes.Date
	Description   *string
}

// GoalService handles business logic related to goals.
type GoalService struct {
	repo repositories.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(repo repositories.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

// SetGoal replaces whatever goal the user had with a new one.
func (s *GoalService) SetGoal(ctx context.Context, userID string, fields GoalFields) (*models.Goal, error) {
	goal := &models.Goal{
		UserID:        userID,
		Name:          fields.Name,
		TargetRevenue: fields.TargetRevenue,
		TargetProfit:  fields.TargetProfit,
		TargetItems:   fields.TargetItems,
		Deadline:      fields.Deadline,
		Description:   fields.Description,
	}
	if err := s.repo.Replace(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetCurrentGoal returns the user's goal, or nil when none is set.
func (s *GoalService) GetCurrentGoal(ctx context.Context, userID string) (*models.Goal, error) {
	goal, err := s.repo.Latest(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}
