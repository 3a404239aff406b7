package repositories

import (
	"context"

	"gudang/internal/models"
)

// GoalRepository defines the interface for goal data access.
type GoalRepository interface {
	// Replace deletes every goal of goal.UserID and inserts goal in one transaction.
	Replace(ctx context.Context, goal *models.Goal) error
	// Latest returns the newest goal of the user, or ErrNotFound.
	Latest(ctx context.Context, userID string) (*models.Goal, error)
}
