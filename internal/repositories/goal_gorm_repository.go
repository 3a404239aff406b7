package repositories

import (
	"context"
	"errors"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGoalRepository is a GORM implementation of GoalRepository.
type GORMGoalRepository struct {
	db *gorm.DB
}

// NewGORMGoalRepository creates a new instance of GORMGoalRepository.
func NewGORMGoalRepository(db *gorm.DB) *GORMGoalRepository {
	return &GORMGoalRepository{
		db: db,
	}
}

// Replace swaps the user's goal. On failure the transaction is rolled back and the
// previous goal stays in place.
func (r *GORMGoalRepository) Replace(ctx context.Context, goal *models.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", goal.UserID).Delete(&models.Goal{}).Error; err != nil {
			return err
		}
		return tx.Create(goal).Error
	})
	if err != nil {
		return storeError("replace goal", err)
	}
	return nil
}

// Latest returns the most recently created goal of the user.
func (r *GORMGoalRepository) Latest(ctx context.Context, userID string) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Take(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeError("get goal", err)
	}
	return &goal, nil
}
