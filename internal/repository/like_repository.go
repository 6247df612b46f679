package repository

import (
	"context"
	"errors"
	"fmt"

	"chessclub/backend/internal/models"

	"gorm.io/gorm"
)

// LikeRepository reads and writes likes, keyed by (game, user).
type LikeRepository struct {
	baseRepository
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{baseRepository{DB: db}}
}

// Find returns nil, nil when the user has not liked the game.
func (r *LikeRepository) Find(ctx context.Context, gameID, userID uint) (*models.Like, error) {
	var like models.Like
	err := r.getDB(ctx).Where("game_id = ? AND user_id = ?", gameID, userID).Take(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find like: %w", err)
	}
	return &like, nil
}

func (r *LikeRepository) Create(ctx context.Context, gameID, userID uint) (CreateOutcome, error) {
	outcome, err := createIfAbsent(r.getDB(ctx), &models.Like{GameID: gameID, UserID: userID})
	if err != nil {
		return outcome, fmt.Errorf("failed to create like: %w", err)
	}
	return outcome, nil
}

// Delete removes the like and reports how many rows went away.
func (r *LikeRepository) Delete(ctx context.Context, gameID, userID uint) (int64, error) {
	result := r.getDB(ctx).Where("game_id = ? AND user_id = ?", gameID, userID).Delete(&models.Like{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete like: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *LikeRepository) CountByGame(ctx context.Context, gameID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Like{}).Where("game_id = ?", gameID).Count(&count).Error
	return count, err
}

func (r *LikeRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Like{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
