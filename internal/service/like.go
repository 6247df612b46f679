package service

import (
	"context"
	"fmt"

	"chessclub/backend/internal/repository"

	"gorm.io/gorm"
)

// LikeState is the outcome of a like operation.
type LikeState string

const (
	LikeAdded        LikeState = "added"
	LikeRemoved      LikeState = "removed"
	LikeAlreadyLiked LikeState = "already_liked"
	LikeNotLiked     LikeState = "not_liked"
)

// LikeResult reports the new state and the game's like count after the call.
type LikeResult struct {
	GameID uint      `json:"game_id"`
	State  LikeState `json:"state"`
	Likes  int64     `json:"likes"`
}

type likeMode int

const (
	likeToggle likeMode = iota
	likeAddOnly
	likeRemoveOnly
)

// LikeEngine flips a user's like on a game. Each call is one transaction.
type LikeEngine struct {
	db    *gorm.DB
	users *repository.UserRepository
	games *repository.GameRepository
	likes *repository.LikeRepository
}

func NewLikeEngine(db *gorm.DB) *LikeEngine {
	return &LikeEngine{
		db:    db,
		users: repository.NewUserRepository(db),
		games: repository.NewGameRepository(db),
		likes: repository.NewLikeRepository(db),
	}
}

// Toggle adds the like when absent and removes it when present.
func (e *LikeEngine) Toggle(ctx context.Context, gameID, userID uint) (*LikeResult, error) {
	return e.run(ctx, gameID, userID, likeToggle)
}

// Add likes the game; an existing like is reported as LikeAlreadyLiked.
func (e *LikeEngine) Add(ctx context.Context, gameID, userID uint) (*LikeResult, error) {
	return e.run(ctx, gameID, userID, likeAddOnly)
}

// Remove unlikes the game; a missing like is reported as LikeNotLiked.
func (e *LikeEngine) Remove(ctx context.Context, gameID, userID uint) (*LikeResult, error) {
	return e.run(ctx, gameID, userID, likeRemoveOnly)
}

func (e *LikeEngine) run(ctx context.Context, gameID, userID uint, mode likeMode) (*LikeResult, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}

	var result *LikeResult
	err := runWithRetry(ctx, e.db, "like", func(ctx context.Context) error {
		if err := requireUser(ctx, e.users, userID); err != nil {
			return err
		}
		ok, err := e.games.Exists(ctx, gameID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("game %d: %w", gameID, ErrNotFound)
		}

		like, err := e.likes.Find(ctx, gameID, userID)
		if err != nil {
			return err
		}

		var state LikeState
		switch {
		case like != nil && mode == likeAddOnly:
			state = LikeAlreadyLiked
		case like == nil && mode == likeRemoveOnly:
			state = LikeNotLiked
		case like != nil:
			n, err := e.likes.Delete(ctx, gameID, userID)
			if err != nil {
				return err
			}
			if n == 0 {
				return errRetry
			}
			state = LikeRemoved
		default:
			outcome, err := e.likes.Create(ctx, gameID, userID)
			if err != nil {
				return err
			}
			if outcome == repository.AlreadyExists {
				return errRetry
			}
			state = LikeAdded
		}

		count, err := e.likes.CountByGame(ctx, gameID)
		if err != nil {
			return err
		}
		result = &LikeResult{GameID: gameID, State: state, Likes: count}
		return nil
	})
	if err != nil {
		return nil, err
	}

	likeOutcomes.WithLabelValues(string(result.State)).Inc()
	return result, nil
}
