package repository

import (
	"context"
	"errors"
	"fmt"

	"chessclub/backend/internal/models"

	"gorm.io/gorm"
)

// AppliedTag is a tag applied to a game with its vote tally for one viewer.
type AppliedTag struct {
	GameTagID uint
	TagID     uint
	Name      string
	Votes     int64
	MyVotes   int64
}

// GameTagRepository reads and writes game/tag applications and their votes.
type GameTagRepository struct {
	baseRepository
}

func NewGameTagRepository(db *gorm.DB) *GameTagRepository {
	return &GameTagRepository{baseRepository{DB: db}}
}

// Find returns nil, nil when the tag has not been applied to the game.
func (r *GameTagRepository) Find(ctx context.Context, gameID, tagID uint) (*models.GameTag, error) {
	var gameTag models.GameTag
	err := r.getDB(ctx).Where("game_id = ? AND tag_id = ?", gameID, tagID).Take(&gameTag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find game tag: %w", err)
	}
	return &gameTag, nil
}

// Create applies a tag to a game. On Created the new row is returned.
func (r *GameTagRepository) Create(ctx context.Context, gameID, tagID uint) (*models.GameTag, CreateOutcome, error) {
	gameTag := &models.GameTag{GameID: gameID, TagID: tagID}
	outcome, err := createIfAbsent(r.getDB(ctx), gameTag)
	if err != nil {
		return nil, outcome, fmt.Errorf("failed to create game tag: %w", err)
	}
	if outcome == AlreadyExists {
		return nil, outcome, nil
	}
	return gameTag, outcome, nil
}

// FindVote returns nil, nil when the user has not upvoted the game tag.
func (r *GameTagRepository) FindVote(ctx context.Context, gameTagID, userID uint) (*models.GameTagVote, error) {
	var vote models.GameTagVote
	err := r.getDB(ctx).Where("game_tag_id = ? AND user_id = ?", gameTagID, userID).Take(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find game tag vote: %w", err)
	}
	return &vote, nil
}

func (r *GameTagRepository) CreateVote(ctx context.Context, gameTagID, userID uint) (CreateOutcome, error) {
	outcome, err := createIfAbsent(r.getDB(ctx), &models.GameTagVote{GameTagID: gameTagID, UserID: userID})
	if err != nil {
		return outcome, fmt.Errorf("failed to create game tag vote: %w", err)
	}
	return outcome, nil
}

// DeleteVote removes the vote and reports how many rows went away.
func (r *GameTagRepository) DeleteVote(ctx context.Context, gameTagID, userID uint) (int64, error) {
	result := r.getDB(ctx).Where("game_tag_id = ? AND user_id = ?", gameTagID, userID).Delete(&models.GameTagVote{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete game tag vote: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GameTagRepository) CountVotes(ctx context.Context, gameTagID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.GameTagVote{}).Where("game_tag_id = ?", gameTagID).Count(&count).Error
	return count, err
}

// ByGame lists the tags applied to a game, most upvoted first.
func (r *GameTagRepository) ByGame(ctx context.Context, gameID, viewerID uint) ([]AppliedTag, error) {
	var applied []AppliedTag
	err := r.getDB(ctx).Table("game_tags").
		Select("game_tags.id AS game_tag_id, tags.id AS tag_id, tags.name AS name, "+
			"(SELECT COUNT(*) FROM game_tag_votes WHERE game_tag_votes.game_tag_id = game_tags.id) AS votes, "+
			"(SELECT COUNT(*) FROM game_tag_votes WHERE game_tag_votes.game_tag_id = game_tags.id AND game_tag_votes.user_id = ?) AS my_votes", viewerID).
		Joins("JOIN tags ON tags.id = game_tags.tag_id").
		Where("game_tags.game_id = ?", gameID).
		Order("votes DESC").Order("tags.name ASC").
		Scan(&applied).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tags of game %d: %w", gameID, err)
	}
	return applied, nil
}
