package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chessclub/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameFilter narrows a game listing. Zero values mean "no filter".
type GameFilter struct {
	UserID uint
	TagID  uint
	Search string
}

// GameSummary is one row of a game listing with its aggregates.
type GameSummary struct {
	ID        uint
	UserID    uint
	Username  string
	Title     string
	White     string
	Black     string
	Result    string
	CreatedAt time.Time
	LikeCount int64
	TagCount  int64
}

const gameSummarySelect = "games.id, games.user_id, users.username AS username, games.title, games.white, games.black, games.result, games.created_at, " +
	"(SELECT COUNT(*) FROM likes WHERE likes.game_id = games.id) AS like_count, " +
	"(SELECT COUNT(*) FROM game_tags WHERE game_tags.game_id = games.id) AS tag_count"

// GameRepository reads and writes games.
type GameRepository struct {
	baseRepository
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{baseRepository{DB: db}}
}

// ByID loads a game with its owner. Returns nil, nil when missing.
func (r *GameRepository) ByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	err := r.getDB(ctx).Preload("User").First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find game by ID %d: %w", id, err)
	}
	return &game, nil
}

func (r *GameRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(r.getDB(ctx), &models.Game{}, id)
}

func (r *GameRepository) Save(ctx context.Context, game *models.Game) error {
	if err := r.getDB(ctx).Omit(clause.Associations).Create(game).Error; err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// DeleteCascade removes a game together with its likes, tag applications and
// their votes. It must run inside WithTransaction. Returns rows removed from games.
func (r *GameRepository) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	db := r.getDB(ctx)

	gameTagIDs := db.Model(&models.GameTag{}).Select("id").Where("game_id = ?", id)
	if err := db.Where("game_tag_id IN (?)", gameTagIDs).Delete(&models.GameTagVote{}).Error; err != nil {
		return 0, fmt.Errorf("failed to delete tag votes of game %d: %w", id, err)
	}
	if err := db.Where("game_id = ?", id).Delete(&models.GameTag{}).Error; err != nil {
		return 0, fmt.Errorf("failed to delete tags of game %d: %w", id, err)
	}
	if err := db.Where("game_id = ?", id).Delete(&models.Like{}).Error; err != nil {
		return 0, fmt.Errorf("failed to delete likes of game %d: %w", id, err)
	}

	result := db.Delete(&models.Game{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete game %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GameRepository) filtered(ctx context.Context, filter GameFilter) *gorm.DB {
	query := r.getDB(ctx).Table("games").Joins("JOIN users ON users.id = games.user_id")
	if filter.UserID != 0 {
		query = query.Where("games.user_id = ?", filter.UserID)
	}
	if filter.TagID != 0 {
		query = query.Where("EXISTS (SELECT 1 FROM game_tags WHERE game_tags.game_id = games.id AND game_tags.tag_id = ?)", filter.TagID)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(games.title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	return query
}

// List returns one ordered page of game summaries plus the unpaged total.
// A limit of zero returns every matching game.
func (r *GameRepository) List(ctx context.Context, filter GameFilter, orderBy []string, limit, offset int) ([]GameSummary, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count games: %w", err)
	}

	query := r.filtered(ctx, filter).Select(gameSummarySelect)
	for _, o := range orderBy {
		query = query.Order(o)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []GameSummary
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list games: %w", err)
	}
	return rows, total, nil
}

// CountByUser counts games posted by a user.
func (r *GameRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Game{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
