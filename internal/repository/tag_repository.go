package repository

import (
	"context"
	"errors"
	"fmt"

	"chessclub/backend/internal/models"

	"gorm.io/gorm"
)

// TagRepository reads and writes the global tag namespace.
type TagRepository struct {
	baseRepository
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{baseRepository{DB: db}}
}

// ByID returns nil, nil when the tag does not exist.
func (r *TagRepository) ByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.getDB(ctx).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find tag by ID %d: %w", id, err)
	}
	return &tag, nil
}

func (r *TagRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(r.getDB(ctx), &models.Tag{}, id)
}

func (r *TagRepository) All(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.getDB(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// Save inserts a tag; a taken name yields AlreadyExists.
func (r *TagRepository) Save(ctx context.Context, tag *models.Tag) (CreateOutcome, error) {
	outcome, err := createIfAbsent(r.getDB(ctx), tag)
	if err != nil {
		return outcome, fmt.Errorf("failed to save tag: %w", err)
	}
	return outcome, nil
}

// Rename changes a tag's name; a taken name yields AlreadyExists.
func (r *TagRepository) Rename(ctx context.Context, tag *models.Tag, name string) (CreateOutcome, error) {
	err := r.getDB(ctx).Model(tag).Update("name", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return AlreadyExists, nil
		}
		return Created, fmt.Errorf("failed to rename tag %d: %w", tag.ID, err)
	}
	return Created, nil
}

// Delete removes a tag and every application of it. It must run inside
// WithTransaction. Returns rows removed from tags.
func (r *TagRepository) Delete(ctx context.Context, id uint) (int64, error) {
	db := r.getDB(ctx)

	gameTagIDs := db.Model(&models.GameTag{}).Select("id").Where("tag_id = ?", id)
	if err := db.Where("game_tag_id IN (?)", gameTagIDs).Delete(&models.GameTagVote{}).Error; err != nil {
		return 0, fmt.Errorf("failed to delete votes of tag %d: %w", id, err)
	}
	if err := db.Where("tag_id = ?", id).Delete(&models.GameTag{}).Error; err != nil {
		return 0, fmt.Errorf("failed to delete applications of tag %d: %w", id, err)
	}

	result := db.Delete(&models.Tag{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete tag %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}
