package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chessclub/backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository reads and writes users.
type UserRepository struct {
	baseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{baseRepository{DB: db}}
}

// ByID returns nil, nil when the user does not exist.
func (r *UserRepository) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.getDB(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", id, err)
	}
	return &user, nil
}

// ByLogin finds a user by username or email.
func (r *UserRepository) ByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := r.getDB(ctx).Where("username = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by login: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(r.getDB(ctx), &models.User{}, id)
}

// Save inserts a user; a taken username or email yields AlreadyExists.
func (r *UserRepository) Save(ctx context.Context, user *models.User) (CreateOutcome, error) {
	err := r.getDB(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return AlreadyExists, nil
		}
		return Created, fmt.Errorf("failed to save user: %w", err)
	}
	return Created, nil
}

// Search pages through users whose username contains q (case-insensitive).
func (r *UserRepository) Search(ctx context.Context, q string, limit, offset int) ([]models.User, int64, error) {
	query := r.getDB(ctx).Model(&models.User{})
	if q != "" {
		query = query.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	if err := query.Order("username ASC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search users: %w", err)
	}
	return users, total, nil
}
