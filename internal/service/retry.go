package service

import (
	"context"
	"errors"
	"fmt"

	"chessclub/backend/internal/repository"

	"gorm.io/gorm"
)

// maxAttempts bounds how often an engine decision is made for one call: the
// first attempt plus one retry against the row a concurrent writer produced.
const maxAttempts = 2

// runWithRetry runs fn in a fresh transaction until it stops asking for a
// retry. A second retry request is reported as ErrConflict.
func runWithRetry(ctx context.Context, db *gorm.DB, engine string, fn func(context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := repository.WithTransaction(ctx, db, fn)
		if errors.Is(err, repository.ErrMissingReference) {
			return fmt.Errorf("%s engine: %v: %w", engine, err, ErrNotFound)
		}
		if !errors.Is(err, errRetry) {
			return err
		}
		if attempt == maxAttempts {
			return fmt.Errorf("%s engine: %w", engine, ErrConflict)
		}
		engineRetries.WithLabelValues(engine).Inc()
	}
}

// requireUser maps a missing or unknown caller to ErrUnauthorized.
func requireUser(ctx context.Context, users *repository.UserRepository, userID uint) error {
	if userID == 0 {
		return ErrUnauthorized
	}
	ok, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %d: %w", userID, ErrUnauthorized)
	}
	return nil
}
