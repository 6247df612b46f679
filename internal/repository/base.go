// Package repository is the persistence store: keyed point lookups, explicit
// create outcomes for association rows and transaction scoping through context.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrMissingReference means an insert pointed at a game, tag or user that no
// longer exists.
var ErrMissingReference = errors.New("referenced row does not exist")

type contextKey string

// TxContextKey carries the active *gorm.DB transaction in a context.
const TxContextKey contextKey = "tx"

// CreateOutcome reports whether an insert guarded by a unique key took place.
type CreateOutcome int

const (
	Created CreateOutcome = iota
	AlreadyExists
)

func (o CreateOutcome) String() string {
	if o == Created {
		return "created"
	}
	return "already_exists"
}

type baseRepository struct {
	DB *gorm.DB
}

// getDB returns the transaction stored in ctx, or the root connection.
func (r *baseRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return r.DB.WithContext(ctx)
}

// createIfAbsent inserts value unless a row with the same unique key exists.
// Duplicates are reported as AlreadyExists, never as an error.
func createIfAbsent(db *gorm.DB, value interface{}) (CreateOutcome, error) {
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(value)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return AlreadyExists, nil
		}
		if isForeignKeyViolation(result.Error) {
			return Created, fmt.Errorf("%w: %v", ErrMissingReference, result.Error)
		}
		return Created, result.Error
	}
	if result.RowsAffected == 0 {
		return AlreadyExists, nil
	}
	return Created, nil
}

// isForeignKeyViolation also checks the raw sqlite code, which the sqlite
// dialector does not translate on every version.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

func exists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// WithTransaction executes fn within a database transaction. Repository calls
// made with the context passed to fn join that transaction.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(context.Context) error) (err error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			err = fmt.Errorf("panic in transaction: %v", r)
		}
	}()

	ctx = context.WithValue(ctx, TxContextKey, tx)

	if err := fn(ctx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
