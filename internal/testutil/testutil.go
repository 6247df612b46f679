// Package testutil provides a throwaway sqlite database and fixtures for tests.
package testutil

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"chessclub/backend/internal/database"
	"chessclub/backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SamplePGN is a short, legal game used wherever a fixture needs move text.
const SamplePGN = `[Event "Casual Game"]
[Site "London ENG"]
[White "Adolf Anderssen"]
[Black "Lionel Kieseritzky"]
[Result "1-0"]

1. e4 e5 2. f4 exf4 3. Bc4 Qh4+ 4. Kf1 b5 5. Bxb5 Nf6 6. Nf3 Qh6 7. d3 Nh5
8. Nh4 Qg5 9. Nf5 c6 10. g4 Nf6 11. Rg1 cxb5 12. h4 Qg6 13. h5 Qg5 14. Qf3 Ng8
15. Bxf4 Qf6 16. Nc3 Bc5 17. Nd5 Qxb2 18. Bd6 Bxg1 19. e5 Qxa1+ 20. Ke2 Na6
21. Nxg7+ Kd8 22. Qf6+ Nxf6 23. Be7# 1-0`

// NewDB opens a migrated sqlite database that lives for the duration of t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "chessclub.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := database.Open(database.DriverSQLite, dsn, io.Discard, logger.Silent)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Fixtures creates rows for tests.
type Fixtures struct {
	t  testing.TB
	DB *gorm.DB
}

func NewFixtures(t testing.TB, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, DB: db}
}

// User creates a user whose password is "password123".
func (f *Fixtures) User(username string) *models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(f.t, err)

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		ImageURL:     models.DefaultImageURL,
	}
	require.NoError(f.t, f.DB.Create(user).Error)
	return user
}

// Admin creates a user with the admin role.
func (f *Fixtures) Admin(username string) *models.User {
	f.t.Helper()

	user := f.User(username)
	require.NoError(f.t, f.DB.Model(user).Update("role", models.RoleAdmin).Error)
	return user
}

// Game creates a game owned by userID.
func (f *Fixtures) Game(userID uint, title string) *models.Game {
	f.t.Helper()
	return f.GameAt(userID, title, time.Now())
}

// GameAt creates a game with a fixed creation time.
func (f *Fixtures) GameAt(userID uint, title string, createdAt time.Time) *models.Game {
	f.t.Helper()

	game := &models.Game{
		UserID:    userID,
		Title:     title,
		PGN:       SamplePGN,
		White:     "Adolf Anderssen",
		Black:     "Lionel Kieseritzky",
		Result:    "1-0",
		CreatedAt: createdAt,
	}
	require.NoError(f.t, f.DB.Omit(clause.Associations).Create(game).Error)
	return game
}

func (f *Fixtures) Tag(name string) *models.Tag {
	f.t.Helper()

	tag := &models.Tag{Name: name}
	require.NoError(f.t, f.DB.Create(tag).Error)
	return tag
}

func (f *Fixtures) Like(gameID, userID uint) {
	f.t.Helper()
	require.NoError(f.t, f.DB.Omit(clause.Associations).Create(&models.Like{GameID: gameID, UserID: userID}).Error)
}

// GameTag applies a tag to a game without any votes.
func (f *Fixtures) GameTag(gameID, tagID uint) *models.GameTag {
	f.t.Helper()

	gameTag := &models.GameTag{GameID: gameID, TagID: tagID}
	require.NoError(f.t, f.DB.Omit(clause.Associations).Create(gameTag).Error)
	return gameTag
}

// Count counts rows of model matching the given condition.
func (f *Fixtures) Count(model interface{}, query string, args ...interface{}) int64 {
	f.t.Helper()

	var n int64
	require.NoError(f.t, f.DB.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
