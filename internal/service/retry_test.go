package service

import (
	"context"
	"testing"
	"time"

	"chessclub/backend/internal/models"
	"chessclub/backend/internal/testutil"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// competingWrite runs write right before the engine inserts into or deletes
// from table, inside the engine's transaction, so the engine's own statement
// hits a row that appeared after its read. The test database has a single
// connection, so with persist set the write is applied again before the next
// attempt's first read to stand in for a committed concurrent writer.
type competingWrite struct {
	table   string
	times   int
	persist bool
	write   func(tx *gorm.DB) error

	fired   int
	pending bool
}

func (w *competingWrite) install(t *testing.T, db *gorm.DB) {
	t.Helper()

	before := func(tx *gorm.DB) {
		if tx.Statement.Table != w.table || w.fired >= w.times {
			return
		}
		w.fired++
		w.apply(tx)
		w.pending = w.persist
	}
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:competing_create", before))
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:competing_delete", before))
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:competing_replay", func(tx *gorm.DB) {
		if !w.pending {
			return
		}
		w.pending = false
		w.apply(tx)
	}))
}

func (w *competingWrite) apply(tx *gorm.DB) {
	if err := w.write(tx.Session(&gorm.Session{NewDB: true})); err != nil {
		tx.AddError(err)
	}
}

func retries(engine string) float64 {
	return promtest.ToFloat64(engineRetries.WithLabelValues(engine))
}

type raceFixture struct {
	db     *gorm.DB
	fx     *testutil.Fixtures
	caller *models.User
	rival  *models.User
	game   *models.Game
	tag    *models.Tag
}

func newRaceFixture(t *testing.T) *raceFixture {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	owner := fx.User("kasparov")
	return &raceFixture{
		db:     db,
		fx:     fx,
		caller: fx.User("topalov"),
		rival:  fx.User("anand"),
		game:   fx.Game(owner.ID, "Wijk aan Zee 1999"),
		tag:    fx.Tag("brilliancy"),
	}
}

func TestTagVoteEngineLostRaces(t *testing.T) {
	t.Run("GameTagCreatedConcurrently", func(t *testing.T) {
		rf := newRaceFixture(t)
		w := &competingWrite{table: "game_tags", times: 1, persist: true, write: func(tx *gorm.DB) error {
			now := time.Now()
			if err := tx.Exec("INSERT INTO game_tags (game_id, tag_id, created_at) VALUES (?, ?, ?)",
				rf.game.ID, rf.tag.ID, now).Error; err != nil {
				return err
			}
			return tx.Exec("INSERT INTO game_tag_votes (game_tag_id, user_id, created_at) SELECT id, ?, ? FROM game_tags WHERE game_id = ? AND tag_id = ?",
				rf.rival.ID, now, rf.game.ID, rf.tag.ID).Error
		}}
		w.install(t, rf.db)
		before := retries("tag_vote")

		res, err := NewTagVoteEngine(rf.db).ApplyOrToggle(context.Background(), rf.game.ID, rf.tag.ID, rf.caller.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, w.fired)
		assert.Equal(t, TagUpvoted, res.State)
		assert.Equal(t, int64(2), res.Votes)
		assert.Equal(t, before+1, retries("tag_vote"))
		assert.Equal(t, int64(1), rf.fx.Count(&models.GameTag{}, "game_id = ? AND tag_id = ?", rf.game.ID, rf.tag.ID))
	})

	t.Run("VoteCreatedConcurrently", func(t *testing.T) {
		rf := newRaceFixture(t)
		gameTag := rf.fx.GameTag(rf.game.ID, rf.tag.ID)
		w := &competingWrite{table: "game_tag_votes", times: 1, persist: true, write: func(tx *gorm.DB) error {
			return tx.Exec("INSERT INTO game_tag_votes (game_tag_id, user_id, created_at) VALUES (?, ?, ?)",
				gameTag.ID, rf.caller.ID, time.Now()).Error
		}}
		w.install(t, rf.db)
		before := retries("tag_vote")

		res, err := NewTagVoteEngine(rf.db).ApplyOrToggle(context.Background(), rf.game.ID, rf.tag.ID, rf.caller.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, w.fired)
		assert.Equal(t, TagUpvoteRemoved, res.State)
		assert.Equal(t, int64(0), res.Votes)
		assert.Equal(t, before+1, retries("tag_vote"))
		assert.Equal(t, int64(1), rf.fx.Count(&models.GameTag{}, "id = ?", gameTag.ID))
	})

	t.Run("VoteRemovedConcurrently", func(t *testing.T) {
		rf := newRaceFixture(t)
		engine := NewTagVoteEngine(rf.db)
		_, err := engine.ApplyOrToggle(context.Background(), rf.game.ID, rf.tag.ID, rf.caller.ID)
		require.NoError(t, err)

		w := &competingWrite{table: "game_tag_votes", times: 1, persist: true, write: func(tx *gorm.DB) error {
			return tx.Exec("DELETE FROM game_tag_votes WHERE user_id = ?", rf.caller.ID).Error
		}}
		w.install(t, rf.db)
		before := retries("tag_vote")

		res, err := engine.ApplyOrToggle(context.Background(), rf.game.ID, rf.tag.ID, rf.caller.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, w.fired)
		assert.Equal(t, TagUpvoted, res.State)
		assert.Equal(t, int64(1), res.Votes)
		assert.Equal(t, before+1, retries("tag_vote"))
	})

	t.Run("InconsistentTwiceIsConflict", func(t *testing.T) {
		rf := newRaceFixture(t)
		w := &competingWrite{table: "game_tags", times: 2, write: func(tx *gorm.DB) error {
			return tx.Exec("INSERT INTO game_tags (game_id, tag_id, created_at) VALUES (?, ?, ?)",
				rf.game.ID, rf.tag.ID, time.Now()).Error
		}}
		w.install(t, rf.db)
		before := retries("tag_vote")

		_, err := NewTagVoteEngine(rf.db).ApplyOrToggle(context.Background(), rf.game.ID, rf.tag.ID, rf.caller.ID)
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, 2, w.fired)
		assert.Equal(t, before+1, retries("tag_vote"))
		assert.Equal(t, int64(0), rf.fx.Count(&models.GameTag{}, "game_id = ?", rf.game.ID))
	})

	t.Run("TagDeletedBeforeInsert", func(t *testing.T) {
		rf := newRaceFixture(t)
		w := &competingWrite{table: "game_tags", times: 1, write: func(tx *gorm.DB) error {
			return tx.Exec("DELETE FROM tags WHERE id = ?", rf.tag.ID).Error
		}}
		w.install(t, rf.db)

		_, err := NewTagVoteEngine(rf.db).ApplyOrToggle(context.Background(), rf.game.ID, rf.tag.ID, rf.caller.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrConflict)
		assert.Equal(t, int64(1), rf.fx.Count(&models.Tag{}, "id = ?", rf.tag.ID), "rollback keeps the tag")
	})
}

func TestLikeEngineLostRaces(t *testing.T) {
	t.Run("LikeRemovedConcurrently", func(t *testing.T) {
		rf := newRaceFixture(t)
		rf.fx.Like(rf.game.ID, rf.caller.ID)
		w := &competingWrite{table: "likes", times: 1, persist: true, write: func(tx *gorm.DB) error {
			return tx.Exec("DELETE FROM likes WHERE game_id = ? AND user_id = ?", rf.game.ID, rf.caller.ID).Error
		}}
		w.install(t, rf.db)
		before := retries("like")

		res, err := NewLikeEngine(rf.db).Toggle(context.Background(), rf.game.ID, rf.caller.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, w.fired)
		assert.Equal(t, LikeAdded, res.State)
		assert.Equal(t, int64(1), res.Likes)
		assert.Equal(t, before+1, retries("like"))
	})

	t.Run("LikeCreatedConcurrently", func(t *testing.T) {
		rf := newRaceFixture(t)
		w := &competingWrite{table: "likes", times: 1, persist: true, write: func(tx *gorm.DB) error {
			return tx.Exec("INSERT INTO likes (game_id, user_id, created_at) VALUES (?, ?, ?)",
				rf.game.ID, rf.caller.ID, time.Now()).Error
		}}
		w.install(t, rf.db)
		before := retries("like")

		res, err := NewLikeEngine(rf.db).Add(context.Background(), rf.game.ID, rf.caller.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeAlreadyLiked, res.State)
		assert.Equal(t, int64(1), res.Likes)
		assert.Equal(t, before+1, retries("like"))
	})

	t.Run("InconsistentTwiceIsConflict", func(t *testing.T) {
		rf := newRaceFixture(t)
		w := &competingWrite{table: "likes", times: 2, write: func(tx *gorm.DB) error {
			return tx.Exec("INSERT INTO likes (game_id, user_id, created_at) VALUES (?, ?, ?)",
				rf.game.ID, rf.caller.ID, time.Now()).Error
		}}
		w.install(t, rf.db)
		before := retries("like")

		_, err := NewLikeEngine(rf.db).Toggle(context.Background(), rf.game.ID, rf.caller.ID)
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, 2, w.fired)
		assert.Equal(t, before+1, retries("like"))
		assert.Equal(t, int64(0), rf.fx.Count(&models.Like{}, "game_id = ?", rf.game.ID))
	})

	t.Run("GameDeletedBeforeInsert", func(t *testing.T) {
		rf := newRaceFixture(t)
		w := &competingWrite{table: "likes", times: 1, write: func(tx *gorm.DB) error {
			return tx.Exec("DELETE FROM games WHERE id = ?", rf.game.ID).Error
		}}
		w.install(t, rf.db)

		_, err := NewLikeEngine(rf.db).Toggle(context.Background(), rf.game.ID, rf.caller.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, int64(1), rf.fx.Count(&models.Game{}, "id = ?", rf.game.ID), "rollback keeps the game")
	})
}
