package service

import (
	"context"
	"sync"
	"testing"

	"chessclub/backend/internal/models"
	"chessclub/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeEngine(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	engine := NewLikeEngine(db)
	ctx := context.Background()

	owner := fx.User("ivanchuk")
	fan := fx.User("shirov")
	game := fx.Game(owner.ID, "Wijk aan Zee 1996")

	t.Run("ToggleTwiceRestoresState", func(t *testing.T) {
		res, err := engine.Toggle(ctx, game.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeAdded, res.State)
		assert.Equal(t, int64(1), res.Likes)
		assert.Equal(t, int64(1), fx.Count(&models.Like{}, "game_id = ? AND user_id = ?", game.ID, fan.ID))

		res, err = engine.Toggle(ctx, game.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeRemoved, res.State)
		assert.Equal(t, int64(0), res.Likes)
		assert.Equal(t, int64(0), fx.Count(&models.Like{}, "game_id = ? AND user_id = ?", game.ID, fan.ID))
	})

	t.Run("AddOnly", func(t *testing.T) {
		res, err := engine.Add(ctx, game.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeAdded, res.State)

		res, err = engine.Add(ctx, game.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeAlreadyLiked, res.State)
		assert.Equal(t, int64(1), fx.Count(&models.Like{}, "game_id = ? AND user_id = ?", game.ID, fan.ID))
	})

	t.Run("RemoveOnly", func(t *testing.T) {
		res, err := engine.Remove(ctx, game.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeRemoved, res.State)

		res, err = engine.Remove(ctx, game.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeNotLiked, res.State)
		assert.Equal(t, int64(0), fx.Count(&models.Like{}, "game_id = ?", game.ID))
	})

	t.Run("UsersAreIndependent", func(t *testing.T) {
		_, err := engine.Toggle(ctx, game.ID, fan.ID)
		require.NoError(t, err)
		res, err := engine.Toggle(ctx, game.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeAdded, res.State)
		assert.Equal(t, int64(2), res.Likes)

		_, err = engine.Toggle(ctx, game.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), fx.Count(&models.Like{}, "game_id = ? AND user_id = ?", game.ID, fan.ID))

		_, err = engine.Toggle(ctx, game.ID, fan.ID)
		require.NoError(t, err)
	})

	t.Run("UnknownGame", func(t *testing.T) {
		_, err := engine.Toggle(ctx, 9999, fan.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NoUser", func(t *testing.T) {
		_, err := engine.Toggle(ctx, game.ID, 0)
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, err = engine.Toggle(ctx, game.ID, 9999)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestLikeEngineConcurrentToggles(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	engine := NewLikeEngine(db)

	user := fx.User("kasparov")
	game := fx.Game(user.ID, "Linares 1991")

	const calls = 7
	var wg sync.WaitGroup
	errs := make(chan error, calls)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Toggle(context.Background(), game.ID, user.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	// An odd number of toggles from "not liked" ends liked, with one row.
	assert.Equal(t, int64(1), fx.Count(&models.Like{}, "game_id = ? AND user_id = ?", game.ID, user.ID))
}
