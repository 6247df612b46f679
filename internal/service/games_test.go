package service

import (
	"context"
	"testing"

	"chessclub/backend/internal/models"
	"chessclub/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamesCreate(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	games := NewGames(db)
	ctx := context.Background()

	user := fx.User("anderssen")

	t.Run("FillsHeadersFromPGN", func(t *testing.T) {
		game, err := games.Create(ctx, user.ID, "", testutil.SamplePGN)
		require.NoError(t, err)
		assert.NotZero(t, game.ID)
		assert.Equal(t, "Adolf Anderssen vs Lionel Kieseritzky", game.Title)
		assert.Equal(t, "Casual Game", game.Event)
		assert.Equal(t, "London ENG", game.Site)
		assert.Equal(t, "1-0", game.Result)
	})

	t.Run("MissingPlayers", func(t *testing.T) {
		game, err := games.Create(ctx, user.ID, "Blitz", "1. e4 e5 2. Nf3 Nc6 *")
		require.NoError(t, err)
		assert.Equal(t, "Blitz", game.Title)
		assert.Equal(t, models.UnknownPlayer, game.White)
		assert.Equal(t, models.UnknownPlayer, game.Black)
	})

	t.Run("RejectsBadPGN", func(t *testing.T) {
		_, err := games.Create(ctx, user.ID, "nonsense", "this is not chess")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("RequiresUser", func(t *testing.T) {
		_, err := games.Create(ctx, 0, "x", testutil.SamplePGN)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestGamesGet(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	games := NewGames(db)
	votes := NewTagVoteEngine(db)
	ctx := context.Background()

	owner := fx.User("owner")
	viewer := fx.User("viewer")
	game := fx.Game(owner.ID, "detail")
	fx.Like(game.ID, viewer.ID)
	tactical := fx.Tag("tactical")
	fork := fx.Tag("fork")

	_, err := votes.ApplyOrToggle(ctx, game.ID, tactical.ID, owner.ID)
	require.NoError(t, err)
	_, err = votes.ApplyOrToggle(ctx, game.ID, tactical.ID, viewer.ID)
	require.NoError(t, err)
	_, err = votes.ApplyOrToggle(ctx, game.ID, fork.ID, owner.ID)
	require.NoError(t, err)

	detail, err := games.Get(ctx, game.ID, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", detail.Game.User.Username)
	assert.Equal(t, int64(1), detail.Likes)
	assert.True(t, detail.LikedByMe)
	require.Len(t, detail.Tags, 2)
	assert.Equal(t, "tactical", detail.Tags[0].Name)
	assert.Equal(t, int64(2), detail.Tags[0].Votes)
	assert.Equal(t, int64(1), detail.Tags[0].MyVotes)
	assert.Equal(t, "fork", detail.Tags[1].Name)
	assert.Equal(t, int64(0), detail.Tags[1].MyVotes)

	_, err = games.Get(ctx, 9999, viewer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGamesDeleteCascades(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	games := NewGames(db)
	votes := NewTagVoteEngine(db)
	ctx := context.Background()

	owner := fx.User("owner")
	other := fx.User("other")
	doomed := fx.Game(owner.ID, "doomed")
	kept := fx.Game(owner.ID, "kept")
	tag := fx.Tag("brilliancy")

	for _, g := range []*models.Game{doomed, kept} {
		fx.Like(g.ID, other.ID)
		_, err := votes.ApplyOrToggle(ctx, g.ID, tag.ID, other.ID)
		require.NoError(t, err)
	}

	t.Run("OnlyOwner", func(t *testing.T) {
		err := games.Delete(ctx, doomed.ID, other.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("RemovesLikesTagsAndVotes", func(t *testing.T) {
		require.NoError(t, games.Delete(ctx, doomed.ID, owner.ID))

		assert.Equal(t, int64(0), fx.Count(&models.Game{}, "id = ?", doomed.ID))
		assert.Equal(t, int64(0), fx.Count(&models.Like{}, "game_id = ?", doomed.ID))
		assert.Equal(t, int64(0), fx.Count(&models.GameTag{}, "game_id = ?", doomed.ID))
		assert.Equal(t, int64(1), fx.Count(&models.GameTagVote{}, "1 = 1"))

		assert.Equal(t, int64(1), fx.Count(&models.Like{}, "game_id = ?", kept.ID))
		assert.Equal(t, int64(1), fx.Count(&models.GameTag{}, "game_id = ?", kept.ID))
	})

	t.Run("Missing", func(t *testing.T) {
		err := games.Delete(ctx, doomed.ID, owner.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
