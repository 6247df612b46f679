package service

import (
	"context"
	"testing"
	"time"

	"chessclub/backend/internal/repository"
	"chessclub/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(games []repository.GameSummary) []uint {
	out := make([]uint, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func TestListingSortKeys(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	listing := NewListing(db)
	ctx := context.Background()

	zed := fx.User("Zed")
	amy := fx.User("amy")
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	g1 := fx.GameAt(zed.ID, "beta", base)
	g2 := fx.GameAt(amy.ID, "Alpha", base.Add(2*time.Hour))
	g3 := fx.GameAt(zed.ID, "alpha", base.Add(time.Hour))
	g4 := fx.GameAt(amy.ID, "Gamma", base.Add(2*time.Hour))

	for _, u := range []uint{zed.ID, amy.ID} {
		fx.Like(g3.ID, u)
	}
	fx.Like(g1.ID, amy.ID)

	opening := fx.Tag("opening")
	endgame := fx.Tag("endgame")
	fx.GameTag(g4.ID, opening.ID)
	fx.GameTag(g4.ID, endgame.ID)
	fx.GameTag(g2.ID, opening.ID)

	cases := []struct {
		key  SortKey
		want []uint
	}{
		{SortNewest, []uint{g2.ID, g4.ID, g3.ID, g1.ID}},
		{SortOldest, []uint{g1.ID, g3.ID, g2.ID, g4.ID}},
		{SortTitleAZ, []uint{g2.ID, g3.ID, g1.ID, g4.ID}},
		{SortTitleZA, []uint{g4.ID, g1.ID, g2.ID, g3.ID}},
		{SortUserAZ, []uint{g2.ID, g4.ID, g1.ID, g3.ID}},
		{SortUserZA, []uint{g1.ID, g3.ID, g2.ID, g4.ID}},
		{SortMostLikes, []uint{g3.ID, g1.ID, g2.ID, g4.ID}},
		{SortLeastLikes, []uint{g2.ID, g4.ID, g1.ID, g3.ID}},
		{SortMostTags, []uint{g4.ID, g2.ID, g1.ID, g3.ID}},
		{SortLeastTags, []uint{g1.ID, g3.ID, g2.ID, g4.ID}},
		{SortKey("bogus"), []uint{g2.ID, g4.ID, g3.ID, g1.ID}},
	}
	for _, tc := range cases {
		t.Run(string(tc.key), func(t *testing.T) {
			games, err := listing.List(ctx, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(games))
		})
	}

	t.Run("Aggregates", func(t *testing.T) {
		games, err := listing.List(ctx, SortOldest)
		require.NoError(t, err)
		require.Len(t, games, 4)
		assert.Equal(t, "Zed", games[0].Username)
		assert.Equal(t, int64(1), games[0].LikeCount)
		assert.Equal(t, int64(2), games[1].LikeCount)
		assert.Equal(t, int64(2), games[3].TagCount)
	})
}

func TestListingMostLikesTieBreak(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	listing := NewListing(db)

	owner := fx.User("owner")
	fans := []uint{fx.User("fan1").ID, fx.User("fan2").ID, fx.User("fan3").ID}

	g1 := fx.Game(owner.ID, "G1")
	g2 := fx.Game(owner.ID, "G2")
	g3 := fx.Game(owner.ID, "G3")
	for _, fan := range fans {
		fx.Like(g1.ID, fan)
		fx.Like(g2.ID, fan)
	}
	fx.Like(g3.ID, fans[0])

	games, err := listing.List(context.Background(), SortMostLikes)
	require.NoError(t, err)
	assert.Equal(t, []uint{g1.ID, g2.ID, g3.ID}, ids(games))
}

func TestListingFiltersAndPaging(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	listing := NewListing(db)
	ctx := context.Background()

	alice := fx.User("alice")
	bob := fx.User("bob")
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a1 := fx.GameAt(alice.ID, "Sicilian Najdorf", base)
	a2 := fx.GameAt(alice.ID, "French Winawer", base.Add(time.Minute))
	b1 := fx.GameAt(bob.ID, "Sicilian Dragon", base.Add(2*time.Minute))

	fork := fx.Tag("fork")
	fx.GameTag(a2.ID, fork.ID)
	fx.GameTag(b1.ID, fork.ID)

	t.Run("ByTag", func(t *testing.T) {
		games, total, err := listing.ListGames(ctx, ListQuery{Sort: SortOldest, TagID: fork.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []uint{a2.ID, b1.ID}, ids(games))
	})

	t.Run("ByUser", func(t *testing.T) {
		games, total, err := listing.ListGames(ctx, ListQuery{Sort: SortOldest, UserID: alice.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []uint{a1.ID, a2.ID}, ids(games))
	})

	t.Run("Search", func(t *testing.T) {
		games, total, err := listing.ListGames(ctx, ListQuery{Sort: SortOldest, Search: "sicilian"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []uint{a1.ID, b1.ID}, ids(games))
	})

	t.Run("Paging", func(t *testing.T) {
		games, total, err := listing.ListGames(ctx, ListQuery{Sort: SortOldest, Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []uint{b1.ID}, ids(games))
	})
}
