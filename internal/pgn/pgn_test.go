package pgn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scholarsMate = `[Event "Club Blitz"]
[Site "?"]
[White "Alice"]
[Black "Bob"]
[Result "1-0"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0`

func TestParse(t *testing.T) {
	t.Run("HeadersAndMoves", func(t *testing.T) {
		s, err := Parse(scholarsMate)
		require.NoError(t, err)
		assert.Equal(t, "Club Blitz", s.Event)
		assert.Equal(t, "", s.Site)
		assert.Equal(t, "Alice", s.White)
		assert.Equal(t, "Bob", s.Black)
		assert.Equal(t, "1-0", s.Result)
		assert.Equal(t, 7, s.Plies)
		assert.Equal(t, "Alice vs Bob", s.DefaultTitle("???"))
	})

	t.Run("MovesOnly", func(t *testing.T) {
		s, err := Parse("1. d4 d5 2. c4 e6 *")
		require.NoError(t, err)
		assert.Equal(t, 4, s.Plies)
		assert.Equal(t, "??? vs ???", s.DefaultTitle("???"))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Parse("   \n")
		assert.ErrorIs(t, err, ErrNoMoves)
	})

	t.Run("IllegalMove", func(t *testing.T) {
		_, err := Parse("1. e4 e5 2. Ke3 Qh4 3. Kxh8 *")
		assert.Error(t, err)
	})
}
