// Package pgn validates posted move text and extracts its header fields.
package pgn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ErrNoMoves is returned for text that parses but contains no moves.
var ErrNoMoves = errors.New("pgn contains no moves")

// Summary holds the fields of a parsed game that are stored alongside the PGN.
type Summary struct {
	Event  string
	Site   string
	White  string
	Black  string
	Result string
	Plies  int
}

// Parse replays the PGN and fails on any illegal or unreadable move.
func Parse(text string) (*Summary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoMoves
	}

	opt, err := chess.PGN(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("invalid pgn: %w", err)
	}
	game := chess.NewGame(opt)
	if len(game.Moves()) == 0 {
		return nil, ErrNoMoves
	}

	summary := &Summary{
		Event:  tag(game, "Event"),
		Site:   tag(game, "Site"),
		White:  tag(game, "White"),
		Black:  tag(game, "Black"),
		Result: tag(game, "Result"),
		Plies:  len(game.Moves()),
	}
	if summary.Result == "" {
		summary.Result = game.Outcome().String()
	}
	return summary, nil
}

// DefaultTitle names a game after its players.
func (s *Summary) DefaultTitle(unknown string) string {
	white, black := s.White, s.Black
	if white == "" {
		white = unknown
	}
	if black == "" {
		black = unknown
	}
	return white + " vs " + black
}

func tag(game *chess.Game, key string) string {
	pair := game.GetTagPair(key)
	if pair == nil {
		return ""
	}
	v := strings.TrimSpace(pair.Value)
	if v == "?" {
		return ""
	}
	return v
}
