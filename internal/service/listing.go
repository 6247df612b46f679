package service

import (
	"context"

	"chessclub/backend/internal/repository"

	"gorm.io/gorm"
)

// SortKey selects the order of a game listing.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortTitleAZ    SortKey = "title_az"
	SortTitleZA    SortKey = "title_za"
	SortUserAZ     SortKey = "user_az"
	SortUserZA     SortKey = "user_za"
	SortMostLikes  SortKey = "most_likes"
	SortLeastLikes SortKey = "least_likes"
	SortMostTags   SortKey = "most_tags"
	SortLeastTags  SortKey = "least_tags"
)

// Every order ends with the id so that ties are stable.
var sortOrders = map[SortKey][]string{
	SortNewest:     {"games.created_at DESC", "games.id ASC"},
	SortOldest:     {"games.created_at ASC", "games.id ASC"},
	SortTitleAZ:    {"LOWER(games.title) ASC", "games.id ASC"},
	SortTitleZA:    {"LOWER(games.title) DESC", "games.id ASC"},
	SortUserAZ:     {"LOWER(users.username) ASC", "games.id ASC"},
	SortUserZA:     {"LOWER(users.username) DESC", "games.id ASC"},
	SortMostLikes:  {"like_count DESC", "games.id ASC"},
	SortLeastLikes: {"like_count ASC", "games.id ASC"},
	SortMostTags:   {"tag_count DESC", "games.id ASC"},
	SortLeastTags:  {"tag_count ASC", "games.id ASC"},
}

// ParseSortKey falls back to SortNewest for unknown keys and reports whether
// the key was recognized.
func ParseSortKey(s string) (SortKey, bool) {
	key := SortKey(s)
	if _, ok := sortOrders[key]; ok {
		return key, true
	}
	return SortNewest, false
}

// ListQuery describes one listing request. Limit 0 means no paging.
type ListQuery struct {
	Sort   SortKey
	UserID uint
	TagID  uint
	Search string
	Page   int
	Limit  int
}

// Listing produces ordered, read-only views of the game catalogue. Counts are
// computed by the query itself against current state.
type Listing struct {
	games *repository.GameRepository
}

func NewListing(db *gorm.DB) *Listing {
	return &Listing{games: repository.NewGameRepository(db)}
}

// ListGames returns one page of games plus the total number of matches.
func (l *Listing) ListGames(ctx context.Context, q ListQuery) ([]repository.GameSummary, int64, error) {
	key, _ := ParseSortKey(string(q.Sort))

	offset := 0
	if q.Limit > 0 && q.Page > 1 {
		offset = (q.Page - 1) * q.Limit
	}

	filter := repository.GameFilter{UserID: q.UserID, TagID: q.TagID, Search: q.Search}
	return l.games.List(ctx, filter, sortOrders[key], q.Limit, offset)
}

// List returns every game in the order named by key.
func (l *Listing) List(ctx context.Context, key SortKey) ([]repository.GameSummary, error) {
	games, _, err := l.ListGames(ctx, ListQuery{Sort: key})
	return games, err
}
