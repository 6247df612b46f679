package models

import "time"

// Tag is a global label (e.g., "sacrifice", "miniature", "endgame") that any
// user can apply to any game.
type Tag struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:100;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GameTag records that a tag has been applied to a game.
// At most one row exists per (game, tag) and it is never removed by voting.
type GameTag struct {
	ID        uint `gorm:"primarykey"`
	GameID    uint `gorm:"not null;uniqueIndex:idx_game_tags_game_tag"`
	TagID     uint `gorm:"not null;uniqueIndex:idx_game_tags_game_tag;index"`
	CreatedAt time.Time

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	Tag  Tag  `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE;"`
}

// GameTagVote is one user's upvote on a GameTag.
type GameTagVote struct {
	ID        uint `gorm:"primarykey"`
	GameTagID uint `gorm:"not null;uniqueIndex:idx_game_tag_votes_game_tag_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_game_tag_votes_game_tag_user;index"`
	CreatedAt time.Time

	GameTag GameTag `gorm:"foreignKey:GameTagID;constraint:OnDelete:CASCADE;"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
