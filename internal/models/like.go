package models

import "time"

// Like records that a user liked a game. The (game, user) pair is unique.
type Like struct {
	ID        uint `gorm:"primarykey"`
	GameID    uint `gorm:"not null;uniqueIndex:idx_likes_game_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_likes_game_user;index"`
	CreatedAt time.Time

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Tag{}, &Game{}, &GameTag{}, &GameTagVote{}, &Like{}}
}
