package models

import "time"

// UnknownPlayer is stored when the PGN carries no player name.
const UnknownPlayer = "???"

// Game is a chess game posted by a user as PGN text.
// Games are hard-deleted so that their likes and tag applications go with them.
type Game struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index"`
	Title     string    `gorm:"size:255;not null"`
	PGN       string    `gorm:"column:pgn;type:text;not null"`
	Event     string    `gorm:"size:255"`
	Site      string    `gorm:"size:255"`
	White     string    `gorm:"size:255;not null;default:'???'"`
	Black     string    `gorm:"size:255;not null;default:'???'"`
	Result    string    `gorm:"size:16"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
