package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/chessclub-hero.jpg"
)

// User represents a registered member of the club.
type User struct {
	gorm.Model
	Username       string `gorm:"size:255;unique;not null"`
	Email          string `gorm:"size:255;unique;not null"`
	PasswordHash   string `gorm:"size:255;not null"`
	Role           string `gorm:"size:50;not null;default:'user';index"`
	FirstName      string `gorm:"size:255"`
	LastName       string `gorm:"size:255"`
	ImageURL       string `gorm:"size:512"`
	HeaderImageURL string `gorm:"size:512"`
	Location       string `gorm:"size:255"`
	Bio            string
}
