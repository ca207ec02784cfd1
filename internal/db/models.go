package db

import (
	"time"

	"gorm.io/datatypes"
)

type Treasure struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Answer    string    `gorm:"size:255;not null;uniqueIndex:idx_treasures_active_answer,where:active" json:"answer"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	Active    bool      `gorm:"not null;default:false" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	Guesses   []Guess   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Guess is a player's address attempt against a treasure. WinningDistance
// is meters from the treasure, set only for winners.
type Guess struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TreasureID      uint      `gorm:"index;not null;uniqueIndex:idx_guesses_winner_email,where:is_winner" json:"treasure_id"`
	Email           string    `gorm:"size:255;not null;uniqueIndex:idx_guesses_winner_email,where:is_winner" json:"email"`
	Answer          string    `gorm:"size:255;not null" json:"answer"`
	Latitude        float64   `gorm:"not null" json:"latitude"`
	Longitude       float64   `gorm:"not null" json:"longitude"`
	IsWinner        bool      `gorm:"not null;default:false" json:"is_winner"`
	WinningDistance *int      `json:"winning_distance"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

type Event struct {
	ID         uint           `gorm:"primaryKey"`
	TreasureID *uint          `gorm:"index"`
	GuessID    *uint          `gorm:"index"`
	Type       string         `gorm:"size:64;not null"`
	Payload    datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"not null"`
}
