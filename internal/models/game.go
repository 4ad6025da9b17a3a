package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusNotStarted indicates players may join, leave and configure
	GameStatusNotStarted GameStatus = "not_started"

	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusEnded indicates the last game has finished
	GameStatusEnded GameStatus = "ended"
)

// IsActive reports whether a game is running
func (s GameStatus) IsActive() bool {
	return s == GameStatusActive
}

// GameSummary is the frozen result of a finished game
type GameSummary struct {
	// ID is the unique identifier for the game
	ID string

	// StartedAt is when the game was started
	StartedAt time.Time

	// TookTime is how long the game lasted
	TookTime time.Duration

	// Circles is the number of circles played (including an interrupted one)
	Circles int

	// TwoPlayerMode is true when the game was played against the bot
	TwoPlayerMode bool

	// Standings are the final scores, highest first
	Standings []*ScoreEntry

	// BotScore is the bot's score in two-player mode
	BotScore float64

	// PlayersScore is the shared players' score in two-player mode
	PlayersScore float64

	// EndedEarly is true when the game was ended before anyone won
	EndedEarly bool
}
