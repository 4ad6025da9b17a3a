package models

import "sort"

// ScoreEntry is one line of the scoreboard
type ScoreEntry struct {
	// PlayerID is the ID of the player, or BotID for the bot
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the player's score
	Score float64
}

// Scoreboard represents the current standings in a game
type Scoreboard struct {
	// TwoPlayerMode is true when players score jointly against the bot
	TwoPlayerMode bool

	// Entries contains one entry per player, or {players, bot} in two-player mode
	Entries []*ScoreEntry
}

// SortEntries orders entries by score, highest first. Ties keep roster order.
func SortEntries(entries []*ScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
