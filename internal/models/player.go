package models

import "fmt"

// Player represents a participant in a game
type Player struct {
	// ID is the chat platform user ID of the player. Unique within a roster.
	ID string

	// Name is the display name of the player (optional)
	Name string

	// Cards is the player's current hand
	Cards []Card

	// DiscardedCards is every card the player has discarded during the game
	DiscardedCards []Card

	// Score is the player's score in the current game
	Score float64

	// ChosenCard is the 1-based discard pile position the player voted for
	// this round, or 0 when the player has not voted
	ChosenCard int
}

// NewPlayer creates a player with an empty hand
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
	}
}

// DisplayName returns the player's name, falling back to "Player {id}"
func (p *Player) DisplayName() string {
	if p.Name == "" {
		return fmt.Sprintf("Player %s", p.ID)
	}
	return p.Name
}

// Equal reports whether both players share an ID
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// ResetState clears per-game state. Called on every player at game start.
func (p *Player) ResetState() {
	p.Score = 0
	p.Cards = nil
	p.DiscardedCards = nil
	p.ChosenCard = 0
}

// String implements fmt.Stringer
func (p *Player) String() string {
	return p.DisplayName()
}
