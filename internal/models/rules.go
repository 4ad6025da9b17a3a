package models

import "time"

const (
	// DefaultWinningScore is the score that ends the game
	DefaultWinningScore float64 = 3

	// DefaultStepTimeout is how long a player has to make a choice
	DefaultStepTimeout = 60 * time.Second

	// DefaultCardsPerPlayer is the hand size
	DefaultCardsPerPlayer = 6

	// MinCardsPerPlayer is the smallest playable hand. Two-player mode
	// discards two cards per round.
	MinCardsPerPlayer = 2
)

// Rules are the settings of a game. They can only change between games.
type Rules struct {
	// WinningScore ends the game at the end of a circle once reached
	WinningScore float64

	// StepTimeout is how long a player-facing prompt waits before auto-picking
	StepTimeout time.Duration

	// CardsPerPlayer is the hand size dealt to every player
	CardsPerPlayer int

	// IncludedTypes limits cards to these media types (empty means any)
	IncludedTypes []MediaType

	// ExcludedTypes rejects cards of these media types
	ExcludedTypes []MediaType
}

// DefaultRules returns the standard rules
func DefaultRules() Rules {
	return Rules{
		WinningScore:   DefaultWinningScore,
		StepTimeout:    DefaultStepTimeout,
		CardsPerPlayer: DefaultCardsPerPlayer,
		IncludedTypes:  []MediaType{MediaTypePhoto},
	}
}

// WithDefaults fills zero values with defaults
func (r Rules) WithDefaults() Rules {
	if r.WinningScore <= 0 {
		r.WinningScore = DefaultWinningScore
	}
	if r.StepTimeout <= 0 {
		r.StepTimeout = DefaultStepTimeout
	}
	if r.CardsPerPlayer <= 0 {
		r.CardsPerPlayer = DefaultCardsPerPlayer
	}
	return r
}

// Allows reports whether a card of type t passes the include/exclude filters
func (r Rules) Allows(t MediaType) bool {
	return TypeAllowed(t, r.IncludedTypes, r.ExcludedTypes)
}

// TypeAllowed applies include/exclude filtering. Exclusion wins; an empty
// include list admits every type not excluded.
func TypeAllowed(t MediaType, included, excluded []MediaType) bool {
	for _, e := range excluded {
		if e == t {
			return false
		}
	}
	if len(included) == 0 {
		return true
	}
	for _, i := range included {
		if i == t {
			return true
		}
	}
	return false
}
