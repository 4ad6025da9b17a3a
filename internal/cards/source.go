package cards

import (
	"context"

	"github.com/KirkDiggler/imaginarium/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/imaginarium/internal/cards Source

// Unlimited is the card count reported by bottomless sources
const Unlimited = -1

// Source is an external provider of card content.
// Two sources are the same source when their links are equal.
type Source interface {
	// Link returns the link the source was created from
	Link() string

	// CardCount returns the number of retrievable cards, or Unlimited
	CardCount(ctx context.Context) (int, error)

	// Validate returns ErrNoAnyCards when the source is reachable but empty
	// and ErrInvalidSource when it is unreachable or closed
	Validate(ctx context.Context) error

	// GetRandomCard fetches one random card matching the source's type filters.
	// Posts without suitable attachments are skipped internally.
	GetRandomCard(ctx context.Context) (*models.Card, error)
}

// SourceError is a custom error type for card source errors
type SourceError string

// Error implements the error interface
func (e SourceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidSource     SourceError = "the source is currently unavailable"
	ErrNoAnyCards        SourceError = "the source does not contain any cards that can be received"
	ErrUnsupportedSource SourceError = "the source is unsupported"
	ErrRateLimited       SourceError = "the source is rate limited"
	ErrNilConfig         SourceError = "config cannot be nil"
)

// SameSource reports whether two sources share a link
func SameSource(a, b Source) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Link() == b.Link()
}
