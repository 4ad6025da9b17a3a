package supply

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/cards"
	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/repositories/used_cards"
)

const (
	// DefaultMaxAttempts bounds the draw retry loop
	DefaultMaxAttempts = 10

	// DefaultMaxConcurrentDraws bounds the GetRandomCards fan-out
	DefaultMaxConcurrentDraws = 8
)

// Config holds configuration for the supply service
type Config struct {
	// Factory resolves links into sources
	Factory SourceFactory

	// DefaultSource is drawn from when the pool is empty (optional)
	DefaultSource cards.Source

	// UsedCardsRepo is the used-cards ledger (optional, in-memory when nil)
	UsedCardsRepo used_cards.Repository

	// RetainUsedCards records every drawn card in the ledger
	RetainUsedCards bool

	// AllowRepeatedCards lets a card that is already in the ledger be dealt again.
	// When false, drawn cards are recorded regardless of RetainUsedCards.
	AllowRepeatedCards bool

	// Randomizer (optional)
	Randomizer random.Randomizer

	// MaxAttempts bounds retries of a single draw (optional)
	MaxAttempts int

	// MaxConcurrentDraws bounds parallel draws (optional)
	MaxConcurrentDraws int

	// Logger (optional)
	Logger logrus.FieldLogger
}

type AddSourceInput struct {
	Link string
}

type AddSourceOutput struct {
	Source cards.Source
}

type RemoveSourceInput struct {
	Link string
}

type GetSourcesOutput struct {
	Sources []cards.Source
}
