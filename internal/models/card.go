package models

import "strings"

// MediaType is the kind of content a card points at
type MediaType string

const (
	// MediaTypePhoto is a still image
	MediaTypePhoto MediaType = "photo"

	// MediaTypeVideo is a video player link
	MediaTypeVideo MediaType = "video"

	// MediaTypeUnknown is used when a source cannot tell
	MediaTypeUnknown MediaType = "unknown"
)

// Card is an opaque link to retrievable content. Cards are never mutated,
// only moved between hands, the discard pile and the used-cards ledger.
type Card struct {
	// URL is the link to the content
	URL string

	// Type is the inferred media type of the content
	Type MediaType
}

// String implements fmt.Stringer
func (c Card) String() string {
	return c.URL
}

// BotID attributes a discarded card to the bot rather than a player
const BotID = ""

// DiscardedCard is a card in the round's discard pile and who put it there
type DiscardedCard struct {
	// Card is the discarded card
	Card Card

	// PlayerID is the ID of the discarding player, or BotID
	PlayerID string
}

// IsBot reports whether the bot discarded the card
func (d DiscardedCard) IsBot() bool {
	return d.PlayerID == BotID
}

// ParseMediaTypes converts configuration strings to media types, skipping blanks
func ParseMediaTypes(values []string) []MediaType {
	types := make([]MediaType, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		types = append(types, MediaType(v))
	}
	return types
}
