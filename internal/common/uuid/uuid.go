package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/imaginarium/internal/common/uuid UUID

// UUID generates identifiers for games, prompts and generated cards
type UUID interface {
	NewUUID() string
	NewShortID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random (v4) UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// NewShortID returns the first group of a new UUID. Short enough to embed in
// Discord component custom IDs next to other data.
func (d *DefaultUUID) NewShortID() string {
	id := uuid.New().String()
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
