package cards

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/imaginarium/internal/common/uuid"
	"github.com/KirkDiggler/imaginarium/internal/models"
)

const (
	// DefaultSourceLink is the image service the bottomless source points at
	DefaultSourceLink = "https://picsum.photos"

	defaultImageWidth  = 800
	defaultImageHeight = 600
)

// DefaultConfig holds configuration for the bottomless default source
type DefaultConfig struct {
	// Link overrides DefaultSourceLink (optional)
	Link string

	// UUIDGenerator seeds each generated image (optional)
	UUIDGenerator uuid.UUID

	// Width and Height of generated images (optional)
	Width  int
	Height int
}

// Default is the fallback source used when no other source is usable.
// Every card is a freshly seeded random image, so it never runs dry and
// never reports ErrInvalidSource.
type Default struct {
	link   string
	uuid   uuid.UUID
	width  int
	height int
}

// NewDefault creates the bottomless default source
func NewDefault(cfg *DefaultConfig) *Default {
	if cfg == nil {
		cfg = &DefaultConfig{}
	}

	d := &Default{
		link:   cfg.Link,
		uuid:   cfg.UUIDGenerator,
		width:  cfg.Width,
		height: cfg.Height,
	}
	if d.link == "" {
		d.link = DefaultSourceLink
	}
	if d.uuid == nil {
		d.uuid = uuid.New()
	}
	if d.width <= 0 {
		d.width = defaultImageWidth
	}
	if d.height <= 0 {
		d.height = defaultImageHeight
	}

	return d
}

// Link returns the image service link
func (d *Default) Link() string {
	return d.link
}

// CardCount is always Unlimited
func (d *Default) CardCount(ctx context.Context) (int, error) {
	return Unlimited, nil
}

// Validate always succeeds
func (d *Default) Validate(ctx context.Context) error {
	return nil
}

// GetRandomCard returns a link to a new random image
func (d *Default) GetRandomCard(ctx context.Context) (*models.Card, error) {
	return &models.Card{
		URL:  fmt.Sprintf("%s/seed/%s/%d/%d", d.link, d.uuid.NewShortID(), d.width, d.height),
		Type: models.MediaTypePhoto,
	}, nil
}
