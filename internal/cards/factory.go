package cards

import (
	"fmt"
	"net/http"
	"net/mail"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/models"
)

// Platform is the content provider a link belongs to
type Platform string

const (
	PlatformVK        Platform = "vk"
	PlatformDiscord   Platform = "discord"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
	PlatformUnknown   Platform = ""
)

// FactoryConfig holds configuration shared by every source the factory creates
type FactoryConfig struct {
	// VKToken is the VK API access token
	VKToken string

	// IncludedTypes and ExcludedTypes filter the cards sources return
	IncludedTypes []models.MediaType
	ExcludedTypes []models.MediaType

	// HTTPClient used by network sources (optional)
	HTTPClient *http.Client

	// VKBaseURL overrides the VK API endpoint (optional, for tests)
	VKBaseURL string

	// Randomizer (optional)
	Randomizer random.Randomizer

	// Logger (optional)
	Logger logrus.FieldLogger
}

// Factory turns links into sources
type Factory struct {
	config *FactoryConfig
}

// NewFactory creates a new source factory
func NewFactory(cfg *FactoryConfig) (*Factory, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return &Factory{config: cfg}, nil
}

// NewSource resolves a link to a concrete source by its platform
func (f *Factory) NewSource(link string) (Source, error) {
	if strings.TrimSuffix(strings.TrimSpace(link), "/") == DefaultSourceLink {
		return NewDefault(&DefaultConfig{}), nil
	}

	switch DetectPlatform(link) {
	case PlatformVK:
		return NewVK(&VKConfig{
			Link:          link,
			Token:         f.config.VKToken,
			IncludedTypes: f.config.IncludedTypes,
			ExcludedTypes: f.config.ExcludedTypes,
			HTTPClient:    f.config.HTTPClient,
			BaseURL:       f.config.VKBaseURL,
			Randomizer:    f.config.Randomizer,
			Logger:        f.config.Logger,
		})
	default:
		// Discord, Instagram, Twitter and TikTok links are recognised but
		// have no source implementation yet
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, link)
	}
}

// DetectPlatform reduces a link's host to its "middle" label, so both
// vk.com and m.vk.com map to vk. E-mail addresses and unparsable links
// are PlatformUnknown.
func DetectPlatform(link string) Platform {
	link = strings.TrimSpace(link)
	if link == "" {
		return PlatformUnknown
	}

	if _, err := mail.ParseAddress(link); err == nil && !strings.Contains(link, "://") {
		return PlatformUnknown
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return PlatformUnknown
	}

	labels := strings.Split(strings.ToLower(u.Hostname()), ".")
	if len(labels) < 2 {
		return PlatformUnknown
	}
	// ceil(n/2) - 1
	name := labels[(len(labels)+1)/2-1]

	switch Platform(name) {
	case PlatformVK, PlatformDiscord, PlatformInstagram, PlatformTwitter, PlatformTikTok:
		return Platform(name)
	}
	return PlatformUnknown
}
