package cards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/models"
)

const (
	// DefaultVKBaseURL is the VK API method endpoint
	DefaultVKBaseURL = "https://api.vk.com/method/"

	// VKAPIVersion is the VK API version requested
	VKAPIVersion = "5.131"

	// vkTooManyRequests is the VK API error code for "too many requests per second"
	vkTooManyRequests = 6

	defaultVKMaxAttempts      = 10
	defaultVKRateLimitBackoff = time.Second
	defaultVKTimeout          = 10 * time.Second
)

// VKConfig holds configuration for a VK wall source
type VKConfig struct {
	// Link is the public page or group link, e.g. https://vk.com/somegroup
	Link string

	// Token is the VK API access token
	Token string

	// IncludedTypes and ExcludedTypes filter attachments
	IncludedTypes []models.MediaType
	ExcludedTypes []models.MediaType

	// HTTPClient (optional)
	HTTPClient *http.Client

	// BaseURL overrides DefaultVKBaseURL (optional)
	BaseURL string

	// Randomizer (optional)
	Randomizer random.Randomizer

	// MaxAttempts caps internal retries per card: empty posts, filtered posts
	// and rate limits (optional)
	MaxAttempts int

	// RateLimitBackoff is the wait after a rate limit response (optional)
	RateLimitBackoff time.Duration

	// Logger (optional)
	Logger logrus.FieldLogger
}

// VK draws cards from the attachments of posts on a VK wall
type VK struct {
	link          string
	domain        string
	token         string
	baseURL       string
	includedTypes []models.MediaType
	excludedTypes []models.MediaType
	client        *http.Client
	random        random.Randomizer
	maxAttempts   int
	backoff       time.Duration
	logger        logrus.FieldLogger

	// postCount is the last post count VK reported; 0 means unknown
	mu        sync.Mutex
	postCount int
}

// vkTypes maps VK attachment types to card media types
var vkTypes = map[string]models.MediaType{
	"photo": models.MediaTypePhoto,
	"video": models.MediaTypeVideo,
}

// NewVK creates a VK wall source. The wall domain is the last path segment of the link.
func NewVK(cfg *VKConfig) (*VK, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	domain := vkDomain(cfg.Link)
	if domain == "" {
		return nil, fmt.Errorf("%w: no wall in %q", ErrUnsupportedSource, cfg.Link)
	}

	v := &VK{
		link:          cfg.Link,
		domain:        domain,
		token:         cfg.Token,
		baseURL:       cfg.BaseURL,
		includedTypes: cfg.IncludedTypes,
		excludedTypes: cfg.ExcludedTypes,
		client:        cfg.HTTPClient,
		random:        cfg.Randomizer,
		maxAttempts:   cfg.MaxAttempts,
		backoff:       cfg.RateLimitBackoff,
		logger:        cfg.Logger,
	}
	if v.baseURL == "" {
		v.baseURL = DefaultVKBaseURL
	}
	if !strings.HasSuffix(v.baseURL, "/") {
		v.baseURL += "/"
	}
	if v.client == nil {
		v.client = &http.Client{Timeout: defaultVKTimeout}
	}
	if v.random == nil {
		v.random = random.New(nil)
	}
	if v.maxAttempts <= 0 {
		v.maxAttempts = defaultVKMaxAttempts
	}
	if v.backoff <= 0 {
		v.backoff = defaultVKRateLimitBackoff
	}
	if v.logger == nil {
		v.logger = logrus.StandardLogger()
	}
	v.logger = v.logger.WithField("source", v.link)

	return v, nil
}

func vkDomain(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return ""
	}
	path := strings.Trim(u.Path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	return path
}

// Link returns the wall link
func (v *VK) Link() string {
	return v.link
}

// CardCount returns the number of posts on the wall and caches it
func (v *VK) CardCount(ctx context.Context) (int, error) {
	var page vkWallPage
	err := v.call(ctx, "wall.get", url.Values{
		"domain": {v.domain},
		"count":  {"1"},
	}, &page)
	if err != nil {
		return 0, err
	}

	v.setPostCount(page.Count)
	return page.Count, nil
}

func (v *VK) setPostCount(count int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.postCount = count
}

// cachedCount fetches the post count only when none is known
func (v *VK) cachedCount(ctx context.Context) (int, error) {
	v.mu.Lock()
	count := v.postCount
	v.mu.Unlock()

	if count > 0 {
		return count, nil
	}
	return v.CardCount(ctx)
}

// Validate fails when the wall is closed, missing or empty
func (v *VK) Validate(ctx context.Context) error {
	count, err := v.CardCount(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", ErrNoAnyCards, v.link)
	}
	return nil
}

// GetRandomCard picks a random post and returns one random attachment that
// passes the type filters. Reposts are unwrapped to the original post.
// The offset comes from the cached post count; every page refreshes it.
func (v *VK) GetRandomCard(ctx context.Context) (*models.Card, error) {
	for attempt := 1; attempt <= v.maxAttempts; attempt++ {
		count, err := v.cachedCount(ctx)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoAnyCards, v.link)
		}

		var page vkWallPage
		err = v.call(ctx, "wall.get", url.Values{
			"domain": {v.domain},
			"offset": {strconv.Itoa(v.random.Intn(count))},
			"count":  {"1"},
		}, &page)
		if err != nil {
			return nil, err
		}
		v.setPostCount(page.Count)

		card, err := v.cardFromPage(ctx, &page)
		if err != nil {
			return nil, err
		}
		if card != nil {
			return card, nil
		}

		v.logger.WithField("attempt", attempt).Debug("post has no suitable attachments, retrying")
	}

	return nil, fmt.Errorf("%w: no suitable attachments after %d attempts: %s", ErrNoAnyCards, v.maxAttempts, v.link)
}

// cardFromPage returns nil, nil when the post has nothing usable
func (v *VK) cardFromPage(ctx context.Context, page *vkWallPage) (*models.Card, error) {
	if len(page.Items) == 0 {
		return nil, nil
	}

	post := page.Items[0]
	if len(post.CopyHistory) > 0 {
		post = post.CopyHistory[0]
	}
	if len(post.Attachments) == 0 {
		return nil, nil
	}

	attachments := post.Attachments
	v.random.Shuffle(len(attachments), func(i, j int) {
		attachments[i], attachments[j] = attachments[j], attachments[i]
	})

	for _, attachment := range attachments {
		mediaType, ok := vkTypes[attachment.Type]
		if !ok || !models.TypeAllowed(mediaType, v.includedTypes, v.excludedTypes) {
			continue
		}

		link, err := v.attachmentLink(ctx, &attachment)
		if err != nil {
			return nil, err
		}
		if link == "" {
			continue
		}

		return &models.Card{URL: link, Type: mediaType}, nil
	}

	return nil, nil
}

func (v *VK) attachmentLink(ctx context.Context, attachment *vkAttachment) (string, error) {
	switch attachment.Type {
	case "photo":
		if attachment.Photo == nil || len(attachment.Photo.Sizes) == 0 {
			return "", nil
		}
		// Sizes are ordered smallest to largest
		return attachment.Photo.Sizes[len(attachment.Photo.Sizes)-1].URL, nil
	case "video":
		if attachment.Video == nil {
			return "", nil
		}
		var videos vkVideoPage
		err := v.call(ctx, "video.get", url.Values{
			"videos": {fmt.Sprintf("%d_%d", attachment.Video.OwnerID, attachment.Video.ID)},
		}, &videos)
		if err != nil {
			return "", err
		}
		if len(videos.Items) == 0 {
			return "", nil
		}
		return videos.Items[0].Player, nil
	}
	return "", nil
}

// call invokes a VK API method. Rate limit responses are retried after a
// backoff; every other failure is reported as ErrInvalidSource.
func (v *VK) call(ctx context.Context, method string, params url.Values, out interface{}) error {
	params.Set("access_token", v.token)
	params.Set("v", VKAPIVersion)
	endpoint := v.baseURL + method + "?" + params.Encode()

	for attempt := 1; attempt <= v.maxAttempts; attempt++ {
		err := v.do(ctx, endpoint, out)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrRateLimited) {
			return err
		}

		v.logger.WithFields(logrus.Fields{
			"method":  method,
			"attempt": attempt,
		}).Warn("vk rate limit hit, backing off")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(v.backoff):
		}
	}

	return fmt.Errorf("%w: %s still rate limited after %d attempts", ErrInvalidSource, method, v.maxAttempts)
}

func (v *VK) do(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %v", ErrInvalidSource, err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: vk responded with status %d", ErrInvalidSource, resp.StatusCode)
	}

	var envelope vkEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: failed to decode vk response: %v", ErrInvalidSource, err)
	}

	if envelope.Error != nil {
		if envelope.Error.Code == vkTooManyRequests {
			return ErrRateLimited
		}
		return fmt.Errorf("%w: vk api error %d: %s", ErrInvalidSource, envelope.Error.Code, envelope.Error.Message)
	}

	if err := json.Unmarshal(envelope.Response, out); err != nil {
		return fmt.Errorf("%w: failed to decode vk payload: %v", ErrInvalidSource, err)
	}

	return nil
}

type vkEnvelope struct {
	Response json.RawMessage `json:"response"`
	Error    *vkError        `json:"error"`
}

type vkError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

type vkWallPage struct {
	Count int      `json:"count"`
	Items []vkPost `json:"items"`
}

type vkPost struct {
	Attachments []vkAttachment `json:"attachments"`
	CopyHistory []vkPost       `json:"copy_history"`
}

type vkAttachment struct {
	Type  string   `json:"type"`
	Photo *vkPhoto `json:"photo,omitempty"`
	Video *vkVideo `json:"video,omitempty"`
}

type vkPhoto struct {
	Sizes []vkPhotoSize `json:"sizes"`
}

type vkPhotoSize struct {
	URL string `json:"url"`
}

type vkVideo struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"owner_id"`
}

type vkVideoPage struct {
	Items []vkVideoItem `json:"items"`
}

type vkVideoItem struct {
	Player string `json:"player"`
}
