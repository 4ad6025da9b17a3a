package used_cards

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/imaginarium/internal/models"
)

const (
	// usedCardsKey holds a hash of card URL -> media type
	usedCardsKey = "used_cards"

	defaultKeyPrefix = "imaginarium:"
)

// Config holds configuration for the Redis used-cards repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces keys, so several bots can share one Redis (optional)
	KeyPrefix string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed used-cards ledger
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    prefix + usedCardsKey,
	}, nil
}

func (r *redisRepository) AddUsedCards(ctx context.Context, input *AddUsedCardsInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	pipe := r.client.Pipeline()
	queued := 0
	for _, card := range input.Cards {
		if card.URL == "" {
			continue
		}
		pipe.HSet(ctx, r.key, card.URL, string(card.Type))
		queued++
	}
	if queued == 0 {
		return nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add used cards: %w", err)
	}

	return nil
}

// ClaimCard relies on HSETNX, which only sets a missing field
func (r *redisRepository) ClaimCard(ctx context.Context, input *ClaimCardInput) (bool, error) {
	if input == nil || input.Card.URL == "" {
		return false, ErrInvalidInput
	}

	claimed, err := r.client.HSetNX(ctx, r.key, input.Card.URL, string(input.Card.Type)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim used card: %w", err)
	}

	return claimed, nil
}

func (r *redisRepository) GetUsedCards(ctx context.Context, input *GetUsedCardsInput) (*GetUsedCardsOutput, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get used cards: %w", err)
	}

	cards := make([]models.Card, 0, len(values))
	for url, mediaType := range values {
		cards = append(cards, models.Card{URL: url, Type: models.MediaType(mediaType)})
	}
	sortCards(cards)

	return &GetUsedCardsOutput{
		Cards: cards,
	}, nil
}

func (r *redisRepository) ResetUsedCards(ctx context.Context, input *ResetUsedCardsInput) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to reset used cards: %w", err)
	}
	return nil
}
