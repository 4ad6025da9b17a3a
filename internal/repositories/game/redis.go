package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/imaginarium/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix   = "game:"
	historyIndexKey = "game_history"
	defaultPrefix   = "imaginarium:"

	// DefaultRecentLimit is used when GetRecentGames gets no limit
	DefaultRecentLimit = 10
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces keys (optional)
	KeyPrefix string

	// MaxHistory trims the history index to the newest N games; zero keeps all (optional)
	MaxHistory int64
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	prefix     string
	maxHistory int64
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		prefix:     prefix,
		maxHistory: cfg.MaxHistory,
	}, nil
}

func (r *redisRepository) gameKey(gameID string) string {
	return fmt.Sprintf("%s%s%s", r.prefix, gameKeyPrefix, gameID)
}

func (r *redisRepository) historyKey() string {
	return r.prefix + historyIndexKey
}

// SaveGame persists a game summary to Redis and indexes it by start time
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Summary == nil {
		return errors.New("input and summary cannot be nil")
	}
	if input.Summary.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	summaryJSON, err := json.Marshal(input.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.gameKey(input.Summary.ID), summaryJSON, 0)
	pipe.ZAdd(ctx, r.historyKey(), redis.Z{
		Score:  float64(input.Summary.StartedAt.UnixNano()),
		Member: input.Summary.ID,
	})

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	if r.maxHistory > 0 {
		if err := r.trim(ctx); err != nil {
			return err
		}
	}

	return nil
}

// trim drops the oldest games beyond maxHistory
func (r *redisRepository) trim(ctx context.Context) error {
	stale, err := r.client.ZRange(ctx, r.historyKey(), 0, -r.maxHistory-1).Result()
	if err != nil {
		return fmt.Errorf("failed to read game history: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, gameID := range stale {
		pipe.Del(ctx, r.gameKey(gameID))
		pipe.ZRem(ctx, r.historyKey(), gameID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to trim game history: %w", err)
	}

	return nil
}

// GetRecentGames retrieves the newest game summaries from Redis
func (r *redisRepository) GetRecentGames(ctx context.Context, input *GetRecentGamesInput) (*GetRecentGamesOutput, error) {
	limit := DefaultRecentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	gameIDs, err := r.client.ZRevRange(ctx, r.historyKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game history: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetRecentGamesOutput{
			Games: []*models.GameSummary{},
		}, nil
	}

	// Fetch all summaries in one round trip, keeping index order
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(gameIDs))
	for i, gameID := range gameIDs {
		commands[i] = pipe.Get(ctx, r.gameKey(gameID))
	}

	// redis.Nil from a single GET is reported by Exec too; handled per command below
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*models.GameSummary, 0, len(gameIDs))
	for i, cmd := range commands {
		summaryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Deleted between reading the index and fetching the game
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameIDs[i], err)
		}

		var summary models.GameSummary
		if err := json.Unmarshal([]byte(summaryJSON), &summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameIDs[i], err)
		}

		games = append(games, &summary)
	}

	return &GetRecentGamesOutput{
		Games: games,
	}, nil
}
