package main

import (
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/cards"
	"github.com/KirkDiggler/imaginarium/internal/common/clock"
	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/common/uuid"
	"github.com/KirkDiggler/imaginarium/internal/handlers/discord"
	"github.com/KirkDiggler/imaginarium/internal/models"
	"github.com/KirkDiggler/imaginarium/internal/repositories/game"
	"github.com/KirkDiggler/imaginarium/internal/repositories/used_cards"
	gameService "github.com/KirkDiggler/imaginarium/internal/services/game"
	"github.com/KirkDiggler/imaginarium/internal/services/messaging"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
)

func main() {
	logger := logrus.New()
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		logger.WithError(err).Warn("invalid LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt(logger, "REDIS_DB", 0),
	})

	// Initialize repositories
	usedCardsRepo, err := used_cards.NewRedis(&used_cards.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create used cards repository")
	}

	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
		MaxHistory:  100,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create game repository")
	}

	randomizer := random.New(nil)
	uuidGenerator := uuid.New()

	rules := models.Rules{
		WinningScore:   getEnvFloat(logger, "WINNING_SCORE", models.DefaultWinningScore),
		StepTimeout:    getEnvDuration(logger, "STEP_TIMEOUT", models.DefaultStepTimeout),
		CardsPerPlayer: getEnvInt(logger, "CARDS_PER_PLAYER", models.DefaultCardsPerPlayer),
		IncludedTypes:  models.ParseMediaTypes(getEnvList("INCLUDED_TYPES", []string{string(models.MediaTypePhoto)})),
		ExcludedTypes:  models.ParseMediaTypes(getEnvList("EXCLUDED_TYPES", nil)),
	}

	factory, err := cards.NewFactory(&cards.FactoryConfig{
		VKToken:       getEnv("VK_PARSER_TOKEN", ""),
		IncludedTypes: rules.IncludedTypes,
		ExcludedTypes: rules.ExcludedTypes,
		Randomizer:    randomizer,
		Logger:        logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create source factory")
	}

	supplySvc, err := supply.New(&supply.Config{
		Factory: factory,
		DefaultSource: cards.NewDefault(&cards.DefaultConfig{
			UUIDGenerator: uuidGenerator,
		}),
		UsedCardsRepo:      usedCardsRepo,
		RetainUsedCards:    getEnvBool(logger, "RETAIN_USED_CARDS", false),
		AllowRepeatedCards: getEnvBool(logger, "ALLOW_REPEATED_CARDS", true),
		Randomizer:         randomizer,
		Logger:             logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create supply service")
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Rules:         rules,
		Supply:        supplySvc,
		GameRepo:      gameRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuidGenerator,
		Randomizer:    randomizer,
		Logger:        logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create game service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Randomizer: randomizer,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create messaging service")
	}

	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		logger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		GameService:   gameSvc,
		Supply:        supplySvc,
		Messages:      messagingSvc,
		UUIDGenerator: uuidGenerator,
		Randomizer:    randomizer,
		Logger:        logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.WithError(err).Fatal("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.WithError(err).Error("failed to stop bot")
	}
	if err := redisClient.Close(); err != nil {
		logger.WithError(err).Error("failed to close Redis client")
	}

	logger.Info("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(logger logrus.FieldLogger, key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("invalid integer, using default")
		return defaultValue
	}
	return n
}

func getEnvFloat(logger logrus.FieldLogger, key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("invalid number, using default")
		return defaultValue
	}
	return f
}

func getEnvBool(logger logrus.FieldLogger, key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("invalid boolean, using default")
		return defaultValue
	}
	return b
}

func getEnvDuration(logger logrus.FieldLogger, key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("invalid duration, using default")
		return defaultValue
	}
	return d
}

// getEnvList splits a comma separated variable
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.Split(value, ",")
}
