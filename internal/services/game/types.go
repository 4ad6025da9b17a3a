package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/common/clock"
	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/common/uuid"
	"github.com/KirkDiggler/imaginarium/internal/models"
	gameRepo "github.com/KirkDiggler/imaginarium/internal/repositories/game"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
)

// Config holds configuration for the game service
type Config struct {
	// Rules the next game is played with; zero values take defaults
	Rules models.Rules

	// Supply deals the cards
	Supply supply.Service

	// GameRepo keeps finished games (optional)
	GameRepo gameRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Randomizer shuffles the roster and the discard pile (optional)
	Randomizer random.Randomizer

	// Logger (optional)
	Logger logrus.FieldLogger
}

// JoinGameInput contains parameters for joining the roster
type JoinGameInput struct {
	// PlayerID is the chat user ID of the player
	PlayerID string

	// PlayerName is the display name of the player (optional)
	PlayerName string
}

// JoinGameOutput contains the result of joining the roster
type JoinGameOutput struct {
	Player *models.Player

	// PlayerCount is the roster size after the join
	PlayerCount int
}

// LeaveGameInput contains parameters for leaving the roster
type LeaveGameInput struct {
	PlayerID string
}

// ShufflePlayersOutput contains the roster in its new turn order
type ShufflePlayersOutput struct {
	Players []*models.Player
}

// GetPlayersOutput contains the roster in turn order
type GetPlayersOutput struct {
	Players []*models.Player
}

// GetScoresOutput contains the scores of the running or the last game
type GetScoresOutput struct {
	Scoreboard *models.Scoreboard
}

// GetRulesOutput contains the current rules
type GetRulesOutput struct {
	Rules models.Rules
}

// UpdateRulesInput contains the rules to change; nil fields are left as they are
type UpdateRulesInput struct {
	WinningScore   *float64
	StepTimeout    *time.Duration
	CardsPerPlayer *int
}

// UpdateRulesOutput contains the rules after the update
type UpdateRulesOutput struct {
	Rules models.Rules
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// Hooks fulfil the game's phases; nil hooks do nothing
	Hooks *Hooks
}

// StartGameOutput contains the result of a finished game
type StartGameOutput struct {
	Summary *models.GameSummary
}

// GetHistoryInput contains parameters for listing finished games
type GetHistoryInput struct {
	Limit int
}

// GetHistoryOutput contains finished games, newest first
type GetHistoryOutput struct {
	Games []*models.GameSummary
}
