package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/imaginarium/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// JoinGame adds a player to the roster
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// LeaveGame removes a player from the roster
	LeaveGame(ctx context.Context, input *LeaveGameInput) error

	// ShufflePlayers randomly reorders the roster
	ShufflePlayers(ctx context.Context) (*ShufflePlayersOutput, error)

	// GetPlayers returns the roster
	GetPlayers(ctx context.Context) (*GetPlayersOutput, error)

	// GetScores returns the standings of the running or the last game
	GetScores(ctx context.Context) (*GetScoresOutput, error)

	// GetRules returns the rules the next game is played with
	GetRules(ctx context.Context) (*GetRulesOutput, error)

	// UpdateRules changes the rules between games
	UpdateRules(ctx context.Context, input *UpdateRulesInput) (*UpdateRulesOutput, error)

	// StartGame runs a whole game and returns once it is over
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// EndGame asks the running game to stop at its next phase boundary
	EndGame(ctx context.Context) error

	// GetCondition returns the running game's condition
	GetCondition(ctx context.Context) (*Condition, error)

	// GetHistory lists finished games
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
