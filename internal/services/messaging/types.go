package messaging

import "github.com/KirkDiggler/imaginarium/internal/common/random"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// RoundOutcome classifies a round by how many voters found the target card
type RoundOutcome string

const (
	RoundOutcomeNobodyFound   RoundOutcome = "nobody_found"
	RoundOutcomeSomeFound     RoundOutcome = "some_found"
	RoundOutcomeEveryoneFound RoundOutcome = "everyone_found"
)

// GetJoinMessageInput contains parameters for getting a join message
type GetJoinMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// PlayerCount is the roster size after the join
	PlayerCount int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetJoinMessageOutput contains the result of getting a join message
type GetJoinMessageOutput struct {
	Message string
}

// GetRoundMessageInput describes a scored round
type GetRoundMessageInput struct {
	// LeaderName is the leader's display name; unused in two-player mode
	LeaderName string

	// Found is how many voters picked the target card
	Found int

	// Voters is how many players voted
	Voters int

	// TwoPlayerMode means the target card was the bot's
	TwoPlayerMode bool

	PreferredTone MessageTone
}

// GetRoundMessageOutput contains the comment on a round
type GetRoundMessageOutput struct {
	Outcome RoundOutcome
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by a service
	Err error

	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Randomizer picks among the candidate lines (optional)
	Randomizer random.Randomizer
}
