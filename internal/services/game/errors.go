package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameIsStarted       GameError = "the game is already started"
	ErrGameIsEnded         GameError = "the game is already ended"
	ErrNotEnoughPlayers    GameError = "there are not enough players to start"
	ErrPlayerAlreadyJoined GameError = "the player has already joined"
	ErrPlayerAlreadyLeft   GameError = "the player has already left"
	ErrPlayerNotInGame     GameError = "player not in game"
	ErrInvalidPlayerID     GameError = "the player ID is reserved or empty"
	ErrInvalidCardNumber   GameError = "there is no card with this number"
	ErrOwnCardVote         GameError = "players cannot vote for their own card"
	ErrAlreadyVoted        GameError = "the player has already voted this round"
	ErrDiscardLimitReached GameError = "the player has already discarded enough cards this round"
	ErrNotYourTurn         GameError = "the player cannot act in this phase"
	ErrWrongPhase          GameError = "the action is not allowed in this phase"
	ErrInvalidRules        GameError = "invalid rules"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilSupply           GameError = "supply cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)
