package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/services/game"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
)

// service implements the Service interface
type service struct {
	random random.Randomizer
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	s := &service{}
	if config != nil {
		s.random = config.Randomizer
	}
	if s.random == nil {
		s.random = random.New(nil)
	}

	return s, nil
}

// GetJoinMessage returns a message for when a player joins the roster
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch tone(input.PreferredTone) {
	case ToneNeutral:
		messages = []string{
			fmt.Sprintf("%s joined the game.", input.PlayerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s pulls up a chair.", input.PlayerName),
			fmt.Sprintf("%s is in. Hide your best cards!", input.PlayerName),
			fmt.Sprintf("%s joins the table, imagination fully charged.", input.PlayerName),
			fmt.Sprintf("Welcome, %s. Think in pictures.", input.PlayerName),
		}
	}

	message := s.pick(messages)
	switch {
	case input.PlayerCount == 1:
		message += " One more player is needed to start."
	case input.PlayerCount == 2:
		message += " Two players team up against the bot, or wait for a third."
	case input.PlayerCount > 2:
		message += fmt.Sprintf(" %d players are ready.", input.PlayerCount)
	}

	return &GetJoinMessageOutput{
		Message: message,
	}, nil
}

// GetRoundMessage comments on how a round went
func (s *service) GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	outcome := RoundOutcomeSomeFound
	switch {
	case input.Found == 0:
		outcome = RoundOutcomeNobodyFound
	case input.Found >= input.Voters:
		outcome = RoundOutcomeEveryoneFound
	}

	if tone(input.PreferredTone) == ToneNeutral {
		return &GetRoundMessageOutput{
			Outcome: outcome,
			Message: fmt.Sprintf("%d of %d found the card.", input.Found, input.Voters),
		}, nil
	}

	var messages []string
	switch {
	case input.TwoPlayerMode && outcome == RoundOutcomeNobodyFound:
		messages = []string{
			"The bot fooled you both.",
			"Beep boop. The bot is smarter than it looks.",
			"Nobody spotted the bot's card. It is gloating quietly.",
		}
	case input.TwoPlayerMode && outcome == RoundOutcomeEveryoneFound:
		messages = []string{
			"You both saw right through the bot!",
			"Teamwork! The bot never stood a chance.",
		}
	case input.TwoPlayerMode:
		messages = []string{
			"Half a win against the bot.",
			"One of you has a better eye for robots.",
		}
	case outcome == RoundOutcomeNobodyFound:
		messages = []string{
			fmt.Sprintf("Nobody got %s's association. Too clever by half!", input.LeaderName),
			fmt.Sprintf("%s, that association was a mystery to everyone.", input.LeaderName),
		}
	case outcome == RoundOutcomeEveryoneFound:
		messages = []string{
			fmt.Sprintf("Everyone found %s's card. A bit too obvious!", input.LeaderName),
			fmt.Sprintf("%s gave it away. Subtlety next time!", input.LeaderName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s struck the balance. Nicely done!", input.LeaderName),
			fmt.Sprintf("Some found %s's card, some were led astray.", input.LeaderName),
			"Just the right amount of mystery.",
		}
	}

	return &GetRoundMessageOutput{
		Outcome: outcome,
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	var messages []string
	switch {
	case errors.Is(input.Err, game.ErrGameIsStarted), errors.Is(input.Err, supply.ErrGameIsStarted):
		messages = []string{
			"A game is already running. Wait for it to finish!",
			"Not now, the cards are already on the table.",
		}
	case errors.Is(input.Err, game.ErrGameIsEnded):
		messages = []string{
			"There is no game running right now.",
			"Nothing to end. Start a game first!",
		}
	case errors.Is(input.Err, game.ErrNotEnoughPlayers):
		messages = []string{
			"At least two players are needed. Invite a friend!",
			"Imaginarium is no fun alone. Get one more player to join.",
		}
	case errors.Is(input.Err, game.ErrPlayerAlreadyJoined):
		messages = []string{
			"You're already in, eager beaver!",
			"Patience, you're already on the roster.",
		}
	case errors.Is(input.Err, game.ErrPlayerAlreadyLeft):
		messages = []string{
			"You are not in the game.",
			"You can't leave a table you never sat at.",
		}
	case errors.Is(input.Err, supply.ErrNoAnyUsedSources):
		messages = []string{
			"There are no card sources. Add one with /imaginarium source-add.",
		}
	case errors.Is(input.Err, supply.ErrSourceAlreadyAdded):
		messages = []string{
			"That source is already in the pool.",
		}
	case errors.Is(input.Err, supply.ErrSourceNotFound):
		messages = []string{
			"That source is not in the pool.",
		}
	case errors.Is(input.Err, game.ErrInvalidRules):
		messages = []string{
			"Those rules don't work. Scores and timeouts must be positive, and hands need at least two cards.",
		}
	default:
		return &GetErrorMessageOutput{
			Message: input.Err.Error(),
		}, nil
	}

	if tone(input.PreferredTone) == ToneNeutral {
		return &GetErrorMessageOutput{
			Message: input.Err.Error(),
		}, nil
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.random.Intn(len(messages))]
}

func tone(t MessageTone) MessageTone {
	if t == "" {
		return ToneFunny
	}
	return t
}
