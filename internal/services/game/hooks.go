package game

import "context"

// Phase names a suspension point of the game driver
type Phase string

const (
	PhaseAtStart              Phase = "at_start"
	PhaseAtCircleStart        Phase = "at_circle_start"
	PhaseAtRoundStart         Phase = "at_round_start"
	PhaseRequestAssociation   Phase = "request_association"
	PhaseShowAssociation      Phase = "show_association"
	PhaseShowPlayersCards     Phase = "show_players_cards"
	PhaseRequestPlayersCards2 Phase = "request_players_cards_2"
	PhaseRequestLeaderCard    Phase = "request_leader_card"
	PhaseRequestPlayersCards  Phase = "request_players_cards"
	PhaseShowDiscardedCards   Phase = "show_discarded_cards"
	PhaseVoteForTargetCard2   Phase = "vote_for_target_card_2"
	PhaseVoteForTargetCard    Phase = "vote_for_target_card"
	PhaseAtRoundEnd           Phase = "at_round_end"
	PhaseAtCircleEnd          Phase = "at_circle_end"
	PhaseAtEnd                Phase = "at_end"

	// PhaseIdle is reported between hooks and outside of a game
	PhaseIdle Phase = ""
)

// Hook is invoked and awaited by the driver at a fixed point of the game.
// Hooks report player input through the Condition's Discard, Vote and
// SetAssociation methods. Returning an error aborts the game.
type Hook func(ctx context.Context, c *Condition) error

// Hooks are the transport's implementations of every phase. Nil hooks do nothing.
type Hooks struct {
	AtStart              Hook
	AtCircleStart        Hook
	AtRoundStart         Hook
	RequestAssociation   Hook
	ShowAssociation      Hook
	ShowPlayersCards     Hook
	RequestPlayersCards2 Hook
	RequestLeaderCard    Hook
	RequestPlayersCards  Hook
	ShowDiscardedCards   Hook
	VoteForTargetCard2   Hook
	VoteForTargetCard    Hook
	AtRoundEnd           Hook
	AtCircleEnd          Hook
	AtEnd                Hook
}

func noopHook(context.Context, *Condition) error {
	return nil
}

// get returns the hook for a phase, never nil
func (h *Hooks) get(phase Phase) Hook {
	if h == nil {
		return noopHook
	}

	var hook Hook
	switch phase {
	case PhaseAtStart:
		hook = h.AtStart
	case PhaseAtCircleStart:
		hook = h.AtCircleStart
	case PhaseAtRoundStart:
		hook = h.AtRoundStart
	case PhaseRequestAssociation:
		hook = h.RequestAssociation
	case PhaseShowAssociation:
		hook = h.ShowAssociation
	case PhaseShowPlayersCards:
		hook = h.ShowPlayersCards
	case PhaseRequestPlayersCards2:
		hook = h.RequestPlayersCards2
	case PhaseRequestLeaderCard:
		hook = h.RequestLeaderCard
	case PhaseRequestPlayersCards:
		hook = h.RequestPlayersCards
	case PhaseShowDiscardedCards:
		hook = h.ShowDiscardedCards
	case PhaseVoteForTargetCard2:
		hook = h.VoteForTargetCard2
	case PhaseVoteForTargetCard:
		hook = h.VoteForTargetCard
	case PhaseAtRoundEnd:
		hook = h.AtRoundEnd
	case PhaseAtCircleEnd:
		hook = h.AtCircleEnd
	case PhaseAtEnd:
		hook = h.AtEnd
	}

	if hook == nil {
		return noopHook
	}
	return hook
}
