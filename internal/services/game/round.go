package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/common/clock"
	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
)

// errStopped unwinds the driver after EndGame or a win
var errStopped = errors.New("game stopped")

// driver advances one game through its circles and rounds, awaiting a hook
// at every phase
type driver struct {
	c      *Condition
	hooks  *Hooks
	supply supply.Service
	clock  clock.Clock
	random random.Randomizer
	logger logrus.FieldLogger
}

// run plays the game until a win, EndGame, a hook failure or ctx cancellation.
// The at-end hook only runs when the game finished cooperatively.
func (d *driver) run(ctx context.Context) error {
	gameCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	d.c.setCancel(cancel)

	err := d.play(gameCtx)
	d.c.finish(d.clock.Since(d.c.StartedAt()))

	if err != nil && !errors.Is(err, errStopped) {
		d.logger.WithError(err).Error("game aborted")
		return err
	}

	d.logger.WithField("took", d.c.TookTime()).Info("game finished")
	return d.call(ctx, PhaseAtEnd)
}

func (d *driver) play(ctx context.Context) error {
	if err := d.step(ctx, PhaseAtStart); err != nil {
		return err
	}

	for !d.c.isStopping() {
		if err := d.playCircle(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (d *driver) playCircle(ctx context.Context) error {
	d.c.startCircle()
	log := d.logger.WithField("circle", d.c.Circle())
	log.Debug("circle started")

	if !d.c.IsTwoPlayerMode() {
		if err := d.dealHands(ctx); err != nil {
			return err
		}
	}

	if err := d.step(ctx, PhaseAtCircleStart); err != nil {
		return err
	}

	// Every player leads exactly once per circle, in roster order
	for _, leader := range d.c.players {
		if err := d.playRound(ctx, leader.ID); err != nil {
			return err
		}
	}

	if err := d.call(ctx, PhaseAtCircleEnd); err != nil {
		return err
	}

	if d.c.checkWin() {
		log.Info("winning score reached")
	}
	return nil
}

func (d *driver) playRound(ctx context.Context, leaderID string) error {
	if d.c.isStopping() {
		return errStopped
	}

	d.c.startRound(d.c.find(leaderID))
	d.logger.WithFields(logrus.Fields{
		"circle": d.c.Circle(),
		"round":  d.c.Round(),
		"leader": leaderID,
	}).Debug("round started")

	if d.c.IsTwoPlayerMode() {
		if err := d.dealHands(ctx); err != nil {
			return err
		}
	}

	if err := d.step(ctx, PhaseAtRoundStart); err != nil {
		return err
	}

	var err error
	if d.c.IsTwoPlayerMode() {
		err = d.collectTwoPlayerCards(ctx)
	} else {
		err = d.collectCards(ctx)
	}
	if err != nil {
		return err
	}

	d.c.shuffleDiscards(d.random)

	if err := d.step(ctx, PhaseShowDiscardedCards); err != nil {
		return err
	}

	votePhase := PhaseVoteForTargetCard
	if d.c.IsTwoPlayerMode() {
		votePhase = PhaseVoteForTargetCard2
	}
	if err := d.step(ctx, votePhase); err != nil {
		return err
	}

	// A round interrupted during voting is not scored
	if d.c.isStopping() {
		return errStopped
	}
	d.c.score()

	if !d.c.IsTwoPlayerMode() {
		cards, err := d.supply.GetRandomCards(ctx, d.c.PlayerCount())
		if err != nil {
			return d.drawFailed(err)
		}
		d.c.topUp(cards)
	}

	return d.step(ctx, PhaseAtRoundEnd)
}

// collectTwoPlayerCards: the bot discards first, then the leader gives an
// association and both players discard two cards each
func (d *driver) collectTwoPlayerCards(ctx context.Context) error {
	if err := d.discardForBot(ctx, 1); err != nil {
		return err
	}

	return d.steps(ctx,
		PhaseRequestAssociation,
		PhaseShowAssociation,
		PhaseShowPlayersCards,
		PhaseRequestPlayersCards2,
	)
}

// collectCards: the leader picks a card before giving the association, then
// every other player discards one card. With exactly three players the bot
// adds two cards to the pile.
func (d *driver) collectCards(ctx context.Context) error {
	if d.c.PlayerCount() == 3 {
		if err := d.discardForBot(ctx, 2); err != nil {
			return err
		}
	}

	return d.steps(ctx,
		PhaseShowPlayersCards,
		PhaseRequestLeaderCard,
		PhaseRequestAssociation,
		PhaseShowAssociation,
		PhaseRequestPlayersCards,
	)
}

// dealHands replaces every hand with a fresh one
func (d *driver) dealHands(ctx context.Context) error {
	perPlayer := d.c.Rules().CardsPerPlayer
	cards, err := d.supply.GetRandomCards(ctx, d.c.PlayerCount()*perPlayer)
	if err != nil {
		return d.drawFailed(err)
	}
	d.c.deal(cards, perPlayer)
	return nil
}

func (d *driver) discardForBot(ctx context.Context, count int) error {
	cards, err := d.supply.GetRandomCards(ctx, count)
	if err != nil {
		return d.drawFailed(err)
	}
	d.c.discardForBot(cards)
	return nil
}

func (d *driver) drawFailed(err error) error {
	if d.c.isStopRequested() {
		return errStopped
	}
	return fmt.Errorf("failed to draw cards: %w", err)
}

func (d *driver) steps(ctx context.Context, phases ...Phase) error {
	for _, phase := range phases {
		if err := d.step(ctx, phase); err != nil {
			return err
		}
	}
	return nil
}

// step runs the hook of an in-round phase unless the game is stopping
func (d *driver) step(ctx context.Context, phase Phase) error {
	if d.c.isStopping() {
		return errStopped
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.call(ctx, phase)
}

// call sets the phase, awaits its hook and resets the phase
func (d *driver) call(ctx context.Context, phase Phase) error {
	d.c.setPhase(phase)
	defer d.c.setPhase(PhaseIdle)

	if err := d.hooks.get(phase)(ctx, d.c); err != nil {
		// Hooks waiting on players are interrupted by EndGame
		if phase != PhaseAtEnd && d.c.isStopRequested() {
			return errStopped
		}
		return fmt.Errorf("%s hook: %w", phase, err)
	}
	return nil
}
