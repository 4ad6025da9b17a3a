package game

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/models"
)

// Condition is the live state of one game. The driver owns it; hooks read it
// and report player input back through Discard, Vote and SetAssociation.
// All methods are safe for concurrent use, so a hook may collect input from
// several players in parallel.
type Condition struct {
	mu sync.RWMutex

	id            string
	rules         models.Rules
	players       []*models.Player
	twoPlayerMode bool

	phase       Phase
	leader      *models.Player
	circle      int
	round       int
	discarded   []models.DiscardedCard
	discards    map[string]int
	votes       map[string]int
	association string

	startedAt    time.Time
	tookTime     time.Duration
	botScore     float64
	playersScore float64

	stopRequested bool
	won           bool
	ended         bool

	// cancel interrupts hooks blocked on player input when a stop is requested
	cancel context.CancelFunc
}

func newCondition(id string, rules models.Rules, players []*models.Player, startedAt time.Time) *Condition {
	roster := make([]*models.Player, len(players))
	copy(roster, players)

	return &Condition{
		id:            id,
		rules:         rules,
		players:       roster,
		twoPlayerMode: len(roster) == 2,
		discards:      make(map[string]int),
		votes:         make(map[string]int),
		startedAt:     startedAt,
	}
}

// ID returns the game ID
func (c *Condition) ID() string {
	return c.id
}

// Rules returns the rules the game is played with
func (c *Condition) Rules() models.Rules {
	return c.rules
}

// IsTwoPlayerMode reports whether the players play together against the bot
func (c *Condition) IsTwoPlayerMode() bool {
	return c.twoPlayerMode
}

// PlayerCount is the number of players in the game
func (c *Condition) PlayerCount() int {
	return len(c.players)
}

// StartedAt returns when the game started
func (c *Condition) StartedAt() time.Time {
	return c.startedAt
}

func (c *Condition) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

func (c *Condition) Circle() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.circle
}

func (c *Condition) Round() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.round
}

// Leader returns a copy of the current leader, nil before the first round
func (c *Condition) Leader() *models.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.leader == nil {
		return nil
	}
	return clonePlayer(c.leader)
}

// Players returns copies of the players in turn order
func (c *Condition) Players() []*models.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()

	players := make([]*models.Player, len(c.players))
	for i, p := range c.players {
		players[i] = clonePlayer(p)
	}
	return players
}

// Player returns a copy of one player
func (c *Condition) Player(playerID string) (*models.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.find(playerID)
	if p == nil {
		return nil, ErrPlayerNotInGame
	}
	return clonePlayer(p), nil
}

// DiscardedCards returns the discard pile. Pile numbers used by Vote are
// 1-based positions in this slice.
func (c *Condition) DiscardedCards() []models.DiscardedCard {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pile := make([]models.DiscardedCard, len(c.discarded))
	copy(pile, c.discarded)
	return pile
}

// Votes returns the vote tally keyed by the ID of the player whose card got
// the vote. The bot's cards are counted under models.BotID.
func (c *Condition) Votes() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	votes := make(map[string]int, len(c.votes))
	for k, v := range c.votes {
		votes[k] = v
	}
	return votes
}

// Association returns the leader's association, empty until given
func (c *Condition) Association() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.association
}

// Scores returns the two-player mode team scores
func (c *Condition) Scores() (players, bot float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playersScore, c.botScore
}

// TookTime returns how long the finished game lasted
func (c *Condition) TookTime() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tookTime
}

// IsEnded reports whether the game has finished
func (c *Condition) IsEnded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ended
}

// SetAssociation records the leader's association
func (c *Condition) SetAssociation(playerID, association string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseRequestAssociation {
		return ErrWrongPhase
	}
	if c.find(playerID) == nil {
		return ErrPlayerNotInGame
	}
	if c.leader == nil || c.leader.ID != playerID {
		return ErrNotYourTurn
	}

	c.association = association
	return nil
}

// Discard moves the card at 1-based handNumber from the player's hand to the
// discard pile
func (c *Condition) Discard(playerID string, handNumber int) (models.Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.find(playerID)
	if p == nil {
		return models.Card{}, ErrPlayerNotInGame
	}

	quota, err := c.discardQuota(p)
	if err != nil {
		return models.Card{}, err
	}
	if c.discards[p.ID] >= quota {
		return models.Card{}, ErrDiscardLimitReached
	}
	if handNumber < 1 || handNumber > len(p.Cards) {
		return models.Card{}, ErrInvalidCardNumber
	}

	card := p.Cards[handNumber-1]
	p.Cards = append(p.Cards[:handNumber-1:handNumber-1], p.Cards[handNumber:]...)
	p.DiscardedCards = append(p.DiscardedCards, card)
	c.discarded = append(c.discarded, models.DiscardedCard{Card: card, PlayerID: p.ID})
	c.discards[p.ID]++

	return card, nil
}

// discardQuota is how many cards p must discard in the current phase
func (c *Condition) discardQuota(p *models.Player) (int, error) {
	switch c.phase {
	case PhaseRequestPlayersCards2:
		return 2, nil
	case PhaseRequestLeaderCard:
		if p.ID != c.leader.ID {
			return 0, ErrNotYourTurn
		}
		return 1, nil
	case PhaseRequestPlayersCards:
		if p.ID == c.leader.ID {
			return 0, ErrNotYourTurn
		}
		return 1, nil
	}
	return 0, ErrWrongPhase
}

// PendingDiscards maps every player who still owes cards in the current
// discard phase to the number of cards left to discard
func (c *Condition) PendingDiscards() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pending := make(map[string]int)
	for _, p := range c.players {
		quota, err := c.discardQuota(p)
		if err != nil {
			continue
		}
		if left := quota - c.discards[p.ID]; left > 0 {
			pending[p.ID] = left
		}
	}
	return pending
}

// Vote records a player's guess. pileNumber is the 1-based position in the
// shuffled discard pile.
func (c *Condition) Vote(playerID string, pileNumber int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.find(playerID)
	if p == nil {
		return ErrPlayerNotInGame
	}
	if err := c.canVote(p); err != nil {
		return err
	}
	if p.ChosenCard != 0 {
		return ErrAlreadyVoted
	}
	if pileNumber < 1 || pileNumber > len(c.discarded) {
		return ErrInvalidCardNumber
	}

	target := c.discarded[pileNumber-1]
	if target.PlayerID == p.ID {
		return ErrOwnCardVote
	}

	p.ChosenCard = pileNumber
	c.votes[target.PlayerID]++
	return nil
}

func (c *Condition) canVote(p *models.Player) error {
	switch c.phase {
	case PhaseVoteForTargetCard2:
		return nil
	case PhaseVoteForTargetCard:
		if p.ID == c.leader.ID {
			return ErrNotYourTurn
		}
		return nil
	}
	return ErrWrongPhase
}

// PendingVoters lists the players who still have to vote in the current phase
func (c *Condition) PendingVoters() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var pending []string
	for _, p := range c.players {
		if c.canVote(p) == nil && p.ChosenCard == 0 {
			pending = append(pending, p.ID)
		}
	}
	return pending
}

func (c *Condition) find(playerID string) *models.Player {
	for _, p := range c.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// Driver side. These are only called by the game driver.

func (c *Condition) setPhase(phase Phase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = phase
}

func (c *Condition) startCircle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.circle++
	c.round = 0
}

func (c *Condition) startRound(leader *models.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.round++
	c.leader = leader
	c.discarded = nil
	c.discards = make(map[string]int)
	c.votes = make(map[string]int)
	c.association = ""
	for _, p := range c.players {
		p.ChosenCard = 0
	}
}

// deal replaces every hand with perPlayer cards taken positionally from cards
func (c *Condition) deal(cards []models.Card, perPlayer int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.players {
		hand := make([]models.Card, perPlayer)
		copy(hand, cards[i*perPlayer:(i+1)*perPlayer])
		p.Cards = hand
	}
}

// topUp gives player i cards[i]
func (c *Condition) topUp(cards []models.Card) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.players {
		p.Cards = append(p.Cards, cards[i])
	}
}

func (c *Condition) discardForBot(cards []models.Card) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, card := range cards {
		c.discarded = append(c.discarded, models.DiscardedCard{Card: card, PlayerID: models.BotID})
	}
}

// shuffleDiscards permutes the discard pile; the pile's multiset is unchanged
func (c *Condition) shuffleDiscards(r random.Randomizer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r.Shuffle(len(c.discarded), func(i, j int) {
		c.discarded[i], c.discarded[j] = c.discarded[j], c.discarded[i]
	})
}

// score applies the round's votes to the scores
func (c *Condition) score() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.twoPlayerMode {
		players, bot := scoreTwoPlayerRound(c.votes[models.BotID])
		c.playersScore += players
		c.botScore += bot
		return
	}

	gains := scoreRound(c.leader.ID, c.players, c.discarded, c.votes)
	for _, p := range c.players {
		p.Score += gains[p.ID]
	}
}

// checkWin marks the game won when the winning score is reached
func (c *Condition) checkWin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.twoPlayerMode {
		c.won = hasTeamWon(c.playersScore, c.botScore, c.rules.WinningScore)
	} else {
		c.won = hasAnyPlayerWon(c.players, c.rules.WinningScore)
	}
	return c.won
}

func (c *Condition) requestStop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopRequested = true
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Condition) setCancel(cancel context.CancelFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel = cancel
}

func (c *Condition) isStopRequested() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stopRequested
}

func (c *Condition) isStopping() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stopRequested || c.won
}

func (c *Condition) finish(tookTime time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tookTime = tookTime
	c.ended = true
	c.phase = PhaseIdle
}

// Summary freezes the game into a models.GameSummary
func (c *Condition) Summary() *models.GameSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary := &models.GameSummary{
		ID:            c.id,
		StartedAt:     c.startedAt,
		TookTime:      c.tookTime,
		Circles:       c.circle,
		TwoPlayerMode: c.twoPlayerMode,
		BotScore:      c.botScore,
		PlayersScore:  c.playersScore,
		EndedEarly:    !c.won,
	}
	summary.Standings = c.standings()
	return summary
}

// Scoreboard returns the current standings
func (c *Condition) Scoreboard() *models.Scoreboard {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &models.Scoreboard{
		TwoPlayerMode: c.twoPlayerMode,
		Entries:       c.standings(),
	}
}

// standings must be called with c.mu held
func (c *Condition) standings() []*models.ScoreEntry {
	var entries []*models.ScoreEntry
	if c.twoPlayerMode {
		entries = []*models.ScoreEntry{
			{PlayerID: TeamID, PlayerName: TeamName, Score: c.playersScore},
			{PlayerID: models.BotID, PlayerName: BotName, Score: c.botScore},
		}
	} else {
		entries = make([]*models.ScoreEntry, 0, len(c.players))
		for _, p := range c.players {
			entries = append(entries, &models.ScoreEntry{
				PlayerID:   p.ID,
				PlayerName: p.DisplayName(),
				Score:      p.Score,
			})
		}
	}
	models.SortEntries(entries)
	return entries
}

func clonePlayer(p *models.Player) *models.Player {
	clone := *p
	clone.Cards = append([]models.Card(nil), p.Cards...)
	clone.DiscardedCards = append([]models.Card(nil), p.DiscardedCards...)
	return &clone
}
