package game

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/common/clock"
	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/common/uuid"
	"github.com/KirkDiggler/imaginarium/internal/models"
	gameRepo "github.com/KirkDiggler/imaginarium/internal/repositories/game"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
)

// service implements the Service interface. It owns the roster and runs at
// most one game at a time.
type service struct {
	supply        supply.Service
	gameRepo      gameRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	random        random.Randomizer
	logger        logrus.FieldLogger

	mu        sync.RWMutex
	rules     models.Rules
	players   []*models.Player
	status    models.GameStatus
	condition *Condition
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Supply == nil {
		return nil, ErrNilSupply
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	rules := cfg.Rules.WithDefaults()
	if rules.CardsPerPlayer < models.MinCardsPerPlayer {
		return nil, ErrInvalidRules
	}

	s := &service{
		supply:        cfg.Supply,
		gameRepo:      cfg.GameRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		random:        cfg.Randomizer,
		logger:        cfg.Logger,
		rules:         rules,
		status:        models.GameStatusNotStarted,
	}
	if s.random == nil {
		s.random = random.New(nil)
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}

	return s, nil
}

// JoinGame adds a player to the end of the roster
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	// BotID is the empty ID; cards attributed to it belong to the bot
	if input.PlayerID == models.BotID {
		return nil, ErrInvalidPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsActive() {
		return nil, ErrGameIsStarted
	}
	if s.indexOf(input.PlayerID) >= 0 {
		return nil, ErrPlayerAlreadyJoined
	}

	player := models.NewPlayer(input.PlayerID, input.PlayerName)
	s.players = append(s.players, player)

	s.logger.WithFields(logrus.Fields{
		"player":  player.ID,
		"players": len(s.players),
	}).Info("player joined")

	return &JoinGameOutput{
		Player:      clonePlayer(player),
		PlayerCount: len(s.players),
	}, nil
}

// LeaveGame removes a player from the roster
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsActive() {
		return ErrGameIsStarted
	}

	i := s.indexOf(input.PlayerID)
	if i < 0 {
		return ErrPlayerAlreadyLeft
	}
	s.players = append(s.players[:i:i], s.players[i+1:]...)

	s.logger.WithField("player", input.PlayerID).Info("player left")
	return nil
}

// ShufflePlayers randomly reorders the roster, which is also the order
// players lead in
func (s *service) ShufflePlayers(ctx context.Context) (*ShufflePlayersOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsActive() {
		return nil, ErrGameIsStarted
	}

	s.random.Shuffle(len(s.players), func(i, j int) {
		s.players[i], s.players[j] = s.players[j], s.players[i]
	})

	return &ShufflePlayersOutput{
		Players: s.roster(),
	}, nil
}

// GetPlayers returns the roster. During a game the players carry their
// current hands and scores.
func (s *service) GetPlayers(ctx context.Context) (*GetPlayersOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status.IsActive() {
		return &GetPlayersOutput{
			Players: s.condition.Players(),
		}, nil
	}

	return &GetPlayersOutput{
		Players: s.roster(),
	}, nil
}

// GetScores returns the standings of the running game, or of the last one
func (s *service) GetScores(ctx context.Context) (*GetScoresOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.condition != nil {
		return &GetScoresOutput{
			Scoreboard: s.condition.Scoreboard(),
		}, nil
	}

	entries := make([]*models.ScoreEntry, 0, len(s.players))
	for _, p := range s.players {
		entries = append(entries, &models.ScoreEntry{
			PlayerID:   p.ID,
			PlayerName: p.DisplayName(),
		})
	}

	return &GetScoresOutput{
		Scoreboard: &models.Scoreboard{
			TwoPlayerMode: len(s.players) == 2,
			Entries:       entries,
		},
	}, nil
}

// GetRules returns the rules the next game is played with
func (s *service) GetRules(ctx context.Context) (*GetRulesOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &GetRulesOutput{
		Rules: s.rules,
	}, nil
}

// UpdateRules changes the rules between games
func (s *service) UpdateRules(ctx context.Context, input *UpdateRulesInput) (*UpdateRulesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsActive() {
		return nil, ErrGameIsStarted
	}

	rules := s.rules
	if input.WinningScore != nil {
		if *input.WinningScore <= 0 {
			return nil, ErrInvalidRules
		}
		rules.WinningScore = *input.WinningScore
	}
	if input.StepTimeout != nil {
		if *input.StepTimeout <= 0 {
			return nil, ErrInvalidRules
		}
		rules.StepTimeout = *input.StepTimeout
	}
	if input.CardsPerPlayer != nil {
		if *input.CardsPerPlayer < models.MinCardsPerPlayer {
			return nil, ErrInvalidRules
		}
		rules.CardsPerPlayer = *input.CardsPerPlayer
	}
	s.rules = rules

	s.logger.WithFields(logrus.Fields{
		"winning_score":    rules.WinningScore,
		"step_timeout":     rules.StepTimeout,
		"cards_per_player": rules.CardsPerPlayer,
	}).Info("rules updated")

	return &UpdateRulesOutput{
		Rules: rules,
	}, nil
}

// StartGame runs a whole game with the current roster and rules. It blocks
// until the game is won, ended with EndGame, or aborted by a hook error or
// ctx cancellation.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	var hooks *Hooks
	if input != nil {
		hooks = input.Hooks
	}

	c, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}

	d := &driver{
		c:      c,
		hooks:  hooks,
		supply: s.supply,
		clock:  s.clock,
		random: s.random,
		logger: s.logger.WithField("game", c.ID()),
	}
	runErr := d.run(ctx)

	s.mu.Lock()
	s.status = models.GameStatusEnded
	s.supply.SetLocked(false)
	s.mu.Unlock()

	summary := c.Summary()
	s.saveSummary(ctx, summary)

	if runErr != nil {
		return nil, runErr
	}

	return &StartGameOutput{
		Summary: summary,
	}, nil
}

// begin validates the roster and the pool, then marks a new game active
func (s *service) begin(ctx context.Context) (*Condition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsActive() {
		return nil, ErrGameIsStarted
	}
	if len(s.players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	sources, err := s.supply.GetSources(ctx)
	if err != nil {
		return nil, err
	}
	if len(sources.Sources) == 0 {
		return nil, supply.ErrNoAnyUsedSources
	}

	for _, p := range s.players {
		p.ResetState()
	}

	c := newCondition(s.uuidGenerator.NewUUID(), s.rules, s.players, s.clock.Now())
	s.condition = c
	s.status = models.GameStatusActive
	s.supply.SetLocked(true)

	s.logger.WithFields(logrus.Fields{
		"game":     c.ID(),
		"players":  len(s.players),
		"two_mode": c.IsTwoPlayerMode(),
	}).Info("game started")

	return c, nil
}

func (s *service) saveSummary(ctx context.Context, summary *models.GameSummary) {
	if s.gameRepo == nil {
		return
	}

	err := s.gameRepo.SaveGame(context.WithoutCancel(ctx), &gameRepo.SaveGameInput{
		Summary: summary,
	})
	if err != nil {
		s.logger.WithError(err).WithField("game", summary.ID).Warn("failed to save game history")
	}
}

// EndGame asks the running game to stop. The game unwinds at its next phase
// boundary and StartGame returns.
func (s *service) EndGame(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.status.IsActive() || s.condition.IsEnded() {
		return ErrGameIsEnded
	}

	s.condition.requestStop()
	s.logger.WithField("game", s.condition.ID()).Info("game end requested")
	return nil
}

// GetCondition returns the running game's condition
func (s *service) GetCondition(ctx context.Context) (*Condition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.status.IsActive() {
		return nil, ErrGameIsEnded
	}
	return s.condition, nil
}

// GetHistory lists finished games, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if s.gameRepo == nil {
		return &GetHistoryOutput{}, nil
	}

	var limit int
	if input != nil {
		limit = input.Limit
	}

	output, err := s.gameRepo.GetRecentGames(ctx, &gameRepo.GetRecentGamesInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{
		Games: output.Games,
	}, nil
}

// roster must be called with s.mu held
func (s *service) roster() []*models.Player {
	players := make([]*models.Player, len(s.players))
	for i, p := range s.players {
		players[i] = clonePlayer(p)
	}
	return players
}

// indexOf must be called with s.mu held
func (s *service) indexOf(playerID string) int {
	for i, p := range s.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}
