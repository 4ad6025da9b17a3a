package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/imaginarium/internal/cards"
	sourceMocks "github.com/KirkDiggler/imaginarium/internal/cards/mocks"
	clockMocks "github.com/KirkDiggler/imaginarium/internal/common/clock/mocks"
	"github.com/KirkDiggler/imaginarium/internal/common/random"
	uuidMocks "github.com/KirkDiggler/imaginarium/internal/common/uuid/mocks"
	"github.com/KirkDiggler/imaginarium/internal/models"
	gameRepo "github.com/KirkDiggler/imaginarium/internal/repositories/game"
	gameRepoMocks "github.com/KirkDiggler/imaginarium/internal/repositories/game/mocks"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
	supplyMocks "github.com/KirkDiggler/imaginarium/internal/services/supply/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSupply   *supplyMocks.MockService
	mockSource   *sourceMocks.MockSource
	mockGameRepo *gameRepoMocks.MockRepository
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	gameService  *service
	ctx          context.Context

	// Test data
	testGameID    string
	testStartTime time.Time
	testTookTime  time.Duration

	// draws records the count of every GetRandomCards call
	draws []int
	drawn int
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSupply = supplyMocks.NewMockService(s.mockCtrl)
	s.mockSource = sourceMocks.NewMockSource(s.mockCtrl)
	s.mockGameRepo = gameRepoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testGameID = "game-1"
	s.testStartTime = time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	s.testTookTime = 90 * time.Second
	s.draws = nil
	s.drawn = 0

	s.mockClock.EXPECT().Now().Return(s.testStartTime).AnyTimes()
	s.mockClock.EXPECT().Since(s.testStartTime).Return(s.testTookTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID).AnyTimes()

	var err error
	s.gameService, err = New(&Config{
		Supply:        s.mockSupply,
		GameRepo:      s.mockGameRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Randomizer:    random.New(&random.Config{Seed: 7}),
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// expectGame sets up the supply and the history for one full StartGame call
func (s *GameServiceTestSuite) expectGame() {
	s.mockSupply.EXPECT().GetSources(gomock.Any()).Return(&supply.GetSourcesOutput{
		Sources: []cards.Source{s.mockSource},
	}, nil)
	gomock.InOrder(
		s.mockSupply.EXPECT().SetLocked(true),
		s.mockSupply.EXPECT().SetLocked(false),
	)
	s.mockSupply.EXPECT().GetRandomCards(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, count int) ([]models.Card, error) {
			s.draws = append(s.draws, count)
			result := make([]models.Card, count)
			for i := range result {
				s.drawn++
				result[i] = models.Card{
					URL:  fmt.Sprintf("https://img/%d.jpg", s.drawn),
					Type: models.MediaTypePhoto,
				}
			}
			return result, nil
		}).AnyTimes()
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *GameServiceTestSuite) join(ids ...string) {
	for _, id := range ids {
		_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{PlayerID: id, PlayerName: "name-" + id})
		s.Require().NoError(err)
	}
}

// pileOf returns the 1-based pile position of the first card owned by ownerID
func pileOf(c *Condition, ownerID string) int {
	for i, card := range c.DiscardedCards() {
		if card.PlayerID == ownerID {
			return i + 1
		}
	}
	return 0
}

func discardPending(ctx context.Context, c *Condition) error {
	for id, left := range c.PendingDiscards() {
		for i := 0; i < left; i++ {
			if _, err := c.Discard(id, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

func giveAssociation(ctx context.Context, c *Condition) error {
	return c.SetAssociation(c.Leader().ID, "sunset")
}

// voteFor makes every pending voter vote for the first card of ownerID
func voteFor(ownerID func(c *Condition) string) Hook {
	return func(ctx context.Context, c *Condition) error {
		target := pileOf(c, ownerID(c))
		for _, id := range c.PendingVoters() {
			if err := c.Vote(id, target); err != nil {
				return err
			}
		}
		return nil
	}
}

func theBot(*Condition) string { return models.BotID }

func theLeader(c *Condition) string { return c.Leader().ID }

func (s *GameServiceTestSuite) twoPlayerHooks() *Hooks {
	return &Hooks{
		RequestAssociation:   giveAssociation,
		RequestPlayersCards2: discardPending,
		VoteForTargetCard2:   voteFor(theBot),
	}
}

func (s *GameServiceTestSuite) classicHooks() *Hooks {
	return &Hooks{
		RequestLeaderCard: func(ctx context.Context, c *Condition) error {
			_, err := c.Discard(c.Leader().ID, 1)
			return err
		},
		RequestAssociation:  giveAssociation,
		RequestPlayersCards: discardPending,
		VoteForTargetCard:   voteFor(theLeader),
	}
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilSupply)

	_, err = New(&Config{Supply: s.mockSupply, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Supply: s.mockSupply, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *GameServiceTestSuite) TestNew_HandTooSmall() {
	_, err := New(&Config{
		Rules:         models.Rules{CardsPerPlayer: 1},
		Supply:        s.mockSupply,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.ErrorIs(err, ErrInvalidRules)

	svc, err := New(&Config{
		Rules:         models.Rules{CardsPerPlayer: models.MinCardsPerPlayer},
		Supply:        s.mockSupply,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.Equal(models.MinCardsPerPlayer, svc.rules.CardsPerPlayer)
}

func (s *GameServiceTestSuite) TestJoinAndLeave() {
	s.join("p1", "p2")

	_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrPlayerAlreadyJoined)

	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{PlayerID: models.BotID, PlayerName: "nobody"})
	s.ErrorIs(err, ErrInvalidPlayerID)

	s.Require().NoError(s.gameService.LeaveGame(s.ctx, &LeaveGameInput{PlayerID: "p1"}))
	s.ErrorIs(s.gameService.LeaveGame(s.ctx, &LeaveGameInput{PlayerID: "p1"}), ErrPlayerAlreadyLeft)

	joined, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{PlayerID: "p3", PlayerName: "name-p3"})
	s.Require().NoError(err)
	s.Equal(2, joined.PlayerCount)
	s.Require().NoError(s.gameService.LeaveGame(s.ctx, &LeaveGameInput{PlayerID: "p3"}))

	output, err := s.gameService.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(output.Players, 1)
	s.Equal("p2", output.Players[0].ID)
	s.Equal("name-p2", output.Players[0].Name)
}

func (s *GameServiceTestSuite) TestShufflePlayers_KeepsRoster() {
	s.join("p1", "p2", "p3", "p4", "p5")

	output, err := s.gameService.ShufflePlayers(s.ctx)
	s.Require().NoError(err)

	ids := make([]string, 0, len(output.Players))
	for _, p := range output.Players {
		ids = append(ids, p.ID)
	}
	s.ElementsMatch([]string{"p1", "p2", "p3", "p4", "p5"}, ids)
}

func (s *GameServiceTestSuite) TestUpdateRules() {
	score := 10.0
	perPlayer := 4
	output, err := s.gameService.UpdateRules(s.ctx, &UpdateRulesInput{
		WinningScore:   &score,
		CardsPerPlayer: &perPlayer,
	})
	s.Require().NoError(err)
	s.Equal(10.0, output.Rules.WinningScore)
	s.Equal(4, output.Rules.CardsPerPlayer)
	s.Equal(models.DefaultStepTimeout, output.Rules.StepTimeout)

	tooFew := 1
	_, err = s.gameService.UpdateRules(s.ctx, &UpdateRulesInput{CardsPerPlayer: &tooFew})
	s.ErrorIs(err, ErrInvalidRules)

	rules, err := s.gameService.GetRules(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, rules.Rules.CardsPerPlayer)
}

func (s *GameServiceTestSuite) TestStartGame_NotEnoughPlayers() {
	s.join("p1")

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{})
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *GameServiceTestSuite) TestStartGame_EmptyPool() {
	s.join("p1", "p2")
	s.mockSupply.EXPECT().GetSources(gomock.Any()).Return(&supply.GetSourcesOutput{}, nil)

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{})
	s.ErrorIs(err, supply.ErrNoAnyUsedSources)

	// Still joinable
	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{PlayerID: "p3"})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestTwoPlayers_FindingTheBotWins() {
	s.join("p1", "p2")
	s.expectGame()

	var ended *Condition
	hooks := s.twoPlayerHooks()
	hooks.ShowDiscardedCards = func(ctx context.Context, c *Condition) error {
		s.Len(c.DiscardedCards(), 5)
		for _, p := range c.Players() {
			s.Len(p.Cards, models.DefaultCardsPerPlayer-2)
		}
		return nil
	}
	hooks.AtEnd = func(ctx context.Context, c *Condition) error {
		ended = c
		return nil
	}

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.Require().NoError(err)

	summary := output.Summary
	s.Equal(s.testGameID, summary.ID)
	s.Equal(s.testStartTime, summary.StartedAt)
	s.Equal(s.testTookTime, summary.TookTime)
	s.True(summary.TwoPlayerMode)
	s.Equal(1, summary.Circles)
	s.Equal(4.0, summary.PlayersScore)
	s.Equal(0.0, summary.BotScore)
	s.False(summary.EndedEarly)
	s.Equal(TeamID, summary.Standings[0].PlayerID)

	// A fresh hand and one bot card every round
	s.Equal([]int{12, 1, 12, 1}, s.draws)

	s.Require().NotNil(ended)
	s.True(ended.IsEnded())
	s.Equal(s.testTookTime, ended.TookTime())
}

func (s *GameServiceTestSuite) TestTwoPlayers_MissingTheBotLoses() {
	s.join("p1", "p2")
	s.expectGame()

	hooks := s.twoPlayerHooks()
	hooks.VoteForTargetCard2 = func(ctx context.Context, c *Condition) error {
		for _, id := range c.PendingVoters() {
			for i, card := range c.DiscardedCards() {
				if card.PlayerID != id && card.PlayerID != models.BotID {
					if err := c.Vote(id, i+1); err != nil {
						return err
					}
					break
				}
			}
		}
		return nil
	}

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.Require().NoError(err)
	s.Equal(0.0, output.Summary.PlayersScore)
	s.Equal(6.0, output.Summary.BotScore)
	s.Equal(models.BotID, output.Summary.Standings[0].PlayerID)
}

func (s *GameServiceTestSuite) TestFourPlayers_OneCircle() {
	s.join("p1", "p2", "p3", "p4")
	s.expectGame()

	var leaders []string
	var circleEnds int
	hooks := s.classicHooks()
	hooks.AtRoundStart = func(ctx context.Context, c *Condition) error {
		leaders = append(leaders, c.Leader().ID)
		return nil
	}
	hooks.ShowDiscardedCards = func(ctx context.Context, c *Condition) error {
		s.Len(c.DiscardedCards(), 4)
		s.Equal("sunset", c.Association())
		return nil
	}
	hooks.AtRoundEnd = func(ctx context.Context, c *Condition) error {
		for _, p := range c.Players() {
			s.Len(p.Cards, models.DefaultCardsPerPlayer)
		}
		return nil
	}
	hooks.AtCircleEnd = func(ctx context.Context, c *Condition) error {
		circleEnds++
		return nil
	}

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.Require().NoError(err)

	s.Equal([]string{"p1", "p2", "p3", "p4"}, leaders)
	s.Equal(1, circleEnds)
	s.Equal([]int{24, 4, 4, 4, 4}, s.draws)

	// 3 as leader plus 3 for each of three correct guesses
	for _, entry := range output.Summary.Standings {
		s.Equal(12.0, entry.Score, entry.PlayerID)
	}
	s.False(output.Summary.TwoPlayerMode)
}

func (s *GameServiceTestSuite) TestThreePlayers_BotAddsTwoCards() {
	s.join("p1", "p2", "p3")
	s.expectGame()

	hooks := s.classicHooks()
	hooks.ShowDiscardedCards = func(ctx context.Context, c *Condition) error {
		pile := c.DiscardedCards()
		s.Len(pile, 5)

		var bot int
		for _, card := range pile {
			if card.PlayerID == models.BotID {
				bot++
			}
		}
		s.Equal(2, bot)
		return nil
	}

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestSingleGameInvariant() {
	s.join("p1", "p2")
	s.expectGame()

	hooks := s.twoPlayerHooks()
	hooks.AtStart = func(ctx context.Context, c *Condition) error {
		_, err := s.gameService.StartGame(ctx, &StartGameInput{})
		s.ErrorIs(err, ErrGameIsStarted)

		_, err = s.gameService.JoinGame(ctx, &JoinGameInput{PlayerID: "p3"})
		s.ErrorIs(err, ErrGameIsStarted)

		s.ErrorIs(s.gameService.LeaveGame(ctx, &LeaveGameInput{PlayerID: "p1"}), ErrGameIsStarted)

		_, err = s.gameService.ShufflePlayers(ctx)
		s.ErrorIs(err, ErrGameIsStarted)

		perPlayer := 3
		_, err = s.gameService.UpdateRules(ctx, &UpdateRulesInput{CardsPerPlayer: &perPlayer})
		s.ErrorIs(err, ErrGameIsStarted)

		condition, err := s.gameService.GetCondition(ctx)
		s.Require().NoError(err)
		s.Same(c, condition)
		return nil
	}

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.Require().NoError(err)

	_, err = s.gameService.GetCondition(s.ctx)
	s.ErrorIs(err, ErrGameIsEnded)
	s.ErrorIs(s.gameService.EndGame(s.ctx), ErrGameIsEnded)
}

func (s *GameServiceTestSuite) TestEndGame_BetweenPhases() {
	s.join("p1", "p2")
	s.expectGame()

	var atEnd, circleEnd bool
	hooks := s.twoPlayerHooks()
	hooks.AtRoundStart = func(ctx context.Context, c *Condition) error {
		return s.gameService.EndGame(ctx)
	}
	hooks.RequestAssociation = func(ctx context.Context, c *Condition) error {
		s.Fail("round should not continue after EndGame")
		return nil
	}
	hooks.AtCircleEnd = func(ctx context.Context, c *Condition) error {
		circleEnd = true
		return nil
	}
	hooks.AtEnd = func(ctx context.Context, c *Condition) error {
		atEnd = true
		return nil
	}

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.Require().NoError(err)
	s.True(output.Summary.EndedEarly)
	s.Equal(1, output.Summary.Circles)
	s.Equal(0.0, output.Summary.PlayersScore)
	s.Equal(0.0, output.Summary.BotScore)
	s.True(atEnd)
	s.False(circleEnd)
}

func (s *GameServiceTestSuite) TestEndGame_InterruptsWaitingHook() {
	s.join("p1", "p2")
	s.expectGame()

	waiting := make(chan struct{})
	hooks := s.twoPlayerHooks()
	hooks.RequestAssociation = func(ctx context.Context, c *Condition) error {
		close(waiting)
		<-ctx.Done()
		return ctx.Err()
	}

	go func() {
		<-waiting
		s.NoError(s.gameService.EndGame(s.ctx))
	}()

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.Require().NoError(err)
	s.True(output.Summary.EndedEarly)
}

func (s *GameServiceTestSuite) TestHookError_AbortsGame() {
	s.join("p1", "p2")
	s.expectGame()

	boom := errors.New("boom")
	hooks := s.twoPlayerHooks()
	hooks.ShowAssociation = func(ctx context.Context, c *Condition) error {
		return boom
	}
	hooks.AtEnd = func(ctx context.Context, c *Condition) error {
		s.Fail("at-end hook must not run after an abort")
		return nil
	}

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), string(PhaseShowAssociation))

	// The roster is usable again
	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{PlayerID: "p3"})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestDrawFailure_AbortsGame() {
	s.join("p1", "p2", "p3", "p4")
	s.mockSupply.EXPECT().GetSources(gomock.Any()).Return(&supply.GetSourcesOutput{
		Sources: []cards.Source{s.mockSource},
	}, nil)
	s.mockSupply.EXPECT().SetLocked(true)
	s.mockSupply.EXPECT().SetLocked(false)
	s.mockSupply.EXPECT().GetRandomCards(gomock.Any(), 24).Return(nil, supply.ErrRetryBudgetExhausted)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{})
	s.ErrorIs(err, supply.ErrRetryBudgetExhausted)
}

func (s *GameServiceTestSuite) TestHistorySaveFailureIsNotFatal() {
	s.join("p1", "p2")
	s.mockSupply.EXPECT().GetSources(gomock.Any()).Return(&supply.GetSourcesOutput{
		Sources: []cards.Source{s.mockSource},
	}, nil)
	s.mockSupply.EXPECT().SetLocked(gomock.Any()).Times(2)
	s.mockSupply.EXPECT().GetRandomCards(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, count int) ([]models.Card, error) {
			return make([]models.Card, count), nil
		}).AnyTimes()
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	hooks := s.twoPlayerHooks()
	hooks.AtStart = func(ctx context.Context, c *Condition) error {
		return s.gameService.EndGame(ctx)
	}

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: hooks})
	s.Require().NoError(err)
	s.Equal(0, output.Summary.Circles)
}

func (s *GameServiceTestSuite) TestGetScores() {
	s.join("p1", "p2", "p3")

	output, err := s.gameService.GetScores(s.ctx)
	s.Require().NoError(err)
	s.False(output.Scoreboard.TwoPlayerMode)
	s.Len(output.Scoreboard.Entries, 3)

	s.expectGame()
	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{Hooks: s.classicHooks()})
	s.Require().NoError(err)

	// The last game's standings stay readable
	output, err = s.gameService.GetScores(s.ctx)
	s.Require().NoError(err)
	s.Len(output.Scoreboard.Entries, 3)
	s.Greater(output.Scoreboard.Entries[0].Score, 0.0)
}

func (s *GameServiceTestSuite) TestGetHistory() {
	summary := &models.GameSummary{ID: "old"}
	s.mockGameRepo.EXPECT().GetRecentGames(gomock.Any(), &gameRepo.GetRecentGamesInput{Limit: 5}).
		Return(&gameRepo.GetRecentGamesOutput{Games: []*models.GameSummary{summary}}, nil)

	output, err := s.gameService.GetHistory(s.ctx, &GetHistoryInput{Limit: 5})
	s.Require().NoError(err)
	s.Equal([]*models.GameSummary{summary}, output.Games)
}
