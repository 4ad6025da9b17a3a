package used_cards

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/imaginarium/internal/models"
)

type RepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context

	useRedis bool
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	if !s.useRedis {
		s.repo = NewMemory()
		return
	}

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.client != nil {
		s.client.Close()
		s.client = nil
	}
	if s.mr != nil {
		s.mr.Close()
		s.mr = nil
	}
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{useRedis: true})
}

func (s *RepositoryTestSuite) TestAddAndCheck() {
	err := s.repo.AddUsedCards(s.ctx, &AddUsedCardsInput{
		Cards: []models.Card{
			{URL: "https://img/1.jpg", Type: models.MediaTypePhoto},
			{URL: "https://vk.com/video_ext.php?id=2", Type: models.MediaTypeVideo},
		},
	})
	s.Require().NoError(err)

	claimed, err := s.repo.ClaimCard(s.ctx, &ClaimCardInput{Card: models.Card{URL: "https://img/1.jpg"}})
	s.Require().NoError(err)
	s.False(claimed)

	claimed, err = s.repo.ClaimCard(s.ctx, &ClaimCardInput{Card: models.Card{URL: "https://img/other.jpg", Type: models.MediaTypePhoto}})
	s.Require().NoError(err)
	s.True(claimed)

	output, err := s.repo.GetUsedCards(s.ctx, &GetUsedCardsInput{})
	s.Require().NoError(err)
	s.Contains(output.Cards, models.Card{URL: "https://img/other.jpg", Type: models.MediaTypePhoto})
}

func (s *RepositoryTestSuite) TestClaimCard_ConcurrentClaimsSucceedOnce() {
	card := models.Card{URL: "https://img/same.jpg", Type: models.MediaTypePhoto}

	const claimers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := s.repo.ClaimCard(s.ctx, &ClaimCardInput{Card: card})
			s.NoError(err)
			if claimed {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, winners)
}

func (s *RepositoryTestSuite) TestGetUsedCardsIsOrderedAndTyped() {
	err := s.repo.AddUsedCards(s.ctx, &AddUsedCardsInput{
		Cards: []models.Card{
			{URL: "https://img/b.jpg", Type: models.MediaTypePhoto},
			{URL: "https://img/a.mp4", Type: models.MediaTypeVideo},
			{URL: "https://img/b.jpg", Type: models.MediaTypePhoto},
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetUsedCards(s.ctx, &GetUsedCardsInput{})
	s.Require().NoError(err)
	s.Equal([]models.Card{
		{URL: "https://img/a.mp4", Type: models.MediaTypeVideo},
		{URL: "https://img/b.jpg", Type: models.MediaTypePhoto},
	}, output.Cards)
}

func (s *RepositoryTestSuite) TestEmptyCardsAreIgnored() {
	err := s.repo.AddUsedCards(s.ctx, &AddUsedCardsInput{
		Cards: []models.Card{{URL: ""}},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetUsedCards(s.ctx, &GetUsedCardsInput{})
	s.Require().NoError(err)
	s.Empty(output.Cards)
}

func (s *RepositoryTestSuite) TestReset() {
	err := s.repo.AddUsedCards(s.ctx, &AddUsedCardsInput{
		Cards: []models.Card{{URL: "https://img/1.jpg", Type: models.MediaTypePhoto}},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.ResetUsedCards(s.ctx, &ResetUsedCardsInput{}))

	claimed, err := s.repo.ClaimCard(s.ctx, &ClaimCardInput{Card: models.Card{URL: "https://img/1.jpg"}})
	s.Require().NoError(err)
	s.True(claimed)
	s.Require().NoError(s.repo.ResetUsedCards(s.ctx, &ResetUsedCardsInput{}))

	output, err := s.repo.GetUsedCards(s.ctx, &GetUsedCardsInput{})
	s.Require().NoError(err)
	s.Empty(output.Cards)
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	s.ErrorIs(s.repo.AddUsedCards(s.ctx, nil), ErrInvalidInput)

	_, err := s.repo.ClaimCard(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.repo.ClaimCard(s.ctx, &ClaimCardInput{})
	s.ErrorIs(err, ErrInvalidInput)
}

func TestNewRedis_NilConfig(t *testing.T) {
	_, err := NewRedis(nil)
	if err != ErrNilConfig {
		t.Fatalf("expected ErrNilConfig, got %v", err)
	}
}
