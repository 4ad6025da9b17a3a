package supply_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/imaginarium/internal/cards"
	sourceMocks "github.com/KirkDiggler/imaginarium/internal/cards/mocks"
	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/models"
	"github.com/KirkDiggler/imaginarium/internal/repositories/used_cards"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
	"github.com/KirkDiggler/imaginarium/internal/services/supply/mocks"
)

type SupplyServiceTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockFactory       *mocks.MockSourceFactory
	mockDefaultSource *sourceMocks.MockSource
	usedCards         used_cards.Repository
	supplyService     supply.Service
	ctx               context.Context

	testLinkA string
	testLinkB string
}

func (s *SupplyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFactory = mocks.NewMockSourceFactory(s.mockCtrl)
	s.mockDefaultSource = sourceMocks.NewMockSource(s.mockCtrl)
	s.mockDefaultSource.EXPECT().Link().Return(cards.DefaultSourceLink).AnyTimes()
	s.usedCards = used_cards.NewMemory()
	s.ctx = context.Background()

	s.testLinkA = "https://vk.com/a"
	s.testLinkB = "https://vk.com/b"

	s.supplyService = s.newService(&supply.Config{AllowRepeatedCards: true})
}

func (s *SupplyServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSupplyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplyServiceTestSuite))
}

func (s *SupplyServiceTestSuite) newService(cfg *supply.Config) supply.Service {
	cfg.Factory = s.mockFactory
	cfg.DefaultSource = s.mockDefaultSource
	cfg.UsedCardsRepo = s.usedCards
	if cfg.Randomizer == nil {
		cfg.Randomizer = random.New(&random.Config{Seed: 7})
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}

	svc, err := supply.New(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *SupplyServiceTestSuite) mockSource(link string) *sourceMocks.MockSource {
	source := sourceMocks.NewMockSource(s.mockCtrl)
	source.EXPECT().Link().Return(link).AnyTimes()
	return source
}

// addSource puts a source into the pool through the factory
func (s *SupplyServiceTestSuite) addSource(source *sourceMocks.MockSource) {
	s.mockFactory.EXPECT().NewSource(source.Link()).Return(source, nil)
	source.EXPECT().Validate(gomock.Any()).Return(nil)

	_, err := s.supplyService.AddSource(s.ctx, &supply.AddSourceInput{Link: source.Link()})
	s.Require().NoError(err)
}

func (s *SupplyServiceTestSuite) links() []string {
	output, err := s.supplyService.GetSources(s.ctx)
	s.Require().NoError(err)

	links := make([]string, 0, len(output.Sources))
	for _, source := range output.Sources {
		links = append(links, source.Link())
	}
	return links
}

func (s *SupplyServiceTestSuite) TestNew_Validation() {
	_, err := supply.New(nil)
	s.ErrorIs(err, supply.ErrNilConfig)

	_, err = supply.New(&supply.Config{})
	s.ErrorIs(err, supply.ErrNilFactory)
}

func (s *SupplyServiceTestSuite) TestAddSource() {
	s.addSource(s.mockSource(s.testLinkA))

	s.Equal([]string{s.testLinkA}, s.links())
}

func (s *SupplyServiceTestSuite) TestAddSource_Unsupported() {
	link := "https://instagram.com/someone"
	s.mockFactory.EXPECT().NewSource(link).Return(nil, fmt.Errorf("%w: %q", cards.ErrUnsupportedSource, link))

	_, err := s.supplyService.AddSource(s.ctx, &supply.AddSourceInput{Link: link})
	s.ErrorIs(err, cards.ErrUnsupportedSource)
	s.Empty(s.links())
}

func (s *SupplyServiceTestSuite) TestAddSource_ValidationFails() {
	for _, validationErr := range []error{cards.ErrNoAnyCards, cards.ErrInvalidSource} {
		source := s.mockSource(s.testLinkA)
		s.mockFactory.EXPECT().NewSource(s.testLinkA).Return(source, nil)
		source.EXPECT().Validate(gomock.Any()).Return(validationErr)

		_, err := s.supplyService.AddSource(s.ctx, &supply.AddSourceInput{Link: s.testLinkA})
		s.ErrorIs(err, validationErr)
		s.Empty(s.links())
	}
}

func (s *SupplyServiceTestSuite) TestAddSource_Duplicate() {
	s.addSource(s.mockSource(s.testLinkA))

	duplicate := s.mockSource(s.testLinkA)
	s.mockFactory.EXPECT().NewSource(s.testLinkA).Return(duplicate, nil)

	_, err := s.supplyService.AddSource(s.ctx, &supply.AddSourceInput{Link: s.testLinkA})
	s.ErrorIs(err, supply.ErrSourceAlreadyAdded)
	s.Equal([]string{s.testLinkA}, s.links())
}

func (s *SupplyServiceTestSuite) TestAddAndRemoveRoundTrip() {
	s.Empty(s.links())

	s.addSource(s.mockSource(s.testLinkA))
	s.Require().NoError(s.supplyService.RemoveSource(s.ctx, &supply.RemoveSourceInput{Link: s.testLinkA}))

	s.Empty(s.links())
	_, err := s.supplyService.GetRandomSource(s.ctx)
	s.ErrorIs(err, supply.ErrNoAnyUsedSources)
}

func (s *SupplyServiceTestSuite) TestAddAndRemoveRoundTrip_NonEmptyPool() {
	s.addSource(s.mockSource(s.testLinkA))
	before := s.links()

	s.addSource(s.mockSource(s.testLinkB))
	s.Require().NoError(s.supplyService.RemoveSource(s.ctx, &supply.RemoveSourceInput{Link: s.testLinkB}))

	s.Equal(before, s.links())
}

func (s *SupplyServiceTestSuite) TestRemoveSource_NotFound() {
	err := s.supplyService.RemoveSource(s.ctx, &supply.RemoveSourceInput{Link: s.testLinkA})
	s.ErrorIs(err, supply.ErrSourceNotFound)
}

func (s *SupplyServiceTestSuite) TestLockedPoolIsImmutable() {
	s.addSource(s.mockSource(s.testLinkA))
	s.supplyService.SetLocked(true)

	err := s.supplyService.RemoveSource(s.ctx, &supply.RemoveSourceInput{Link: s.testLinkA})
	s.ErrorIs(err, supply.ErrGameIsStarted)

	_, err = s.supplyService.AddSource(s.ctx, &supply.AddSourceInput{Link: s.testLinkB})
	s.ErrorIs(err, supply.ErrGameIsStarted)

	s.ErrorIs(s.supplyService.ResetSources(s.ctx), supply.ErrGameIsStarted)
	s.Equal([]string{s.testLinkA}, s.links())

	s.supplyService.SetLocked(false)
	s.NoError(s.supplyService.RemoveSource(s.ctx, &supply.RemoveSourceInput{Link: s.testLinkA}))
}

func (s *SupplyServiceTestSuite) TestResetSources() {
	s.addSource(s.mockSource(s.testLinkA))
	s.addSource(s.mockSource(s.testLinkB))

	s.Require().NoError(s.supplyService.ResetSources(s.ctx))
	s.Empty(s.links())
}

func (s *SupplyServiceTestSuite) TestGetRandomSource_Single() {
	source := s.mockSource(s.testLinkA)
	s.addSource(source)

	// A lone source is returned without asking for its count
	picked, err := s.supplyService.GetRandomSource(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.testLinkA, picked.Link())
}

func (s *SupplyServiceTestSuite) TestGetRandomSource_EvictsSourceFailingCount() {
	broken := s.mockSource(s.testLinkA)
	healthy := s.mockSource(s.testLinkB)
	s.addSource(broken)
	s.addSource(healthy)

	broken.EXPECT().CardCount(gomock.Any()).Return(0, cards.ErrInvalidSource)
	healthy.EXPECT().CardCount(gomock.Any()).Return(5, nil).AnyTimes()

	picked, err := s.supplyService.GetRandomSource(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.testLinkB, picked.Link())
	s.Equal([]string{s.testLinkB}, s.links())
}

func (s *SupplyServiceTestSuite) TestGetRandomSource_WeightedFrequencyConverges() {
	small := s.mockSource("https://vk.com/small")
	large := s.mockSource("https://vk.com/large")
	bottomless := s.mockSource("https://vk.com/bottomless")
	s.addSource(small)
	s.addSource(large)
	s.addSource(bottomless)

	small.EXPECT().CardCount(gomock.Any()).Return(10, nil).AnyTimes()
	large.EXPECT().CardCount(gomock.Any()).Return(30, nil).AnyTimes()
	bottomless.EXPECT().CardCount(gomock.Any()).Return(cards.Unlimited, nil).AnyTimes()

	const samples = 20000
	hits := map[string]int{}
	for i := 0; i < samples; i++ {
		picked, err := s.supplyService.GetRandomSource(s.ctx)
		s.Require().NoError(err)
		hits[picked.Link()]++
	}

	// Unlimited weighs the mean of 10 and 30
	expected := map[string]float64{
		"https://vk.com/small":      10.0 / 60,
		"https://vk.com/large":      30.0 / 60,
		"https://vk.com/bottomless": 20.0 / 60,
	}
	for link, want := range expected {
		got := float64(hits[link]) / samples
		s.Truef(math.Abs(got-want) < 0.02, "%s picked %.3f of the time, want %.3f", link, got, want)
	}
}

func (s *SupplyServiceTestSuite) TestGetRandomCard_EmptyPoolFallsBackToDefault() {
	card := &models.Card{URL: "https://picsum.photos/seed/x/800/600", Type: models.MediaTypePhoto}
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(card, nil)

	got, err := s.supplyService.GetRandomCard(s.ctx)
	s.Require().NoError(err)
	s.Equal(card, got)
}

func (s *SupplyServiceTestSuite) TestGetRandomCard_EvictsInvalidSourceAndRetries() {
	for _, sourceErr := range []error{cards.ErrInvalidSource, cards.ErrNoAnyCards} {
		broken := s.mockSource(s.testLinkA)
		s.addSource(broken)
		broken.EXPECT().GetRandomCard(gomock.Any()).Return(nil, fmt.Errorf("%w: closed wall", sourceErr))

		card := &models.Card{URL: "https://picsum.photos/seed/y/800/600", Type: models.MediaTypePhoto}
		s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(card, nil)

		got, err := s.supplyService.GetRandomCard(s.ctx)
		s.Require().NoError(err)
		s.Equal(card, got)
		s.Empty(s.links())
	}
}

func (s *SupplyServiceTestSuite) TestGetRandomCard_RetryBudgetExhausted() {
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(nil, cards.ErrInvalidSource).Times(3)

	_, err := s.supplyService.GetRandomCard(s.ctx)
	s.ErrorIs(err, supply.ErrRetryBudgetExhausted)
}

func (s *SupplyServiceTestSuite) TestGetRandomCard_OtherErrorsPropagate() {
	boom := errors.New("boom")
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(nil, boom)

	_, err := s.supplyService.GetRandomCard(s.ctx)
	s.ErrorIs(err, boom)
}

func (s *SupplyServiceTestSuite) TestGetRandomCard_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).DoAndReturn(func(context.Context) (*models.Card, error) {
		cancel()
		return nil, cards.ErrInvalidSource
	})

	_, err := s.supplyService.GetRandomCard(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *SupplyServiceTestSuite) TestGetRandomCard_RedrawsUsedCards() {
	s.supplyService = s.newService(&supply.Config{AllowRepeatedCards: false})

	used := models.Card{URL: "https://img/used.jpg", Type: models.MediaTypePhoto}
	fresh := models.Card{URL: "https://img/fresh.jpg", Type: models.MediaTypePhoto}
	s.Require().NoError(s.usedCards.AddUsedCards(s.ctx, &used_cards.AddUsedCardsInput{Cards: []models.Card{used}}))

	gomock.InOrder(
		s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(&used, nil),
		s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(&fresh, nil),
	)

	got, err := s.supplyService.GetRandomCard(s.ctx)
	s.Require().NoError(err)
	s.Equal(fresh, *got)

	ledger, err := s.supplyService.GetUsedCards(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]models.Card{used, fresh}, ledger)
}

func (s *SupplyServiceTestSuite) TestGetRandomCard_AcceptsRepeatOnLastAttempt() {
	s.supplyService = s.newService(&supply.Config{AllowRepeatedCards: false})

	used := models.Card{URL: "https://img/used.jpg", Type: models.MediaTypePhoto}
	s.Require().NoError(s.usedCards.AddUsedCards(s.ctx, &used_cards.AddUsedCardsInput{Cards: []models.Card{used}}))
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(&used, nil).Times(3)

	got, err := s.supplyService.GetRandomCard(s.ctx)
	s.Require().NoError(err)
	s.Equal(used, *got)
}

// gatedLedger holds the first claims until all of them are in flight
type gatedLedger struct {
	used_cards.Repository
	mu      sync.Mutex
	waiting int
	gate    int
	open    chan struct{}
}

func newGatedLedger(gate int) *gatedLedger {
	return &gatedLedger{
		Repository: used_cards.NewMemory(),
		gate:       gate,
		open:       make(chan struct{}),
	}
}

func (l *gatedLedger) ClaimCard(ctx context.Context, input *used_cards.ClaimCardInput) (bool, error) {
	l.mu.Lock()
	l.waiting++
	switch {
	case l.waiting == l.gate:
		close(l.open)
	case l.waiting > l.gate:
		l.mu.Unlock()
		return l.Repository.ClaimCard(ctx, input)
	}
	l.mu.Unlock()

	<-l.open
	return l.Repository.ClaimCard(ctx, input)
}

func (s *SupplyServiceTestSuite) TestGetRandomCards_ConcurrentDrawsNeverRepeat() {
	s.usedCards = newGatedLedger(2)
	s.supplyService = s.newService(&supply.Config{AllowRepeatedCards: false})

	var drawn int32
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).DoAndReturn(func(context.Context) (*models.Card, error) {
		n := atomic.AddInt32(&drawn, 1)
		if n <= 2 {
			return &models.Card{URL: "https://img/same.jpg", Type: models.MediaTypePhoto}, nil
		}
		return &models.Card{URL: fmt.Sprintf("https://img/%d.jpg", n), Type: models.MediaTypePhoto}, nil
	}).Times(3)

	result, err := s.supplyService.GetRandomCards(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.NotEqual(result[0].URL, result[1].URL)

	ledger, err := s.supplyService.GetUsedCards(s.ctx)
	s.Require().NoError(err)
	s.Len(ledger, 2)
}

func (s *SupplyServiceTestSuite) TestRetainUsedCards() {
	s.supplyService = s.newService(&supply.Config{AllowRepeatedCards: true, RetainUsedCards: true})

	card := models.Card{URL: "https://img/1.jpg", Type: models.MediaTypePhoto}
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(&card, nil)

	_, err := s.supplyService.GetRandomCard(s.ctx)
	s.Require().NoError(err)

	ledger, err := s.supplyService.GetUsedCards(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.Card{card}, ledger)

	s.Require().NoError(s.supplyService.ResetUsedCards(s.ctx))
	ledger, err = s.supplyService.GetUsedCards(s.ctx)
	s.Require().NoError(err)
	s.Empty(ledger)
}

func (s *SupplyServiceTestSuite) TestNoLedgerWhenRepeatsAllowed() {
	card := models.Card{URL: "https://img/1.jpg", Type: models.MediaTypePhoto}
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(&card, nil)

	_, err := s.supplyService.GetRandomCard(s.ctx)
	s.Require().NoError(err)

	ledger, err := s.supplyService.GetUsedCards(s.ctx)
	s.Require().NoError(err)
	s.Empty(ledger)
}

func (s *SupplyServiceTestSuite) TestGetRandomCards() {
	var drawn int32
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).DoAndReturn(func(context.Context) (*models.Card, error) {
		n := atomic.AddInt32(&drawn, 1)
		return &models.Card{URL: fmt.Sprintf("https://img/%d.jpg", n), Type: models.MediaTypePhoto}, nil
	}).Times(12)

	result, err := s.supplyService.GetRandomCards(s.ctx, 12)
	s.Require().NoError(err)
	s.Len(result, 12)

	seen := map[string]bool{}
	for _, card := range result {
		s.NotEmpty(card.URL)
		s.False(seen[card.URL], "every slot holds its own draw")
		seen[card.URL] = true
	}
}

func (s *SupplyServiceTestSuite) TestGetRandomCards_Zero() {
	result, err := s.supplyService.GetRandomCards(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(result)

	_, err = s.supplyService.GetRandomCards(s.ctx, -1)
	s.ErrorIs(err, supply.ErrInvalidCount)
}

func (s *SupplyServiceTestSuite) TestGetRandomCards_FailureFailsTheBatch() {
	boom := errors.New("boom")
	s.mockDefaultSource.EXPECT().GetRandomCard(gomock.Any()).Return(nil, boom).MinTimes(1)

	_, err := s.supplyService.GetRandomCards(s.ctx, 4)
	s.ErrorIs(err, boom)
}
