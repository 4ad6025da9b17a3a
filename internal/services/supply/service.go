package supply

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/imaginarium/internal/cards"
	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/models"
	"github.com/KirkDiggler/imaginarium/internal/repositories/used_cards"
)

// service implements the Service interface
type service struct {
	factory       SourceFactory
	defaultSource cards.Source
	usedCards     used_cards.Repository
	random        random.Randomizer
	logger        logrus.FieldLogger

	recordUsed    bool
	allowRepeated bool
	maxAttempts   int
	maxConcurrent int

	mu      sync.RWMutex
	sources []cards.Source
	locked  bool
}

// New creates a new supply service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Factory == nil {
		return nil, ErrNilFactory
	}

	s := &service{
		factory:       cfg.Factory,
		defaultSource: cfg.DefaultSource,
		usedCards:     cfg.UsedCardsRepo,
		random:        cfg.Randomizer,
		logger:        cfg.Logger,
		recordUsed:    cfg.RetainUsedCards || !cfg.AllowRepeatedCards,
		allowRepeated: cfg.AllowRepeatedCards,
		maxAttempts:   cfg.MaxAttempts,
		maxConcurrent: cfg.MaxConcurrentDraws,
	}

	if s.defaultSource == nil {
		s.defaultSource = cards.NewDefault(&cards.DefaultConfig{})
	}
	if s.usedCards == nil {
		s.usedCards = used_cards.NewMemory()
	}
	if s.random == nil {
		s.random = random.New(nil)
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = DefaultMaxAttempts
	}
	if s.maxConcurrent <= 0 {
		s.maxConcurrent = DefaultMaxConcurrentDraws
	}

	return s, nil
}

// AddSource resolves a link, validates the source and adds it to the pool
func (s *service) AddSource(ctx context.Context, input *AddSourceInput) (*AddSourceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if s.isLocked() {
		return nil, ErrGameIsStarted
	}

	source, err := s.factory.NewSource(input.Link)
	if err != nil {
		return nil, err
	}

	if s.indexOf(source.Link()) >= 0 {
		return nil, ErrSourceAlreadyAdded
	}

	if err := source.Validate(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validation is slow; the pool may have changed meanwhile
	if s.locked {
		return nil, ErrGameIsStarted
	}
	for _, existing := range s.sources {
		if cards.SameSource(existing, source) {
			return nil, ErrSourceAlreadyAdded
		}
	}
	s.sources = append(s.sources, source)

	s.logger.WithField("source", source.Link()).Info("source added")

	return &AddSourceOutput{
		Source: source,
	}, nil
}

// RemoveSource removes a source from the pool
func (s *service) RemoveSource(ctx context.Context, input *RemoveSourceInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return ErrGameIsStarted
	}

	for i, source := range s.sources {
		if source.Link() == input.Link {
			s.sources = append(s.sources[:i:i], s.sources[i+1:]...)
			s.logger.WithField("source", input.Link).Info("source removed")
			return nil
		}
	}

	return ErrSourceNotFound
}

// ResetSources empties the pool
func (s *service) ResetSources(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return ErrGameIsStarted
	}

	s.sources = nil
	return nil
}

// GetSources returns a snapshot of the pool
func (s *service) GetSources(ctx context.Context) (*GetSourcesOutput, error) {
	return &GetSourcesOutput{
		Sources: s.snapshot(),
	}, nil
}

// SetLocked freezes or unfreezes the pool
func (s *service) SetLocked(locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = locked
}

// GetRandomSource returns the only source, or a source picked with
// probability proportional to its card count. Sources that fail to report a
// count are evicted.
func (s *service) GetRandomSource(ctx context.Context) (cards.Source, error) {
	for {
		sources := s.snapshot()
		switch len(sources) {
		case 0:
			return nil, ErrNoAnyUsedSources
		case 1:
			return sources[0], nil
		}

		counts := make([]int, 0, len(sources))
		candidates := make([]cards.Source, 0, len(sources))
		for _, source := range sources {
			count, err := source.CardCount(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				if !isSourceFailure(err) {
					return nil, err
				}
				s.evict(source, err)
				continue
			}
			counts = append(counts, count)
			candidates = append(candidates, source)
		}

		// Evictions above changed the pool; start over with what is left
		if len(candidates) != len(sources) {
			continue
		}

		return candidates[pick(Weights(counts), s.random.Float64())], nil
	}
}

// GetRandomCard draws one card. Sources failing with ErrInvalidSource or
// ErrNoAnyCards are evicted and the draw is retried; an empty pool falls back
// to the default source. Cards found in the ledger are redrawn unless repeats
// are allowed, and accepted anyway on the last attempt.
func (s *service) GetRandomCard(ctx context.Context) (*models.Card, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		source, err := s.GetRandomSource(ctx)
		if errors.Is(err, ErrNoAnyUsedSources) {
			source = s.defaultSource
		} else if err != nil {
			return nil, err
		}

		card, err := source.GetRandomCard(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !isSourceFailure(err) {
				return nil, err
			}
			lastErr = err
			s.evict(source, err)
			continue
		}

		if !s.allowRepeated {
			claimed, err := s.usedCards.ClaimCard(ctx, &used_cards.ClaimCardInput{Card: *card})
			if err != nil {
				return nil, fmt.Errorf("failed to claim used card: %w", err)
			}
			if !claimed && attempt < s.maxAttempts {
				s.logger.WithFields(logrus.Fields{
					"card":    card.URL,
					"attempt": attempt,
				}).Debug("card already used, redrawing")
				continue
			}
			return card, nil
		}

		if s.recordUsed {
			err = s.usedCards.AddUsedCards(ctx, &used_cards.AddUsedCardsInput{
				Cards: []models.Card{*card},
			})
			if err != nil {
				return nil, fmt.Errorf("failed to record used card: %w", err)
			}
		}

		return card, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetryBudgetExhausted, lastErr)
	}
	return nil, ErrRetryBudgetExhausted
}

// GetRandomCards draws count cards concurrently. result[i] is the result of
// the i-th draw regardless of completion order.
func (s *service) GetRandomCards(ctx context.Context, count int) ([]models.Card, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}

	result := make([]models.Card, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			card, err := s.GetRandomCard(gctx)
			if err != nil {
				return err
			}
			result[i] = *card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetUsedCards lists the used-cards ledger
func (s *service) GetUsedCards(ctx context.Context) ([]models.Card, error) {
	output, err := s.usedCards.GetUsedCards(ctx, &used_cards.GetUsedCardsInput{})
	if err != nil {
		return nil, err
	}
	return output.Cards, nil
}

// ResetUsedCards clears the used-cards ledger
func (s *service) ResetUsedCards(ctx context.Context) error {
	return s.usedCards.ResetUsedCards(ctx, &used_cards.ResetUsedCardsInput{})
}

func (s *service) snapshot() []cards.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sources := make([]cards.Source, len(s.sources))
	copy(sources, s.sources)
	return sources
}

func (s *service) isLocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locked
}

func (s *service) indexOf(link string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, source := range s.sources {
		if source.Link() == link {
			return i
		}
	}
	return -1
}

// evict drops a broken source from the pool. Allowed while locked.
func (s *service) evict(source cards.Source, reason error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.sources {
		if cards.SameSource(existing, source) {
			s.sources = append(s.sources[:i:i], s.sources[i+1:]...)
			s.logger.WithFields(logrus.Fields{
				"source": source.Link(),
				"reason": reason.Error(),
			}).Warn("source evicted from the pool")
			return
		}
	}
}

func isSourceFailure(err error) bool {
	return errors.Is(err, cards.ErrInvalidSource) || errors.Is(err, cards.ErrNoAnyCards)
}
