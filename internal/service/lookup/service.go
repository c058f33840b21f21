// Package lookup implements the word lookup flow: cache, then storage,
// then enrichment, with a per-word in-flight lock so concurrent requests
// for the same unknown word trigger at most one enrichment.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/grimoire-app/grimoire-backend/internal/config"
	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	FindByText(ctx context.Context, text string) (*domain.WordRecord, error)
	CreateOrReplace(ctx context.Context, record *domain.WordRecord) (*domain.WordRecord, error)
}

type wordCache interface {
	GetWord(ctx context.Context, word string) (*domain.WordRecord, domain.DataCompleteness, error)
	SetWord(ctx context.Context, record *domain.WordRecord, completeness domain.DataCompleteness) error
	SetFailed(ctx context.Context, word string) error
	IsFailed(ctx context.Context, word string) (bool, error)
	TryLock(ctx context.Context, word string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, word string) error
}

type enricher interface {
	Enrich(ctx context.Context, word string) (*domain.WordRecord, domain.DataCompleteness, error)
}

type speller interface {
	Suggest(word string) []string
	AddWord(word string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the word lookup business logic.
type Service struct {
	log      *slog.Logger
	words    wordRepo
	cache    wordCache
	enricher enricher
	speller  speller
	cfg      config.LookupConfig
}

// NewService creates a new Lookup service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	cache wordCache,
	enricher enricher,
	speller speller,
	cfg config.LookupConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "lookup"),
		words:    words,
		cache:    cache,
		enricher: enricher,
		speller:  speller,
		cfg:      cfg,
	}
}

// Lookup resolves one word: cache hit, stored record, or fresh enrichment.
// Normalization happens here, before any cache or storage key is derived.
// Returns *NotFoundError (wrapping ErrWordNotRecognized) with spelling
// suggestions when the word cannot be enriched.
func (s *Service) Lookup(ctx context.Context, rawWord string) (*Result, error) {
	word, err := domain.NormalizeWord(rawWord)
	if err != nil {
		return nil, err
	}

	// Cache first. Read failures degrade to a miss.
	record, completeness, err := s.cache.GetWord(ctx, word)
	if err == nil {
		s.log.Debug("cache hit", "word", word)
		return &Result{Record: record, Completeness: completeness, CacheStatus: CacheStatusHit}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.Warn("cache read failed, falling through to storage", "word", word, "error", err)
	}

	// Storage next. A stored record re-populates the cache.
	record, err = s.words.FindByText(ctx, word)
	switch {
	case err == nil:
		s.log.Debug("storage hit", "word", word)
		completeness = domain.ComputeCompleteness(record)
		s.cacheWord(ctx, record, completeness)
		return &Result{Record: record, Completeness: completeness, CacheStatus: CacheStatusMiss}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}

	// A recent failed lookup short-circuits straight to suggestions.
	failed, err := s.cache.IsFailed(ctx, word)
	if err != nil {
		s.log.Warn("failed-lookup check failed", "word", word, "error", err)
	} else if failed {
		s.log.Debug("failed lookup still cached", "word", word)
		return nil, s.notFound(word)
	}

	return s.enrichUnderLock(ctx, word)
}

// enrichUnderLock guarantees at most one concurrent enrichment per word.
// Losing the race means polling until the winner publishes its outcome.
func (s *Service) enrichUnderLock(ctx context.Context, word string) (*Result, error) {
	acquired, err := s.cache.TryLock(ctx, word, s.cfg.LockTTL)
	if err != nil {
		// Lock unavailable (cache down): enrich anyway rather than fail
		// the request. Duplicate AI calls beat an outage.
		s.log.Warn("lock acquire failed, enriching without lock", "word", word, "error", err)
		return s.enrich(ctx, word)
	}

	if !acquired {
		return s.waitForWinner(ctx, word)
	}

	defer func() {
		if err := s.cache.Unlock(context.WithoutCancel(ctx), word); err != nil {
			s.log.Warn("lock release failed", "word", word, "error", err)
		}
	}()

	return s.enrich(ctx, word)
}

// enrich runs the orchestrator and publishes the outcome. The context is
// detached from the request so a client disconnect does not waste the
// in-flight AI call; subsequent requests benefit from the result.
func (s *Service) enrich(ctx context.Context, word string) (*Result, error) {
	ectx := context.WithoutCancel(ctx)

	record, completeness, err := s.enricher.Enrich(ectx, word)
	if err != nil {
		if errors.Is(err, domain.ErrWordNotRecognized) {
			if cacheErr := s.cache.SetFailed(ectx, word); cacheErr != nil {
				s.log.Warn("failed-lookup cache write failed", "word", word, "error", cacheErr)
			}
			return nil, s.notFound(word)
		}
		return nil, fmt.Errorf("enrich %q: %w", word, err)
	}

	stored, err := s.words.CreateOrReplace(ectx, record)
	if err != nil {
		// The enrichment is not lost for this caller: serve it, skip the
		// cache, and let the next request recompute and persist.
		s.log.Error("storage write failed, returning unpersisted record", "word", word, "error", err)
		return &Result{Record: record, Completeness: completeness, CacheStatus: CacheStatusMiss}, nil
	}

	s.speller.AddWord(word)
	s.cacheWord(ectx, stored, completeness)

	return &Result{Record: stored, Completeness: completeness, CacheStatus: CacheStatusMiss}, nil
}

// waitForWinner polls cache, storage and the failed-lookup marker until
// the concurrent enrichment for the same word publishes its result.
func (s *Service) waitForWinner(ctx context.Context, word string) (*Result, error) {
	s.log.Debug("waiting for concurrent enrichment", "word", word)

	deadline := time.NewTimer(s.cfg.LockWaitTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(s.cfg.LockPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, fmt.Errorf("word %q: %w", word, domain.ErrLockTimeout)
		case <-ticker.C:
		}

		if record, completeness, err := s.cache.GetWord(ctx, word); err == nil {
			return &Result{Record: record, Completeness: completeness, CacheStatus: CacheStatusHit}, nil
		}

		record, err := s.words.FindByText(ctx, word)
		if err == nil {
			completeness := domain.ComputeCompleteness(record)
			return &Result{Record: record, Completeness: completeness, CacheStatus: CacheStatusMiss}, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("lookup %q: %w", word, err)
		}

		if failed, err := s.cache.IsFailed(ctx, word); err == nil && failed {
			return nil, s.notFound(word)
		}
	}
}

func (s *Service) notFound(word string) error {
	return &NotFoundError{Word: word, Suggestions: s.speller.Suggest(word)}
}

// cacheWord writes through to the cache, logging instead of failing.
func (s *Service) cacheWord(ctx context.Context, record *domain.WordRecord, completeness domain.DataCompleteness) {
	if err := s.cache.SetWord(ctx, record, completeness); err != nil {
		s.log.Warn("cache write failed", "word", record.Text, "error", err)
	}
}
