// Package app wires configuration, storage, cache, word sources and the
// HTTP server into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/grimoire-app/grimoire-backend/internal/adapter/postgres"
	"github.com/grimoire-app/grimoire-backend/internal/adapter/postgres/word"
	"github.com/grimoire-app/grimoire-backend/internal/adapter/rediscache"
	"github.com/grimoire-app/grimoire-backend/internal/config"
	"github.com/grimoire-app/grimoire-backend/internal/service/enrichment"
	"github.com/grimoire-app/grimoire-backend/internal/service/lookup"
	"github.com/grimoire-app/grimoire-backend/internal/service/spelling"
	"github.com/grimoire-app/grimoire-backend/internal/source"
	"github.com/grimoire-app/grimoire-backend/internal/source/cefr"
	"github.com/grimoire-app/grimoire-backend/internal/source/claude"
	"github.com/grimoire-app/grimoire-backend/internal/source/cmudict"
	"github.com/grimoire-app/grimoire-backend/internal/source/frequency"
	"github.com/grimoire-app/grimoire-backend/internal/source/wordnet"
	"github.com/grimoire-app/grimoire-backend/internal/transport/middleware"
	"github.com/grimoire-app/grimoire-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to PostgreSQL and Redis, loads the word source datasets, assembles the
// services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	redisClient, err := rediscache.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close() //nolint:errcheck

	cache := rediscache.New(redisClient, cfg.Cache.CommonRankCutoff, cfg.Cache.RareTTL, cfg.Cache.FailedTTL)

	txm := postgres.NewTxManager(pool)
	words := word.New(pool, txm)

	ai := claude.NewAdapter(
		claude.NewAnthropicCompleter(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens),
		logger,
	)
	supplementary, cefrWords := loadDatasets(cfg.Datasets, logger)

	enrichSvc := enrichment.NewService(ai, supplementary, cfg.Lookup.AITimeout, cfg.Lookup.SourceTimeout, logger)

	spellSvc := spelling.NewService(initialVocabulary(ctx, logger, words, cefrWords))
	lookupSvc := lookup.NewService(logger, words, cache, enrichSvc, spellSvc, cfg.Lookup)

	wordsHandler := rest.NewWordsHandler(logger, lookupSvc)
	healthHandler := rest.NewHealthHandler(
		pool,
		rest.PingerFunc(func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }),
		BuildVersion(),
	)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewHandler(logger, cfg.CORS, limiter, cfg.Server.RateLimitPerMinute, wordsHandler, healthHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// loadDatasets builds the supplementary word source adapters. An empty
// path disables that source; a load failure is logged and the source is
// skipped so the service can still start with the remaining ones.
func loadDatasets(cfg config.DatasetsConfig, logger *slog.Logger) ([]source.Adapter, []string) {
	var (
		adapters  []source.Adapter
		cefrWords []string
	)

	if cfg.WordNetPath != "" {
		a, err := wordnet.NewAdapter(cfg.WordNetPath, logger)
		if err != nil {
			logger.Warn("wordnet dataset unavailable", "path", cfg.WordNetPath, "error", err)
		} else {
			adapters = append(adapters, a)
		}
	}

	if cfg.CMUDictPath != "" {
		a, err := cmudict.NewAdapter(cfg.CMUDictPath, logger)
		if err != nil {
			logger.Warn("cmu dict dataset unavailable", "path", cfg.CMUDictPath, "error", err)
		} else {
			adapters = append(adapters, a)
		}
	}

	if cfg.CEFRPath != "" {
		a, err := cefr.NewAdapter(cfg.CEFRPath, logger)
		if err != nil {
			logger.Warn("cefr dataset unavailable", "path", cfg.CEFRPath, "error", err)
		} else {
			adapters = append(adapters, a)
			cefrWords = a.Words()
		}
	}

	if cfg.FrequencyPath != "" {
		a, err := frequency.NewAdapter(cfg.FrequencyPath, logger)
		if err != nil {
			logger.Warn("frequency dataset unavailable", "path", cfg.FrequencyPath, "error", err)
		} else {
			adapters = append(adapters, a)
		}
	}

	return adapters, cefrWords
}

// wordLister is satisfied by the word repository.
type wordLister interface {
	ListTexts(ctx context.Context) ([]string, error)
}

// initialVocabulary seeds the speller with every stored word plus the
// CEFR wordlist. A storage error at startup only degrades suggestions.
func initialVocabulary(ctx context.Context, logger *slog.Logger, words wordLister, cefrWords []string) []string {
	stored, err := words.ListTexts(ctx)
	if err != nil {
		logger.Warn("loading stored words for spelling suggestions failed", "error", err)
	}
	return append(stored, cefrWords...)
}
