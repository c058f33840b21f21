// Command datasets validates the local linguistic dataset files and
// optionally probes them for a single word. It is a preflight tool for
// operators: run it after downloading or updating the WordNet, CMU,
// CEFR or frequency files to confirm the server will load them.
//
// Flags:
//
//	--wordnet    path to the WordNet JSON export (overrides config)
//	--cmudict    path to the CMU pronouncing dictionary (overrides config)
//	--cefr       path to the CEFR wordlist CSV (overrides config)
//	--frequency  path to the frequency rank CSV (overrides config)
//	--word       optional word to probe across all loaded datasets
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/grimoire-app/grimoire-backend/internal/app"
	"github.com/grimoire-app/grimoire-backend/internal/config"
	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/source"
	"github.com/grimoire-app/grimoire-backend/internal/source/cefr"
	"github.com/grimoire-app/grimoire-backend/internal/source/cmudict"
	"github.com/grimoire-app/grimoire-backend/internal/source/frequency"
	"github.com/grimoire-app/grimoire-backend/internal/source/wordnet"
)

func main() {
	wordnetFlag := flag.String("wordnet", "", "path to WordNet JSON export")
	cmudictFlag := flag.String("cmudict", "", "path to CMU pronouncing dictionary")
	cefrFlag := flag.String("cefr", "", "path to CEFR wordlist CSV")
	frequencyFlag := flag.String("frequency", "", "path to frequency rank CSV")
	wordFlag := flag.String("word", "", "word to probe across loaded datasets")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config paths.
	paths := cfg.Datasets
	if *wordnetFlag != "" {
		paths.WordNetPath = *wordnetFlag
	}
	if *cmudictFlag != "" {
		paths.CMUDictPath = *cmudictFlag
	}
	if *cefrFlag != "" {
		paths.CEFRPath = *cefrFlag
	}
	if *frequencyFlag != "" {
		paths.FrequencyPath = *frequencyFlag
	}

	adapters, failed := loadAll(paths, logger)
	if len(adapters) == 0 {
		logger.Error("no datasets configured or loadable")
		os.Exit(1)
	}

	if *wordFlag != "" {
		probe(logger, adapters, *wordFlag)
	}

	if failed {
		os.Exit(1)
	}
}

// loadAll constructs every configured adapter. Each adapter logs its own
// parse statistics on construction.
func loadAll(paths config.DatasetsConfig, logger *slog.Logger) (adapters []source.Adapter, failed bool) {
	load := func(name, path string, build func() (source.Adapter, error)) {
		if path == "" {
			logger.Info("dataset not configured, skipping", slog.String("dataset", name))
			return
		}
		a, err := build()
		if err != nil {
			logger.Error("dataset failed to load",
				slog.String("dataset", name),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			failed = true
			return
		}
		adapters = append(adapters, a)
	}

	load("wordnet", paths.WordNetPath, func() (source.Adapter, error) {
		return wordnet.NewAdapter(paths.WordNetPath, logger)
	})
	load("cmudict", paths.CMUDictPath, func() (source.Adapter, error) {
		return cmudict.NewAdapter(paths.CMUDictPath, logger)
	})
	load("cefr", paths.CEFRPath, func() (source.Adapter, error) {
		return cefr.NewAdapter(paths.CEFRPath, logger)
	})
	load("frequency", paths.FrequencyPath, func() (source.Adapter, error) {
		return frequency.NewAdapter(paths.FrequencyPath, logger)
	})

	return adapters, failed
}

// probe fetches one word from every adapter and logs what each one knows.
func probe(logger *slog.Logger, adapters []source.Adapter, rawWord string) {
	word, err := domain.NormalizeWord(rawWord)
	if err != nil {
		logger.Error("invalid word", slog.String("word", rawWord), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, a := range adapters {
		data, err := a.Fetch(ctx, word)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			logger.Info("no entry", slog.String("source", a.Name()), slog.String("word", word))
			continue
		case err != nil:
			logger.Error("fetch failed",
				slog.String("source", a.Name()),
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			continue
		}

		attrs := []slog.Attr{
			slog.String("source", a.Name()),
			slog.String("word", word),
			slog.Int("definitions", len(data.Definitions)),
			slog.Int("relations", len(data.Relations)),
		}
		if data.Phonetic != nil {
			attrs = append(attrs, slog.String("ipa", data.Phonetic.IPA))
		}
		if data.DifficultyLevel != nil {
			attrs = append(attrs, slog.String("difficulty", data.DifficultyLevel.String()))
		}
		if data.FrequencyRank != nil {
			attrs = append(attrs, slog.Int("frequency_rank", *data.FrequencyRank))
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "entry found", attrs...)
	}
}
