package frequency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/source"
)

const adapterName = "frequency"

// Adapter serves frequency ranks from an in-memory wordlist.
type Adapter struct {
	ranks map[string]int
	log   *slog.Logger
}

// NewAdapter loads the frequency wordlist at path into memory.
func NewAdapter(path string, log *slog.Logger) (*Adapter, error) {
	ranks, err := ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse frequency list: %w", err)
	}

	log = log.With("adapter", adapterName)
	log.Info("frequency wordlist loaded", "words", len(ranks))

	return &Adapter{ranks: ranks, log: log}, nil
}

func (a *Adapter) Name() string { return adapterName }

func (a *Adapter) SupportsField(field string) bool {
	return field == domain.FieldDifficultyLevel
}

func (a *Adapter) Fetch(_ context.Context, word string) (*source.WordData, error) {
	rank, ok := a.ranks[word]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return &source.WordData{
		Recognized:    true,
		FrequencyRank: &rank,
	}, nil
}
