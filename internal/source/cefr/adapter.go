// Package cefr serves CEFR difficulty levels from a CSV wordlist.
package cefr

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/source"
)

const adapterName = "cefr"

// Adapter serves CEFR levels from an in-memory wordlist.
type Adapter struct {
	levels map[string]domain.CEFRLevel
	log    *slog.Logger
}

// NewAdapter loads the CEFR wordlist at path into memory.
func NewAdapter(path string, log *slog.Logger) (*Adapter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	levels, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse cefr list: %w", err)
	}

	log = log.With("adapter", adapterName)
	log.Info("cefr wordlist loaded", "words", len(levels))

	return &Adapter{levels: levels, log: log}, nil
}

// ParseCSV reads a CEFR wordlist from r. Column 0 is the word, column 1
// is the level (A1-C2, any case). The first row is a header. Rows with
// an unknown level are skipped.
func ParseCSV(r io.Reader) (map[string]domain.CEFRLevel, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return map[string]domain.CEFRLevel{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	levels := make(map[string]domain.CEFRLevel)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if len(record) < 2 {
			continue
		}

		word := strings.ToLower(strings.TrimSpace(record[0]))
		level := domain.CEFRLevel(strings.ToUpper(strings.TrimSpace(record[1])))
		if word == "" || !level.IsValid() {
			continue
		}

		if _, exists := levels[word]; !exists {
			levels[word] = level
		}
	}

	return levels, nil
}

// Words returns the wordlist vocabulary. Used to seed the spelling
// suggestion service at startup.
func (a *Adapter) Words() []string {
	words := make([]string, 0, len(a.levels))
	for w := range a.levels {
		words = append(words, w)
	}
	return words
}

func (a *Adapter) Name() string { return adapterName }

func (a *Adapter) SupportsField(field string) bool {
	return field == domain.FieldDifficultyLevel
}

func (a *Adapter) Fetch(_ context.Context, word string) (*source.WordData, error) {
	level, ok := a.levels[word]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return &source.WordData{
		Recognized:      true,
		DifficultyLevel: &level,
	}, nil
}
