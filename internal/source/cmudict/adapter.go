package cmudict

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/source"
)

const adapterName = "cmudict"

// Adapter serves phonetic transcriptions from an in-memory copy of the
// CMU Pronouncing Dictionary.
type Adapter struct {
	pronunciations map[string][]Transcription
	log            *slog.Logger
}

// NewAdapter loads the dictionary file at path into memory.
func NewAdapter(path string, log *slog.Logger) (*Adapter, error) {
	result, err := Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse cmu dict: %w", err)
	}

	log = log.With("adapter", adapterName)
	log.Info("cmu dictionary loaded",
		"words", result.Stats.UniqueWords,
		"pronunciations", result.Stats.ParsedLines,
	)

	return &Adapter{
		pronunciations: result.Pronunciations,
		log:            log,
	}, nil
}

func (a *Adapter) Name() string { return adapterName }

func (a *Adapter) SupportsField(field string) bool {
	return field == domain.FieldPhoneticTranscription
}

// Fetch returns the primary pronunciation for the word. Variant
// pronunciations beyond the first are ignored.
func (a *Adapter) Fetch(_ context.Context, word string) (*source.WordData, error) {
	transcriptions, ok := a.pronunciations[word]
	if !ok || len(transcriptions) == 0 {
		return nil, domain.ErrNotFound
	}

	primary := transcriptions[0]
	for _, tr := range transcriptions {
		if tr.VariantIndex == 0 {
			primary = tr
			break
		}
	}

	return &source.WordData{
		Recognized: true,
		Phonetic:   &domain.PhoneticTranscription{IPA: primary.IPA},
	}, nil
}
