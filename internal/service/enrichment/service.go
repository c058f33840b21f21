// Package enrichment orchestrates all word data sources into one
// validated WordRecord.
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/source"
)

// Service combines the primary AI source with the supplementary
// sources. The AI result seeds definitions, examples, grammar and
// candidate relations; supplementary sources each fill their slice.
type Service struct {
	ai            source.Adapter
	supplementary []source.Adapter

	aiTimeout     time.Duration
	sourceTimeout time.Duration

	log *slog.Logger
}

// NewService wires the orchestrator. aiTimeout bounds the primary
// call; sourceTimeout bounds each supplementary call individually.
func NewService(ai source.Adapter, supplementary []source.Adapter, aiTimeout, sourceTimeout time.Duration, log *slog.Logger) *Service {
	return &Service{
		ai:            ai,
		supplementary: supplementary,
		aiTimeout:     aiTimeout,
		sourceTimeout: sourceTimeout,
		log:           log.With("service", "enrichment"),
	}
}

// Enrich turns one normalized word into a WordRecord plus its
// completeness summary.
//
// All sources run concurrently, each under its own timeout. A failed
// or timed-out supplementary source is its normal "no data" outcome.
// The AI source failing is survivable too, as long as at least one
// supplementary source contributed something; otherwise enrichment
// fails with ErrWordNotRecognized. An explicit "not a word" verdict
// from the AI source fails the enrichment immediately, and so does a
// recognized reply whose definitions all failed validation.
func (s *Service) Enrich(ctx context.Context, word string) (*domain.WordRecord, domain.DataCompleteness, error) {
	started := time.Now()

	var aiData *source.WordData
	var aiErr error
	results := make([]*source.WordData, len(s.supplementary))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		actx, cancel := context.WithTimeout(gctx, s.aiTimeout)
		defer cancel()
		aiData, aiErr = s.ai.Fetch(actx, word)
		return nil
	})

	for i, adapter := range s.supplementary {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, s.sourceTimeout)
			defer cancel()

			data, err := adapter.Fetch(fctx, word)
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					s.log.Warn("supplementary source failed",
						"adapter", adapter.Name(), "word", word, "error", err)
				}
				return nil
			}
			results[i] = restrictToSupported(adapter, data)
			return nil
		})
	}

	_ = g.Wait()

	if aiErr != nil {
		s.log.Warn("ai source failed, continuing with empty seed", "word", word, "error", aiErr)
		aiData = nil
	} else if !aiData.Recognized {
		return nil, domain.DataCompleteness{}, fmt.Errorf("word %q: %w", word, domain.ErrWordNotRecognized)
	} else if len(aiData.Definitions) == 0 {
		// Recognized but every definition failed validation. A record
		// without definitions is useless, treat it the same way.
		s.log.Warn("ai source returned no usable definitions", "word", word)
		return nil, domain.DataCompleteness{}, fmt.Errorf("word %q: %w", word, domain.ErrWordNotRecognized)
	}

	hasSupplementaryData := false
	for _, data := range results {
		if data != nil {
			hasSupplementaryData = true
			break
		}
	}

	if aiData == nil && !hasSupplementaryData {
		return nil, domain.DataCompleteness{}, fmt.Errorf("enrichment failed for %q: %w", word, domain.ErrWordNotRecognized)
	}

	record := s.assemble(word, aiData, results)
	completeness := domain.ComputeCompleteness(record)

	s.log.Info("word enriched",
		"word", word,
		"duration", time.Since(started),
		"completeness", completeness.Percentage,
		"missing_fields", completeness.MissingFields,
	)

	return record, completeness, nil
}

// restrictToSupported clears the fields an adapter does not claim via
// SupportsField, so a source cannot contribute outside its declared
// capability. Frequency ranks and style tags belong to the difficulty
// capability.
func restrictToSupported(a source.Adapter, data *source.WordData) *source.WordData {
	if !a.SupportsField(domain.FieldDefinitions) {
		data.Definitions = nil
	}
	if !a.SupportsField(domain.FieldPhoneticTranscription) {
		data.Phonetic = nil
	}
	if !a.SupportsField(domain.FieldGrammaticalForms) {
		data.Grammar = nil
	}
	if !a.SupportsField(domain.FieldRelatedWords) {
		data.Relations = nil
	}
	if !a.SupportsField(domain.FieldDifficultyLevel) {
		data.DifficultyLevel = nil
		data.FrequencyRank = nil
		data.StyleTags = nil
	}
	return data
}

// assemble merges the AI seed with the supplementary contributions.
func (s *Service) assemble(word string, aiData *source.WordData, supplementary []*source.WordData) *domain.WordRecord {
	now := time.Now().UTC()
	record := &domain.WordRecord{
		Text:           word,
		Language:       "en",
		LastEnrichedAt: &now,
	}

	var supplementaryRelations []domain.RelatedWord
	var supplementaryPhonetic *domain.PhoneticTranscription
	var supplementaryLevel *domain.CEFRLevel
	var frequencyRank *int

	for _, data := range supplementary {
		if data == nil {
			continue
		}
		supplementaryRelations = append(supplementaryRelations, data.Relations...)
		if supplementaryPhonetic == nil && data.Phonetic != nil {
			supplementaryPhonetic = data.Phonetic
		}
		if supplementaryLevel == nil && data.DifficultyLevel != nil {
			supplementaryLevel = data.DifficultyLevel
		}
		if frequencyRank == nil && data.FrequencyRank != nil {
			frequencyRank = data.FrequencyRank
		}
	}

	var aiRelations []domain.RelatedWord
	var styleTags []string
	var aiLevel *domain.CEFRLevel

	if aiData != nil {
		record.Definitions = aiData.Definitions
		record.Grammar = validateGrammar(word, aiData.Grammar)
		aiRelations = aiData.Relations
		styleTags = aiData.StyleTags
		aiLevel = aiData.DifficultyLevel

		if aiData.Phonetic != nil && aiData.Phonetic.IPA != "" {
			record.Phonetic = aiData.Phonetic
		}
	}

	// Pronunciation source fills in only when the AI seed did not
	// already provide a transcription.
	if record.Phonetic == nil && supplementaryPhonetic != nil {
		s.log.Info("using supplementary phonetics", "word", word)
		record.Phonetic = supplementaryPhonetic
	}

	record.RelatedWords = mergeRelations(word, aiRelations, supplementaryRelations)
	record.Learning = mergeLearning(supplementaryLevel, aiLevel, frequencyRank, styleTags)

	return record
}

// mergeLearning resolves difficulty with a fixed priority: wordlist
// level, then AI estimate, then a deterministic rank-derived fallback.
func mergeLearning(listLevel, aiLevel *domain.CEFRLevel, rank *int, styleTags []string) *domain.LearningMetadata {
	meta := &domain.LearningMetadata{StyleTags: styleTags}

	switch {
	case listLevel != nil:
		meta.DifficultyLevel = listLevel
	case aiLevel != nil:
		meta.DifficultyLevel = aiLevel
	case rank != nil:
		level := cefrForRank(*rank)
		meta.DifficultyLevel = &level
	}

	if rank != nil {
		meta.FrequencyRank = rank
		band := domain.BandForRank(*rank)
		meta.FrequencyBand = &band
	}

	if meta.DifficultyLevel == nil && meta.FrequencyRank == nil && len(meta.StyleTags) == 0 {
		return nil
	}
	return meta
}

// cefrForRank maps a frequency rank to an estimated CEFR level.
// Deterministic fallback, not model-based.
func cefrForRank(rank int) domain.CEFRLevel {
	switch {
	case rank <= 100:
		return domain.CEFRLevelA1
	case rank <= 1000:
		return domain.CEFRLevelA2
	case rank <= 5000:
		return domain.CEFRLevelB1
	case rank <= 10000:
		return domain.CEFRLevelB2
	case rank <= 25000:
		return domain.CEFRLevelC1
	default:
		return domain.CEFRLevelC2
	}
}
