// Package source defines the contract shared by all word data sources.
// Each source contributes a partial view of a word; the enrichment
// service merges the views into one record.
package source

import (
	"context"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// Adapter is one provider of word data. Implementations must be safe
// for concurrent use: the enrichment service fans out to all adapters
// at once.
type Adapter interface {
	// Name identifies the source in logs and provenance fields.
	Name() string

	// SupportsField reports whether this source can supply the given
	// completeness field (domain.Field* constants).
	SupportsField(field string) bool

	// Fetch returns the source's partial data for a normalized word.
	// Returns domain.ErrNotFound when the source has no entry for the
	// word, and domain.ErrSourceUnavailable (wrapped) on transient
	// failures. Both are recoverable: the caller continues without
	// this source.
	Fetch(ctx context.Context, word string) (*WordData, error)
}

// WordData is the partial contribution of a single source. All fields
// are optional; a source fills only what it knows.
type WordData struct {
	// Recognized is false only when the source affirmatively states the
	// word is not real (AI sources). Dictionary-file sources signal
	// absence with domain.ErrNotFound instead.
	Recognized bool

	Definitions []domain.Definition
	Phonetic    *domain.PhoneticTranscription
	Grammar     *domain.GrammaticalInfo

	DifficultyLevel *domain.CEFRLevel
	FrequencyRank   *int
	StyleTags       []string

	Relations []domain.RelatedWord
}
