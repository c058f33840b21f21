package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordRecord is the canonical enriched entity for one word.
// A record is always committed atomically with its sub-entities:
// re-enrichment fully replaces the previous tree, it never patches it.
type WordRecord struct {
	ID             uuid.UUID
	Text           string // normalized: lowercase, letters and hyphens only
	Language       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastEnrichedAt *time.Time

	Definitions  []Definition
	Phonetic     *PhoneticTranscription
	Grammar      *GrammaticalInfo
	Learning     *LearningMetadata
	RelatedWords []RelatedWord
}

// Definition is one sense of a word. OrderIndex is 1-based and unique
// within the word; lower index means more common meaning.
type Definition struct {
	ID           uuid.UUID
	WordID       uuid.UUID
	Text         string
	PartOfSpeech PartOfSpeech
	UsageContext *string
	OrderIndex   int

	Examples []UsageExample
}

// UsageExample is a sentence demonstrating one definition. The text
// always contains the headword (case-insensitive) and is 5-300 characters.
type UsageExample struct {
	ID           uuid.UUID
	DefinitionID uuid.UUID
	Text         string
	ContextType  ContextType
	OrderIndex   int
}

// PhoneticTranscription holds the IPA transcription, wrapped in slashes.
type PhoneticTranscription struct {
	ID       uuid.UUID
	WordID   uuid.UUID
	IPA      string
	AudioURL *string
}

// IrregularForm is one explicitly flagged irregular grammatical form.
type IrregularForm struct {
	Value string `json:"value,omitempty"`
	Note  string `json:"note"`
}

// GrammaticalInfo holds per-part-of-speech word forms. Only fields
// relevant to the word's part of speech are populated; if any verb field
// is set, VerbBase is set too.
type GrammaticalInfo struct {
	ID           uuid.UUID
	WordID       uuid.UUID
	PartOfSpeech PartOfSpeech

	PluralForm *string

	VerbBase              *string
	VerbPastSimple        *string
	VerbPastParticiple    *string
	VerbPresentParticiple *string
	VerbThirdPerson       *string

	AdjComparative *string
	AdjSuperlative *string

	// IrregularForms maps a form name (e.g. "irregular_plural") to its
	// value and explanatory note.
	IrregularForms map[string]IrregularForm
}

// HasAnyForm reports whether at least one grammatical form beyond the
// part of speech is present.
func (g *GrammaticalInfo) HasAnyForm() bool {
	if g == nil {
		return false
	}
	for _, f := range []*string{
		g.PluralForm,
		g.VerbBase, g.VerbPastSimple, g.VerbPastParticiple,
		g.VerbPresentParticiple, g.VerbThirdPerson,
		g.AdjComparative, g.AdjSuperlative,
	} {
		if f != nil && *f != "" {
			return true
		}
	}
	return len(g.IrregularForms) > 0
}

// LearningMetadata carries difficulty and frequency signals for learners.
type LearningMetadata struct {
	ID     uuid.UUID
	WordID uuid.UUID

	DifficultyLevel *CEFRLevel
	FrequencyRank   *int // 1 is most frequent
	FrequencyBand   *FrequencyBand
	StyleTags       []string
}

// RelatedWord is a directional link from a word to a related target word.
type RelatedWord struct {
	ID         uuid.UUID
	WordID     uuid.UUID
	TargetText string
	Kind       RelationKind
	UsageNote  *string
	Strength   float64 // [0.0, 1.0], higher means closer relationship
}
