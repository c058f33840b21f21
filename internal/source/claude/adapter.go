package claude

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/source"
)

const adapterName = "claude"

// Definition text bounds, in runes. Too-short definitions are dropped,
// too-long ones truncated.
const (
	minDefinitionLen = 10
	maxDefinitionLen = 500
)

// Example text bounds, in runes.
const (
	minExampleLen = 5
	maxExampleLen = 300
)

// Adapter is the AI enrichment source. Malformed items in the model's
// output are dropped one by one, never surfaced to callers.
type Adapter struct {
	completer Completer
	log       *slog.Logger
}

// NewAdapter wraps a Completer as the primary enrichment source.
func NewAdapter(completer Completer, log *slog.Logger) *Adapter {
	return &Adapter{
		completer: completer,
		log:       log.With("adapter", adapterName),
	}
}

func (a *Adapter) Name() string { return adapterName }

func (a *Adapter) SupportsField(field string) bool {
	switch field {
	case domain.FieldDefinitions, domain.FieldUsageExamples,
		domain.FieldPhoneticTranscription, domain.FieldGrammaticalForms,
		domain.FieldRelatedWords, domain.FieldDifficultyLevel:
		return true
	}
	return false
}

// Fetch asks the model for a full entry and validates it field by
// field. API and decoding failures are transient (ErrSourceUnavailable);
// an explicit "not a word" reply comes back with Recognized=false.
func (a *Adapter) Fetch(ctx context.Context, word string) (*source.WordData, error) {
	a.log.Info("requesting enrichment", "word", word)

	responseText, err := a.completer.Complete(ctx, buildPrompt(word))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, adapterName, err)
	}

	p, err := decodePayload(responseText)
	if err != nil {
		a.log.Error("undecodable response", "word", word, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, adapterName, err)
	}

	if p.Recognized != nil && !*p.Recognized {
		a.log.Info("word not recognized by model", "word", word)
		return &source.WordData{Recognized: false}, nil
	}

	data := &source.WordData{Recognized: true}

	if p.Phonetic != nil && strings.TrimSpace(p.Phonetic.IPATranscription) != "" {
		data.Phonetic = &domain.PhoneticTranscription{
			IPA:      strings.TrimSpace(p.Phonetic.IPATranscription),
			AudioURL: p.Phonetic.AudioURL,
		}
	}

	data.Definitions = a.mapDefinitions(word, p.Definitions)
	data.Grammar = mapGrammar(p.GrammaticalInfo)
	data.Relations = mapRelatedWords(p.RelatedWords)

	if p.Learning != nil {
		if p.Learning.CEFRLevel != nil {
			level := domain.CEFRLevel(strings.ToUpper(strings.TrimSpace(*p.Learning.CEFRLevel)))
			if level.IsValid() {
				data.DifficultyLevel = &level
			}
		}
		data.StyleTags = p.Learning.StyleTags
	}

	a.log.Info("enrichment received",
		"word", word,
		"definitions", len(data.Definitions),
		"related_words", len(data.Relations),
	)

	return data, nil
}

// mapDefinitions validates and converts definitions. Offending items
// are dropped rather than failing the whole payload.
func (a *Adapter) mapDefinitions(word string, defs []definitionPayload) []domain.Definition {
	var out []domain.Definition

	for _, def := range defs {
		text := strings.TrimSpace(def.DefinitionText)
		if utf8.RuneCountInString(text) < minDefinitionLen {
			a.log.Warn("dropping too-short definition", "word", word, "text", text)
			continue
		}
		// Cut on runes, a byte slice could split a multibyte character.
		if runes := []rune(text); len(runes) > maxDefinitionLen {
			a.log.Warn("truncating definition", "word", word, "length", len(runes))
			text = string(runes[:maxDefinitionLen])
		}

		pos := domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(def.PartOfSpeech)))
		if !pos.IsValid() {
			if def.PartOfSpeech == "" {
				a.log.Warn("dropping definition without part of speech", "word", word)
				continue
			}
			pos = domain.PartOfSpeechOther
		}

		d := domain.Definition{
			Text:         text,
			PartOfSpeech: pos,
			UsageContext: def.UsageContext,
			OrderIndex:   len(out) + 1,
		}

		for _, ex := range def.Examples {
			exampleText := strings.TrimSpace(ex.ExampleText)
			if !validExample(exampleText, word) {
				a.log.Warn("dropping invalid example", "word", word, "text", exampleText)
				continue
			}

			contextType := domain.ContextType(strings.ToLower(strings.TrimSpace(ex.ContextType)))
			if !contextType.IsValid() {
				contextType = detectContext(exampleText)
			}

			d.Examples = append(d.Examples, domain.UsageExample{
				Text:        exampleText,
				ContextType: contextType,
				OrderIndex:  len(d.Examples) + 1,
			})
		}

		out = append(out, d)
	}

	return out
}

// validExample checks an example sentence: within length bounds,
// literally contains the headword, and looks like a sentence rather
// than a single word.
func validExample(text, word string) bool {
	if n := utf8.RuneCountInString(text); n < minExampleLen || n > maxExampleLen {
		return false
	}
	if !strings.Contains(strings.ToLower(text), strings.ToLower(word)) {
		return false
	}
	return strings.Contains(text, " ")
}

func mapGrammar(g *grammarPayload) *domain.GrammaticalInfo {
	if g == nil {
		return nil
	}

	pos := domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(g.PartOfSpeech)))
	if !pos.IsValid() {
		pos = domain.PartOfSpeechOther
	}

	return &domain.GrammaticalInfo{
		PartOfSpeech:          pos,
		PluralForm:            cleanForm(g.PluralForm),
		VerbBase:              cleanForm(g.VerbBase),
		VerbPastSimple:        cleanForm(g.VerbPastSimple),
		VerbPastParticiple:    cleanForm(g.VerbPastParticiple),
		VerbPresentParticiple: cleanForm(g.VerbPresentParticiple),
		VerbThirdPerson:       cleanForm(g.VerbThirdPerson),
		AdjComparative:        cleanForm(g.AdjComparative),
		AdjSuperlative:        cleanForm(g.AdjSuperlative),
	}
}

// cleanForm trims a form and collapses empty or "null"-ish values to nil.
func cleanForm(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" || strings.EqualFold(trimmed, "null") || strings.EqualFold(trimmed, "n/a") {
		return nil
	}
	return &trimmed
}

func mapRelatedWords(related []relatedWordPayload) []domain.RelatedWord {
	var out []domain.RelatedWord

	for _, rel := range related {
		target := strings.ToLower(strings.TrimSpace(rel.Word))
		if target == "" {
			continue
		}

		kind := domain.RelationKind(strings.ToLower(strings.TrimSpace(rel.RelationshipType)))
		if !kind.IsValid() {
			kind = domain.RelationKindRelated
		}

		var note *string
		if rel.UsageNotes != nil && strings.TrimSpace(*rel.UsageNotes) != "" {
			trimmed := strings.TrimSpace(*rel.UsageNotes)
			note = &trimmed
		}

		out = append(out, domain.RelatedWord{
			TargetText: target,
			Kind:       kind,
			UsageNote:  note,
		})
	}

	return out
}
