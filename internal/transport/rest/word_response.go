package rest

import (
	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/service/lookup"
)

// WordResponse is the JSON projection of an enriched word record.
type WordResponse struct {
	Word             string                    `json:"word"`
	Language         string                    `json:"language"`
	Phonetic         *PhoneticResponse         `json:"phonetic,omitempty"`
	Definitions      []DefinitionResponse      `json:"definitions"`
	GrammaticalInfo  *GrammaticalInfoResponse  `json:"grammatical_info,omitempty"`
	LearningMetadata *LearningMetadataResponse `json:"learning_metadata,omitempty"`
	RelatedWords     []RelatedWordResponse     `json:"related_words,omitempty"`
	DataCompleteness domain.DataCompleteness   `json:"data_completeness"`
}

type PhoneticResponse struct {
	IPA      string  `json:"ipa"`
	AudioURL *string `json:"audio_url,omitempty"`
}

type DefinitionResponse struct {
	Definition   string                 `json:"definition"`
	PartOfSpeech string                 `json:"part_of_speech"`
	UsageContext *string                `json:"usage_context,omitempty"`
	Examples     []UsageExampleResponse `json:"examples"`
}

type UsageExampleResponse struct {
	ExampleText string `json:"example_text"`
	ContextType string `json:"context_type,omitempty"`
}

type GrammaticalInfoResponse struct {
	PartOfSpeech   string                          `json:"part_of_speech"`
	PluralForm     *string                         `json:"plural_form,omitempty"`
	VerbForms      *VerbFormsResponse              `json:"verb_forms,omitempty"`
	AdjectiveForms *AdjectiveFormsResponse         `json:"adjective_forms,omitempty"`
	IrregularForms map[string]domain.IrregularForm `json:"irregular_forms,omitempty"`
}

type VerbFormsResponse struct {
	Base              *string `json:"base,omitempty"`
	PastSimple        *string `json:"past_simple,omitempty"`
	PastParticiple    *string `json:"past_participle,omitempty"`
	PresentParticiple *string `json:"present_participle,omitempty"`
	ThirdPerson       *string `json:"third_person,omitempty"`
}

type AdjectiveFormsResponse struct {
	Comparative *string `json:"comparative,omitempty"`
	Superlative *string `json:"superlative,omitempty"`
}

type LearningMetadataResponse struct {
	DifficultyLevel *string  `json:"difficulty_level,omitempty"`
	FrequencyRank   *int     `json:"frequency_rank,omitempty"`
	FrequencyBand   *string  `json:"frequency_band,omitempty"`
	StyleTags       []string `json:"style_tags"`
}

type RelatedWordResponse struct {
	Word         string  `json:"word"`
	Relationship string  `json:"relationship"`
	UsageNote    *string `json:"usage_note,omitempty"`
	Strength     float64 `json:"strength"`
}

// newWordResponse projects a lookup result onto the response schema.
// Examples and related words are omitted when the caller opted out.
func newWordResponse(result *lookup.Result, includeExamples, includeRelated bool) WordResponse {
	rec := result.Record

	resp := WordResponse{
		Word:             rec.Text,
		Language:         rec.Language,
		Definitions:      make([]DefinitionResponse, 0, len(rec.Definitions)),
		DataCompleteness: result.Completeness,
	}

	if rec.Phonetic != nil {
		resp.Phonetic = &PhoneticResponse{
			IPA:      rec.Phonetic.IPA,
			AudioURL: rec.Phonetic.AudioURL,
		}
	}

	for i := range rec.Definitions {
		def := &rec.Definitions[i]
		dr := DefinitionResponse{
			Definition:   def.Text,
			PartOfSpeech: def.PartOfSpeech.String(),
			UsageContext: def.UsageContext,
			Examples:     []UsageExampleResponse{},
		}
		if includeExamples {
			for _, ex := range def.Examples {
				dr.Examples = append(dr.Examples, UsageExampleResponse{
					ExampleText: ex.Text,
					ContextType: ex.ContextType.String(),
				})
			}
		}
		resp.Definitions = append(resp.Definitions, dr)
	}

	if g := rec.Grammar; g != nil {
		gr := &GrammaticalInfoResponse{
			PartOfSpeech:   g.PartOfSpeech.String(),
			PluralForm:     g.PluralForm,
			IrregularForms: g.IrregularForms,
		}
		if g.VerbBase != nil || g.VerbPastSimple != nil || g.VerbPastParticiple != nil ||
			g.VerbPresentParticiple != nil || g.VerbThirdPerson != nil {
			gr.VerbForms = &VerbFormsResponse{
				Base:              g.VerbBase,
				PastSimple:        g.VerbPastSimple,
				PastParticiple:    g.VerbPastParticiple,
				PresentParticiple: g.VerbPresentParticiple,
				ThirdPerson:       g.VerbThirdPerson,
			}
		}
		if g.AdjComparative != nil || g.AdjSuperlative != nil {
			gr.AdjectiveForms = &AdjectiveFormsResponse{
				Comparative: g.AdjComparative,
				Superlative: g.AdjSuperlative,
			}
		}
		resp.GrammaticalInfo = gr
	}

	if l := rec.Learning; l != nil {
		lr := &LearningMetadataResponse{
			FrequencyRank: l.FrequencyRank,
			StyleTags:     l.StyleTags,
		}
		if lr.StyleTags == nil {
			lr.StyleTags = []string{}
		}
		if l.DifficultyLevel != nil {
			level := l.DifficultyLevel.String()
			lr.DifficultyLevel = &level
		}
		if l.FrequencyBand != nil {
			band := l.FrequencyBand.String()
			lr.FrequencyBand = &band
		}
		resp.LearningMetadata = lr
	}

	if includeRelated {
		for _, rel := range rec.RelatedWords {
			resp.RelatedWords = append(resp.RelatedWords, RelatedWordResponse{
				Word:         rel.TargetText,
				Relationship: rel.Kind.String(),
				UsageNote:    rel.UsageNote,
				Strength:     rel.Strength,
			})
		}
	}

	return resp
}
