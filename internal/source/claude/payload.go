package claude

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Wire types for the model's JSON output.

type payload struct {
	Recognized      *bool                `json:"recognized"`
	Phonetic        *phoneticPayload     `json:"phonetic"`
	Definitions     []definitionPayload  `json:"definitions"`
	GrammaticalInfo *grammarPayload      `json:"grammatical_info"`
	RelatedWords    []relatedWordPayload `json:"related_words"`
	Learning        *learningPayload     `json:"learning_metadata"`
}

type phoneticPayload struct {
	IPATranscription string  `json:"ipa_transcription"`
	AudioURL         *string `json:"audio_url"`
}

type definitionPayload struct {
	DefinitionText string           `json:"definition_text"`
	PartOfSpeech   string           `json:"part_of_speech"`
	UsageContext   *string          `json:"usage_context"`
	Examples       []examplePayload `json:"examples"`
}

type examplePayload struct {
	ExampleText string `json:"example_text"`
	ContextType string `json:"context_type"`
}

type grammarPayload struct {
	PartOfSpeech          string  `json:"part_of_speech"`
	PluralForm            *string `json:"plural_form"`
	VerbBase              *string `json:"verb_base"`
	VerbPastSimple        *string `json:"verb_past_simple"`
	VerbPastParticiple    *string `json:"verb_past_participle"`
	VerbPresentParticiple *string `json:"verb_present_participle"`
	VerbThirdPerson       *string `json:"verb_third_person"`
	AdjComparative        *string `json:"adj_comparative"`
	AdjSuperlative        *string `json:"adj_superlative"`
}

type relatedWordPayload struct {
	Word             string  `json:"word"`
	RelationshipType string  `json:"relationship_type"`
	UsageNotes       *string `json:"usage_notes"`
}

type learningPayload struct {
	CEFRLevel *string  `json:"cefr_level"`
	StyleTags []string `json:"style_tags"`
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// decodePayload parses the model's reply. Models wrap JSON in prose or
// emit slightly broken JSON often enough that a repair pass is worth
// having before giving up.
func decodePayload(responseText string) (*payload, error) {
	jsonStr, err := extractJSON(responseText)
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal([]byte(jsonStr), &p); err == nil {
		return &p, nil
	}

	repaired, err := jsonrepair.JSONRepair(jsonStr)
	if err != nil {
		return nil, fmt.Errorf("json repair failed: %w", err)
	}

	if err := json.Unmarshal([]byte(repaired), &p); err != nil {
		return nil, fmt.Errorf("unmarshal after repair: %w", err)
	}

	return &p, nil
}
