package domain

// Completeness field names as they appear in API responses.
const (
	FieldPhoneticTranscription = "phonetic_transcription"
	FieldDefinitions           = "definitions"
	FieldUsageExamples         = "usage_examples"
	FieldGrammaticalForms      = "grammatical_forms"
	FieldRelatedWords          = "related_words"
	FieldDifficultyLevel       = "difficulty_level"
)

// requiredFieldCount is the denominator of the completeness percentage.
// usage_examples is reported as missing but counted inside definitions.
const requiredFieldCount = 5

// DataCompleteness is the explicit accounting of which expected fields
// are present for a record. It is computed fresh on every read and is
// never persisted.
type DataCompleteness struct {
	MissingFields []string `json:"missing_fields"`
	Percentage    int      `json:"completeness_percentage"`
}

// ComputeCompleteness enumerates the canonical required field set and
// reports which are still absent. Absence is never silently dropped:
// every missing field appears by name.
func ComputeCompleteness(rec *WordRecord) DataCompleteness {
	missing := []string{}
	present := 0

	if rec.Phonetic != nil && rec.Phonetic.IPA != "" {
		present++
	} else {
		missing = append(missing, FieldPhoneticTranscription)
	}

	if len(rec.Definitions) > 0 {
		present++
		hasExamples := false
		for i := range rec.Definitions {
			if len(rec.Definitions[i].Examples) > 0 {
				hasExamples = true
				break
			}
		}
		if !hasExamples {
			missing = append(missing, FieldUsageExamples)
		}
	} else {
		missing = append(missing, FieldDefinitions)
	}

	if rec.Grammar.HasAnyForm() {
		present++
	} else {
		missing = append(missing, FieldGrammaticalForms)
	}

	if len(rec.RelatedWords) > 0 {
		present++
	} else {
		missing = append(missing, FieldRelatedWords)
	}

	if rec.Learning != nil && (rec.Learning.DifficultyLevel != nil || rec.Learning.FrequencyRank != nil) {
		present++
	} else {
		missing = append(missing, FieldDifficultyLevel)
	}

	return DataCompleteness{
		MissingFields: missing,
		Percentage:    present * 100 / requiredFieldCount,
	}
}
