package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueWordText returns a valid normalized word text that will not collide
// with other seeded words in the shared database.
func UniqueWordText(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedWord inserts a fully populated word tree: the word row plus one
// definition with two usage examples, a phonetic transcription, grammatical
// info, learning metadata, and two related words.
// Returns the inserted domain.WordRecord.
func SeedWord(t *testing.T, pool *pgxpool.Pool, text string) domain.WordRecord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	usageContext := "general"
	word := domain.WordRecord{
		ID:             uuid.New(),
		Text:           text,
		Language:       "en",
		CreatedAt:      now,
		UpdatedAt:      now,
		LastEnrichedAt: &now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, text, language, created_at, updated_at, last_enriched_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		word.ID, word.Text, word.Language, word.CreatedAt, word.UpdatedAt, word.LastEnrichedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	def := domain.Definition{
		ID:           uuid.New(),
		WordID:       word.ID,
		Text:         "A seeded definition of " + text + " for tests.",
		PartOfSpeech: domain.PartOfSpeechNoun,
		UsageContext: &usageContext,
		OrderIndex:   1,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO definitions (id, word_id, definition_text, part_of_speech, usage_context, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		def.ID, def.WordID, def.Text, string(def.PartOfSpeech), def.UsageContext, def.OrderIndex,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert definition: %v", err)
	}

	exampleTexts := []string{
		"The word " + text + " appears in this casual sentence.",
		"Our report uses " + text + " in a business context.",
	}
	contexts := []domain.ContextType{domain.ContextTypeCasual, domain.ContextTypeBusiness}
	def.Examples = make([]domain.UsageExample, len(exampleTexts))
	for i := range exampleTexts {
		ex := domain.UsageExample{
			ID:           uuid.New(),
			DefinitionID: def.ID,
			Text:         exampleTexts[i],
			ContextType:  contexts[i],
			OrderIndex:   i + 1,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO usage_examples (id, definition_id, example_text, context_type, order_index)
			 VALUES ($1, $2, $3, $4, $5)`,
			ex.ID, ex.DefinitionID, ex.Text, string(ex.ContextType), ex.OrderIndex,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWord insert usage_example[%d]: %v", i, err)
		}
		def.Examples[i] = ex
	}
	word.Definitions = []domain.Definition{def}

	phonetic := domain.PhoneticTranscription{
		ID:     uuid.New(),
		WordID: word.ID,
		IPA:    "/" + text + "/",
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO phonetic_transcriptions (id, word_id, ipa_transcription, audio_url)
		 VALUES ($1, $2, $3, $4)`,
		phonetic.ID, phonetic.WordID, phonetic.IPA, phonetic.AudioURL,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert phonetic_transcription: %v", err)
	}
	word.Phonetic = &phonetic

	plural := text + "s"
	grammar := domain.GrammaticalInfo{
		ID:           uuid.New(),
		WordID:       word.ID,
		PartOfSpeech: domain.PartOfSpeechNoun,
		PluralForm:   &plural,
	}

	irregularJSON, err := json.Marshal(grammar.IrregularForms)
	if err != nil {
		t.Fatalf("testhelper: SeedWord marshal irregular_forms: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO grammatical_info
		     (id, word_id, part_of_speech, plural_form, verb_base, verb_past_simple,
		      verb_past_participle, verb_present_participle, verb_third_person,
		      adj_comparative, adj_superlative, irregular_forms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		grammar.ID, grammar.WordID, string(grammar.PartOfSpeech), grammar.PluralForm,
		grammar.VerbBase, grammar.VerbPastSimple, grammar.VerbPastParticiple,
		grammar.VerbPresentParticiple, grammar.VerbThirdPerson,
		grammar.AdjComparative, grammar.AdjSuperlative, irregularJSON,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert grammatical_info: %v", err)
	}
	word.Grammar = &grammar

	level := domain.CEFRLevelB1
	rank := 3000
	band := domain.BandForRank(rank)
	learning := domain.LearningMetadata{
		ID:              uuid.New(),
		WordID:          word.ID,
		DifficultyLevel: &level,
		FrequencyRank:   &rank,
		FrequencyBand:   &band,
		StyleTags:       []string{"common"},
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO learning_metadata (id, word_id, difficulty_level, frequency_rank, frequency_band, style_tags)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		learning.ID, learning.WordID, (*string)(learning.DifficultyLevel), learning.FrequencyRank,
		(*string)(learning.FrequencyBand), learning.StyleTags,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert learning_metadata: %v", err)
	}
	word.Learning = &learning

	note := "Seeded usage note."
	related := []domain.RelatedWord{
		{ID: uuid.New(), WordID: word.ID, TargetText: "alpha-" + uniqueSuffix(), Kind: domain.RelationKindSynonym, UsageNote: &note, Strength: 1.0},
		{ID: uuid.New(), WordID: word.ID, TargetText: "beta-" + uniqueSuffix(), Kind: domain.RelationKindAntonym, Strength: 0.8},
	}
	for i, rel := range related {
		_, err := pool.Exec(ctx,
			`INSERT INTO related_words (id, word_id, target_text, relation_kind, usage_note, strength)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			rel.ID, rel.WordID, rel.TargetText, string(rel.Kind), rel.UsageNote, rel.Strength,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWord insert related_word[%d]: %v", i, err)
		}
	}
	word.RelatedWords = related

	return word
}
