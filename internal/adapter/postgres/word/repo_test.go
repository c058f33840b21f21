package word_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grimoire-app/grimoire-backend/internal/adapter/postgres"
	"github.com/grimoire-app/grimoire-backend/internal/adapter/postgres/testhelper"
	"github.com/grimoire-app/grimoire-backend/internal/adapter/postgres/word"
	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*word.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return word.New(pool, postgres.NewTxManager(pool)), pool
}

func strPtr(s string) *string { return &s }

// buildRecord creates a fully populated domain.WordRecord without IDs,
// the shape the enrichment service hands to the repository.
func buildRecord(text string) *domain.WordRecord {
	now := time.Now().UTC().Truncate(time.Microsecond)
	level := domain.CEFRLevelB2
	rank := 4200
	band := domain.BandForRank(rank)

	return &domain.WordRecord{
		Text:           text,
		Language:       "en",
		LastEnrichedAt: &now,
		Definitions: []domain.Definition{
			{
				Text:         "First definition of " + text + ".",
				PartOfSpeech: domain.PartOfSpeechNoun,
				UsageContext: strPtr("general"),
				OrderIndex:   1,
				Examples: []domain.UsageExample{
					{Text: "A sentence using " + text + " casually.", ContextType: domain.ContextTypeCasual, OrderIndex: 1},
					{Text: "The report mentioned " + text + " twice.", ContextType: domain.ContextTypeBusiness, OrderIndex: 2},
				},
			},
			{
				Text:         "Second definition of " + text + ".",
				PartOfSpeech: domain.PartOfSpeechVerb,
				OrderIndex:   2,
			},
		},
		Phonetic: &domain.PhoneticTranscription{IPA: "/" + text + "/"},
		Grammar: &domain.GrammaticalInfo{
			PartOfSpeech: domain.PartOfSpeechNoun,
			PluralForm:   strPtr(text + "s"),
		},
		Learning: &domain.LearningMetadata{
			DifficultyLevel: &level,
			FrequencyRank:   &rank,
			FrequencyBand:   &band,
			StyleTags:       []string{"common", "neutral"},
		},
		RelatedWords: []domain.RelatedWord{
			{TargetText: "syn-" + text, Kind: domain.RelationKindSynonym, UsageNote: strPtr("A nuance note."), Strength: 1.0},
			{TargetText: "ant-" + text, Kind: domain.RelationKindAntonym, Strength: 0.8},
		},
	}
}

func TestCreateOrReplace_NewWord(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	text := testhelper.UniqueWordText("create")
	stored, err := repo.CreateOrReplace(ctx, buildRecord(text))
	if err != nil {
		t.Fatalf("CreateOrReplace: %v", err)
	}

	if stored.ID == uuid.Nil {
		t.Error("stored word should have a generated ID")
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Error("stored word should have timestamps")
	}
	for i, def := range stored.Definitions {
		if def.ID == uuid.Nil || def.WordID != stored.ID {
			t.Errorf("definition[%d] not linked to word: %+v", i, def)
		}
		for j, ex := range def.Examples {
			if ex.ID == uuid.Nil || ex.DefinitionID != def.ID {
				t.Errorf("example[%d][%d] not linked to definition: %+v", i, j, ex)
			}
		}
	}

	found, err := repo.FindByText(ctx, text)
	if err != nil {
		t.Fatalf("FindByText after create: %v", err)
	}

	if found.Text != text || found.Language != "en" {
		t.Errorf("found word = %q/%q, want %q/en", found.Text, found.Language, text)
	}
	if len(found.Definitions) != 2 {
		t.Fatalf("found %d definitions, want 2", len(found.Definitions))
	}
	if found.Definitions[0].OrderIndex != 1 || found.Definitions[1].OrderIndex != 2 {
		t.Error("definitions should be ordered by order_index")
	}
	if len(found.Definitions[0].Examples) != 2 {
		t.Errorf("found %d examples on first definition, want 2", len(found.Definitions[0].Examples))
	}
	if found.Phonetic == nil || found.Phonetic.IPA != "/"+text+"/" {
		t.Errorf("phonetic not round-tripped: %+v", found.Phonetic)
	}
	if found.Grammar == nil || found.Grammar.PluralForm == nil || *found.Grammar.PluralForm != text+"s" {
		t.Errorf("grammar not round-tripped: %+v", found.Grammar)
	}
	if found.Learning == nil || found.Learning.FrequencyRank == nil || *found.Learning.FrequencyRank != 4200 {
		t.Errorf("learning metadata not round-tripped: %+v", found.Learning)
	}
	if len(found.Learning.StyleTags) != 2 {
		t.Errorf("style tags not round-tripped: %v", found.Learning.StyleTags)
	}
	if len(found.RelatedWords) != 2 {
		t.Fatalf("found %d related words, want 2", len(found.RelatedWords))
	}
	// Ordered by strength descending.
	if found.RelatedWords[0].Kind != domain.RelationKindSynonym {
		t.Errorf("related words not ordered by strength: %+v", found.RelatedWords)
	}
	if found.RelatedWords[0].UsageNote == nil {
		t.Error("usage note not round-tripped")
	}
}

func TestCreateOrReplace_ReplacesTree(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	text := testhelper.UniqueWordText("replace")
	first, err := repo.CreateOrReplace(ctx, buildRecord(text))
	if err != nil {
		t.Fatalf("first CreateOrReplace: %v", err)
	}

	replacement := buildRecord(text)
	replacement.Definitions = replacement.Definitions[:1]
	replacement.RelatedWords = nil
	replacement.Grammar = nil

	second, err := repo.CreateOrReplace(ctx, replacement)
	if err != nil {
		t.Fatalf("second CreateOrReplace: %v", err)
	}

	// Word identity and created_at survive the replacement.
	if second.ID != first.ID {
		t.Errorf("word ID changed on replace: %s -> %s", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at changed on replace: %s -> %s", first.CreatedAt, second.CreatedAt)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Error("updated_at should advance on replace")
	}

	found, err := repo.FindByText(ctx, text)
	if err != nil {
		t.Fatalf("FindByText after replace: %v", err)
	}
	if len(found.Definitions) != 1 {
		t.Errorf("found %d definitions after replace, want 1", len(found.Definitions))
	}
	if found.Grammar != nil {
		t.Error("grammar should be gone after replace without grammar")
	}
	if len(found.RelatedWords) != 0 {
		t.Errorf("found %d related words after replace, want 0", len(found.RelatedWords))
	}

	// Orphaned examples from the old tree must not survive the cascade.
	var orphans int
	err = pool.QueryRow(ctx,
		`SELECT count(*) FROM usage_examples e
		 LEFT JOIN definitions d ON d.id = e.definition_id
		 WHERE d.id IS NULL`,
	).Scan(&orphans)
	if err != nil {
		t.Fatalf("orphan count query: %v", err)
	}
	if orphans != 0 {
		t.Errorf("found %d orphaned usage examples", orphans)
	}
}

func TestCreateOrReplace_MinimalRecord(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	text := testhelper.UniqueWordText("minimal")
	_, err := repo.CreateOrReplace(ctx, &domain.WordRecord{Text: text})
	if err != nil {
		t.Fatalf("CreateOrReplace minimal: %v", err)
	}

	found, err := repo.FindByText(ctx, text)
	if err != nil {
		t.Fatalf("FindByText minimal: %v", err)
	}
	if found.Language != "en" {
		t.Errorf("language = %q, want default en", found.Language)
	}
	if found.Phonetic != nil || found.Grammar != nil || found.Learning != nil {
		t.Error("minimal record should have no sub-entities")
	}
	if len(found.Definitions) != 0 || len(found.RelatedWords) != 0 {
		t.Error("minimal record should have no definitions or relations")
	}
}

func TestFindByText_NotFound(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.FindByText(context.Background(), testhelper.UniqueWordText("missing"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByText(missing) = %v, want ErrNotFound", err)
	}
}

func TestFindByText_SeededWord(t *testing.T) {
	repo, pool := newRepo(t)

	seeded := testhelper.SeedWord(t, pool, testhelper.UniqueWordText("seeded"))

	found, err := repo.FindByText(context.Background(), seeded.Text)
	if err != nil {
		t.Fatalf("FindByText seeded: %v", err)
	}

	if found.ID != seeded.ID {
		t.Errorf("found ID %s, want %s", found.ID, seeded.ID)
	}
	if len(found.Definitions) != 1 || len(found.Definitions[0].Examples) != 2 {
		t.Errorf("seeded tree not loaded: %+v", found.Definitions)
	}
	if found.Phonetic == nil || found.Grammar == nil || found.Learning == nil {
		t.Error("seeded sub-entities not loaded")
	}
	if len(found.RelatedWords) != 2 {
		t.Errorf("found %d related words, want 2", len(found.RelatedWords))
	}
}

func TestListTexts(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	textA := testhelper.UniqueWordText("lista")
	textB := testhelper.UniqueWordText("listb")
	for _, text := range []string{textB, textA} {
		if _, err := repo.CreateOrReplace(ctx, &domain.WordRecord{Text: text}); err != nil {
			t.Fatalf("CreateOrReplace %q: %v", text, err)
		}
	}

	texts, err := repo.ListTexts(ctx)
	if err != nil {
		t.Fatalf("ListTexts: %v", err)
	}

	posA, posB := -1, -1
	for i, text := range texts {
		switch text {
		case textA:
			posA = i
		case textB:
			posB = i
		}
	}
	if posA == -1 || posB == -1 {
		t.Fatalf("ListTexts missing created words: %v %v", posA, posB)
	}
	if posA > posB {
		t.Error("ListTexts should be sorted alphabetically")
	}
}
