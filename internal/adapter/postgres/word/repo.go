// Package word implements the word record repository using PostgreSQL.
// A word record is stored as a small tree (word row plus child tables);
// reads assemble the tree, writes replace it atomically.
package word

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grimoire-app/grimoire-backend/internal/adapter/postgres"
	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// qb builds queries with $N placeholders for PostgreSQL.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides word record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new word repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ---------------------------------------------------------------------------
// Raw SQL for tree reads
// ---------------------------------------------------------------------------

const findWordSQL = `
SELECT id, text, language, created_at, updated_at, last_enriched_at
FROM words
WHERE text = $1`

const findDefinitionsSQL = `
SELECT id, word_id, definition_text, part_of_speech, usage_context, order_index
FROM definitions
WHERE word_id = $1
ORDER BY order_index`

const findExamplesSQL = `
SELECT e.id, e.definition_id, e.example_text, e.context_type, e.order_index
FROM usage_examples e
JOIN definitions d ON d.id = e.definition_id
WHERE d.word_id = $1
ORDER BY e.definition_id, e.order_index`

const findPhoneticSQL = `
SELECT id, word_id, ipa_transcription, audio_url
FROM phonetic_transcriptions
WHERE word_id = $1`

const findGrammarSQL = `
SELECT id, word_id, part_of_speech, plural_form,
       verb_base, verb_past_simple, verb_past_participle,
       verb_present_participle, verb_third_person,
       adj_comparative, adj_superlative, irregular_forms
FROM grammatical_info
WHERE word_id = $1`

const findLearningSQL = `
SELECT id, word_id, difficulty_level, frequency_rank, frequency_band, style_tags
FROM learning_metadata
WHERE word_id = $1`

const findRelatedSQL = `
SELECT id, word_id, target_text, relation_kind, usage_note, strength
FROM related_words
WHERE word_id = $1
ORDER BY strength DESC, target_text`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByText loads the full word record tree by its normalized text.
// Returns domain.ErrNotFound if no word row exists.
func (r *Repo) FindByText(ctx context.Context, text string) (*domain.WordRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var record domain.WordRecord
	err := querier.QueryRow(ctx, findWordSQL, text).Scan(
		&record.ID, &record.Text, &record.Language,
		&record.CreatedAt, &record.UpdatedAt, &record.LastEnrichedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "word", text)
	}

	if record.Definitions, err = r.loadDefinitions(ctx, querier, record.ID); err != nil {
		return nil, postgres.MapError(err, "word", text)
	}
	if record.Phonetic, err = r.loadPhonetic(ctx, querier, record.ID); err != nil {
		return nil, postgres.MapError(err, "word", text)
	}
	if record.Grammar, err = r.loadGrammar(ctx, querier, record.ID); err != nil {
		return nil, postgres.MapError(err, "word", text)
	}
	if record.Learning, err = r.loadLearning(ctx, querier, record.ID); err != nil {
		return nil, postgres.MapError(err, "word", text)
	}
	if record.RelatedWords, err = r.loadRelated(ctx, querier, record.ID); err != nil {
		return nil, postgres.MapError(err, "word", text)
	}

	return &record, nil
}

// ListTexts returns the texts of all stored words in alphabetical order.
// Feeds the spelling suggestion vocabulary on startup.
func (r *Repo) ListTexts(ctx context.Context) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("text").From("words").OrderBy("text").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list texts query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list word texts: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan word text: %w", err)
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word texts: %w", err)
	}

	return texts, nil
}

func (r *Repo) loadDefinitions(ctx context.Context, querier postgres.Querier, wordID uuid.UUID) ([]domain.Definition, error) {
	rows, err := querier.Query(ctx, findDefinitionsSQL, wordID)
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	defer rows.Close()

	var definitions []domain.Definition
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			def domain.Definition
			pos string
		)
		if err := rows.Scan(&def.ID, &def.WordID, &def.Text, &pos, &def.UsageContext, &def.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan definition: %w", err)
		}
		def.PartOfSpeech = domain.PartOfSpeech(pos)
		byID[def.ID] = len(definitions)
		definitions = append(definitions, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}

	if len(definitions) == 0 {
		return nil, nil
	}

	exRows, err := querier.Query(ctx, findExamplesSQL, wordID)
	if err != nil {
		return nil, fmt.Errorf("load usage examples: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var (
			ex      domain.UsageExample
			context string
		)
		if err := exRows.Scan(&ex.ID, &ex.DefinitionID, &ex.Text, &context, &ex.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan usage example: %w", err)
		}
		ex.ContextType = domain.ContextType(context)
		if i, ok := byID[ex.DefinitionID]; ok {
			definitions[i].Examples = append(definitions[i].Examples, ex)
		}
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("load usage examples: %w", err)
	}

	return definitions, nil
}

func (r *Repo) loadPhonetic(ctx context.Context, querier postgres.Querier, wordID uuid.UUID) (*domain.PhoneticTranscription, error) {
	var p domain.PhoneticTranscription
	err := querier.QueryRow(ctx, findPhoneticSQL, wordID).Scan(&p.ID, &p.WordID, &p.IPA, &p.AudioURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load phonetic transcription: %w", err)
	}
	return &p, nil
}

func (r *Repo) loadGrammar(ctx context.Context, querier postgres.Querier, wordID uuid.UUID) (*domain.GrammaticalInfo, error) {
	var (
		g             domain.GrammaticalInfo
		pos           string
		irregularJSON []byte
	)
	err := querier.QueryRow(ctx, findGrammarSQL, wordID).Scan(
		&g.ID, &g.WordID, &pos, &g.PluralForm,
		&g.VerbBase, &g.VerbPastSimple, &g.VerbPastParticiple,
		&g.VerbPresentParticiple, &g.VerbThirdPerson,
		&g.AdjComparative, &g.AdjSuperlative, &irregularJSON,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load grammatical info: %w", err)
	}

	g.PartOfSpeech = domain.PartOfSpeech(pos)
	if len(irregularJSON) > 0 {
		if err := json.Unmarshal(irregularJSON, &g.IrregularForms); err != nil {
			return nil, fmt.Errorf("decode irregular_forms: %w", err)
		}
	}

	return &g, nil
}

func (r *Repo) loadLearning(ctx context.Context, querier postgres.Querier, wordID uuid.UUID) (*domain.LearningMetadata, error) {
	var (
		m     domain.LearningMetadata
		level *string
		band  *string
	)
	err := querier.QueryRow(ctx, findLearningSQL, wordID).Scan(
		&m.ID, &m.WordID, &level, &m.FrequencyRank, &band, &m.StyleTags,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load learning metadata: %w", err)
	}

	if level != nil {
		l := domain.CEFRLevel(*level)
		m.DifficultyLevel = &l
	}
	if band != nil {
		b := domain.FrequencyBand(*band)
		m.FrequencyBand = &b
	}

	return &m, nil
}

func (r *Repo) loadRelated(ctx context.Context, querier postgres.Querier, wordID uuid.UUID) ([]domain.RelatedWord, error) {
	rows, err := querier.Query(ctx, findRelatedSQL, wordID)
	if err != nil {
		return nil, fmt.Errorf("load related words: %w", err)
	}
	defer rows.Close()

	var related []domain.RelatedWord
	for rows.Next() {
		var (
			rel  domain.RelatedWord
			kind string
		)
		if err := rows.Scan(&rel.ID, &rel.WordID, &rel.TargetText, &kind, &rel.UsageNote, &rel.Strength); err != nil {
			return nil, fmt.Errorf("scan related word: %w", err)
		}
		rel.Kind = domain.RelationKind(kind)
		related = append(related, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load related words: %w", err)
	}

	return related, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const upsertWordSQL = `
INSERT INTO words (id, text, language, created_at, updated_at, last_enriched_at)
VALUES ($1, $2, $3, $4, $4, $5)
ON CONFLICT (text) DO UPDATE
SET updated_at = EXCLUDED.updated_at,
    last_enriched_at = EXCLUDED.last_enriched_at
RETURNING id, created_at, updated_at`

// childTables are wiped before re-inserting the tree. usage_examples
// cascades from definitions.
var childTables = []string{
	"definitions",
	"phonetic_transcriptions",
	"grammatical_info",
	"learning_metadata",
	"related_words",
}

// CreateOrReplace stores the full word record tree in one transaction.
// An existing record with the same text keeps its identity and created_at;
// all sub-entities are replaced, never patched. Returns the stored record
// with generated IDs filled in.
func (r *Repo) CreateOrReplace(ctx context.Context, record *domain.WordRecord) (*domain.WordRecord, error) {
	stored := *record

	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)

		now := time.Now().UTC().Truncate(time.Microsecond)
		language := record.Language
		if language == "" {
			language = "en"
		}
		stored.Language = language

		err := querier.QueryRow(txCtx, upsertWordSQL,
			uuid.New(), record.Text, language, now, record.LastEnrichedAt,
		).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
		if err != nil {
			return fmt.Errorf("upsert word: %w", err)
		}

		for _, table := range childTables {
			if _, err := querier.Exec(txCtx, fmt.Sprintf("DELETE FROM %s WHERE word_id = $1", table), stored.ID); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if err := r.insertDefinitions(txCtx, querier, stored.ID, record.Definitions, &stored); err != nil {
			return err
		}
		if err := r.insertPhonetic(txCtx, querier, stored.ID, record.Phonetic, &stored); err != nil {
			return err
		}
		if err := r.insertGrammar(txCtx, querier, stored.ID, record.Grammar, &stored); err != nil {
			return err
		}
		if err := r.insertLearning(txCtx, querier, stored.ID, record.Learning, &stored); err != nil {
			return err
		}
		if err := r.insertRelated(txCtx, querier, stored.ID, record.RelatedWords, &stored); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "word", record.Text)
	}

	return &stored, nil
}

func (r *Repo) insertDefinitions(ctx context.Context, querier postgres.Querier, wordID uuid.UUID, definitions []domain.Definition, stored *domain.WordRecord) error {
	stored.Definitions = nil
	if len(definitions) == 0 {
		return nil
	}

	defBuilder := qb.Insert("definitions").
		Columns("id", "word_id", "definition_text", "part_of_speech", "usage_context", "order_index")
	exBuilder := qb.Insert("usage_examples").
		Columns("id", "definition_id", "example_text", "context_type", "order_index")
	hasExamples := false

	stored.Definitions = make([]domain.Definition, len(definitions))
	for i, def := range definitions {
		def.ID = uuid.New()
		def.WordID = wordID
		defBuilder = defBuilder.Values(def.ID, def.WordID, def.Text, string(def.PartOfSpeech), def.UsageContext, def.OrderIndex)

		examples := make([]domain.UsageExample, len(def.Examples))
		for j, ex := range def.Examples {
			ex.ID = uuid.New()
			ex.DefinitionID = def.ID
			exBuilder = exBuilder.Values(ex.ID, ex.DefinitionID, ex.Text, string(ex.ContextType), ex.OrderIndex)
			hasExamples = true
			examples[j] = ex
		}
		def.Examples = examples
		stored.Definitions[i] = def
	}

	query, args, err := defBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("build definitions insert: %w", err)
	}
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert definitions: %w", err)
	}

	if hasExamples {
		query, args, err := exBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("build usage examples insert: %w", err)
		}
		if _, err := querier.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert usage examples: %w", err)
		}
	}

	return nil
}

func (r *Repo) insertPhonetic(ctx context.Context, querier postgres.Querier, wordID uuid.UUID, phonetic *domain.PhoneticTranscription, stored *domain.WordRecord) error {
	stored.Phonetic = nil
	if phonetic == nil {
		return nil
	}

	p := *phonetic
	p.ID = uuid.New()
	p.WordID = wordID

	query, args, err := qb.Insert("phonetic_transcriptions").
		Columns("id", "word_id", "ipa_transcription", "audio_url").
		Values(p.ID, p.WordID, p.IPA, p.AudioURL).
		ToSql()
	if err != nil {
		return fmt.Errorf("build phonetic insert: %w", err)
	}
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert phonetic transcription: %w", err)
	}

	stored.Phonetic = &p
	return nil
}

func (r *Repo) insertGrammar(ctx context.Context, querier postgres.Querier, wordID uuid.UUID, grammar *domain.GrammaticalInfo, stored *domain.WordRecord) error {
	stored.Grammar = nil
	if grammar == nil {
		return nil
	}

	g := *grammar
	g.ID = uuid.New()
	g.WordID = wordID

	irregularJSON, err := json.Marshal(g.IrregularForms)
	if err != nil {
		return fmt.Errorf("encode irregular_forms: %w", err)
	}

	query, args, err := qb.Insert("grammatical_info").
		Columns("id", "word_id", "part_of_speech", "plural_form",
			"verb_base", "verb_past_simple", "verb_past_participle",
			"verb_present_participle", "verb_third_person",
			"adj_comparative", "adj_superlative", "irregular_forms").
		Values(g.ID, g.WordID, string(g.PartOfSpeech), g.PluralForm,
			g.VerbBase, g.VerbPastSimple, g.VerbPastParticiple,
			g.VerbPresentParticiple, g.VerbThirdPerson,
			g.AdjComparative, g.AdjSuperlative, irregularJSON).
		ToSql()
	if err != nil {
		return fmt.Errorf("build grammar insert: %w", err)
	}
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert grammatical info: %w", err)
	}

	stored.Grammar = &g
	return nil
}

func (r *Repo) insertLearning(ctx context.Context, querier postgres.Querier, wordID uuid.UUID, learning *domain.LearningMetadata, stored *domain.WordRecord) error {
	stored.Learning = nil
	if learning == nil {
		return nil
	}

	m := *learning
	m.ID = uuid.New()
	m.WordID = wordID
	if m.StyleTags == nil {
		m.StyleTags = []string{}
	}

	query, args, err := qb.Insert("learning_metadata").
		Columns("id", "word_id", "difficulty_level", "frequency_rank", "frequency_band", "style_tags").
		Values(m.ID, m.WordID, (*string)(m.DifficultyLevel), m.FrequencyRank, (*string)(m.FrequencyBand), m.StyleTags).
		ToSql()
	if err != nil {
		return fmt.Errorf("build learning insert: %w", err)
	}
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert learning metadata: %w", err)
	}

	stored.Learning = &m
	return nil
}

func (r *Repo) insertRelated(ctx context.Context, querier postgres.Querier, wordID uuid.UUID, related []domain.RelatedWord, stored *domain.WordRecord) error {
	stored.RelatedWords = nil
	if len(related) == 0 {
		return nil
	}

	builder := qb.Insert("related_words").
		Columns("id", "word_id", "target_text", "relation_kind", "usage_note", "strength")

	stored.RelatedWords = make([]domain.RelatedWord, len(related))
	for i, rel := range related {
		rel.ID = uuid.New()
		rel.WordID = wordID
		builder = builder.Values(rel.ID, rel.WordID, rel.TargetText, string(rel.Kind), rel.UsageNote, rel.Strength)
		stored.RelatedWords[i] = rel
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build related words insert: %w", err)
	}
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert related words: %w", err)
	}

	return nil
}
