package wordnet

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	a, err := NewAdapter(filepath.Join("testdata", "sample.json"), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return a
}

func relationsOfKind(relations []domain.RelatedWord, kind domain.RelationKind) []domain.RelatedWord {
	var out []domain.RelatedWord
	for _, r := range relations {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func TestAdapter_Fetch_SynonymsAntonymsDerivatives(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	data, err := a.Fetch(context.Background(), "happy")
	require.NoError(t, err)

	synonyms := relationsOfKind(data.Relations, domain.RelationKindSynonym)
	require.Len(t, synonyms, 1)
	assert.Equal(t, "glad", synonyms[0].TargetText)
	assert.Nil(t, synonyms[0].UsageNote)

	antonyms := relationsOfKind(data.Relations, domain.RelationKindAntonym)
	require.Len(t, antonyms, 1)
	assert.Equal(t, "sad", antonyms[0].TargetText)

	derivatives := relationsOfKind(data.Relations, domain.RelationKindDerivative)
	require.Len(t, derivatives, 1)
	assert.Equal(t, "happiness", derivatives[0].TargetText)
	require.NotNil(t, derivatives[0].UsageNote)
	assert.Equal(t, "Derived from the same root as happy", *derivatives[0].UsageNote)
}

func TestAdapter_Fetch_HypernymsHyponymsAlsoSee(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	data, err := a.Fetch(context.Background(), "cat")
	require.NoError(t, err)

	hypernyms := relationsOfKind(data.Relations, domain.RelationKindHypernym)
	require.Len(t, hypernyms, 1)
	assert.Equal(t, "animal", hypernyms[0].TargetText)
	require.NotNil(t, hypernyms[0].UsageNote)
	assert.Equal(t, "A more general term for cat", *hypernyms[0].UsageNote)

	hyponyms := relationsOfKind(data.Relations, domain.RelationKindHyponym)
	require.Len(t, hyponyms, 1)
	assert.Equal(t, "kitten", hyponyms[0].TargetText)
	require.NotNil(t, hyponyms[0].UsageNote)
	assert.Equal(t, "A more specific type of cat", *hyponyms[0].UsageNote)

	related := relationsOfKind(data.Relations, domain.RelationKindRelated)
	require.Len(t, related, 1)
	assert.Equal(t, "big cat", related[0].TargetText)
	require.NotNil(t, related[0].UsageNote)
	assert.Equal(t, "Related concept to cat", *related[0].UsageNote)
}

func TestAdapter_Fetch_NotFound(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	_, err := a.Fetch(context.Background(), "zzyzx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdapter_Fetch_NoSelfReferences(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	for _, word := range []string{"happy", "cat", "kitten", "glad"} {
		data, err := a.Fetch(context.Background(), word)
		require.NoError(t, err)
		for _, rel := range data.Relations {
			assert.NotEqual(t, word, rel.TargetText, "self-reference in relations of %q", word)
		}
	}
}

func TestAdapter_SupportsField(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	assert.True(t, a.SupportsField(domain.FieldRelatedWords))
	assert.False(t, a.SupportsField(domain.FieldDefinitions))
	assert.False(t, a.SupportsField(domain.FieldPhoneticTranscription))
}
