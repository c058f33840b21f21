package cmudict

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

	a, err := NewAdapter(filepath.Join("testdata", "sample.dict"), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return a
}

func TestAdapter_Fetch(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	data, err := a.Fetch(context.Background(), "cat")
	require.NoError(t, err)
	require.NotNil(t, data.Phonetic)
	assert.Equal(t, "/kˈæt/", data.Phonetic.IPA)
	assert.True(t, data.Recognized)
}

func TestAdapter_Fetch_PrimaryVariantWins(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	data, err := a.Fetch(context.Background(), "house")
	require.NoError(t, err)
	require.NotNil(t, data.Phonetic)
	assert.Equal(t, "/hˈaʊs/", data.Phonetic.IPA)
}

func TestAdapter_Fetch_NotFound(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	_, err := a.Fetch(context.Background(), "zzyzx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdapter_SupportsField(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)

	assert.True(t, a.SupportsField(domain.FieldPhoneticTranscription))
	assert.False(t, a.SupportsField(domain.FieldDefinitions))
	assert.False(t, a.SupportsField(domain.FieldRelatedWords))
}
