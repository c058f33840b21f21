package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	word := SeedWord(t, pool, UniqueWordText("smoke"))

	// Verify the word exists in DB via SELECT.
	var text string
	err := pool.QueryRow(
		context.Background(),
		`SELECT text FROM words WHERE id = $1`,
		word.ID,
	).Scan(&text)
	if err != nil {
		t.Fatalf("expected word in DB, got error: %v", err)
	}

	if text != word.Text {
		t.Fatalf("expected text %q, got %q", word.Text, text)
	}
}
