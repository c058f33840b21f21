package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grimoire-app/grimoire-backend/internal/adapter/postgres"
	"github.com/grimoire-app/grimoire-backend/internal/adapter/postgres/testhelper"
)

// wordExists checks whether a word row with the given ID exists in the database.
func wordExists(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM words WHERE id = $1)`,
		wordID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("wordExists query: %v", err)
	}
	return exists
}

func insertWord(ctx context.Context, q postgres.Querier, wordID uuid.UUID, text string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO words (id, text, language, created_at, updated_at)
		 VALUES ($1, $2, 'en', now(), now())`,
		wordID, text,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	wordID := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		return insertWord(ctx, q, wordID, testhelper.UniqueWordText("commit"))
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !wordExists(t, pool, wordID) {
		t.Error("word should exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	wordID := uuid.New()
	wantErr := errors.New("intentional failure")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if err := insertWord(ctx, q, wordID, testhelper.UniqueWordText("rollback")); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("RunInTx error = %v, want %v", err, wantErr)
	}

	if wordExists(t, pool, wordID) {
		t.Error("word should not exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	wordID := uuid.New()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("RunInTx should re-panic")
			}
		}()

		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			q := postgres.QuerierFromCtx(ctx, pool)
			if err := insertWord(ctx, q, wordID, testhelper.UniqueWordText("panic")); err != nil {
				return err
			}
			panic("boom")
		})
	}()

	if wordExists(t, pool, wordID) {
		t.Error("word should not exist after panicked transaction")
	}
}

func TestQuerierFromCtx_NoTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	q := postgres.QuerierFromCtx(context.Background(), pool)
	if q != postgres.Querier(pool) {
		t.Error("QuerierFromCtx without tx should return the pool")
	}
}
