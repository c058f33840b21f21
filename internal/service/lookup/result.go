package lookup

import (
	"fmt"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// CacheStatus says whether a lookup was served from the cache. Exposed
// to clients via the X-Cache-Status response header.
type CacheStatus string

const (
	CacheStatusHit  CacheStatus = "HIT"
	CacheStatusMiss CacheStatus = "MISS"
)

// Result is a resolved lookup: the record, its completeness summary and
// where it came from.
type Result struct {
	Record       *domain.WordRecord
	Completeness domain.DataCompleteness
	CacheStatus  CacheStatus
}

// NotFoundError means the word could not be enriched by any source.
// Carries up to three spelling suggestions for the response payload.
type NotFoundError struct {
	Word        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("word %q not found", e.Word)
}

func (e *NotFoundError) Unwrap() error { return domain.ErrWordNotRecognized }
