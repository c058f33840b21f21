package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/service/lookup"
)

// lookupService defines the minimal interface for word lookups.
type lookupService interface {
	Lookup(ctx context.Context, word string) (*lookup.Result, error)
}

// WordsHandler serves the word lookup endpoint.
type WordsHandler struct {
	log     *slog.Logger
	lookups lookupService
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(logger *slog.Logger, lookups lookupService) *WordsHandler {
	return &WordsHandler{
		log:     logger.With("handler", "words"),
		lookups: lookups,
	}
}

// Lookup handles GET /api/v1/words/{word}. The X-Cache-Status header
// reports HIT or MISS; include_examples and include_related query
// parameters (default true) trim the response body.
func (h *WordsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	includeExamples := boolQuery(r, "include_examples", true)
	includeRelated := boolQuery(r, "include_related", true)

	result, err := h.lookups.Lookup(r.Context(), word)
	if err != nil {
		h.writeError(w, r, word, err)
		return
	}

	w.Header().Set("X-Cache-Status", string(result.CacheStatus))
	writeJSON(w, http.StatusOK, newWordResponse(result, includeExamples, includeRelated))
}

func (h *WordsHandler) writeError(w http.ResponseWriter, r *http.Request, word string, err error) {
	var notFound *lookup.NotFoundError
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			ErrorCode: CodeInvalidWordFormat,
			Message:   "word must contain only letters, optionally separated by single hyphens",
		})
	case errors.As(err, &notFound):
		suggestions := notFound.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		writeJSON(w, http.StatusNotFound, WordNotFoundResponse{
			ErrorCode:   CodeWordNotFound,
			Message:     fmt.Sprintf("the word %q was not found", notFound.Word),
			Word:        notFound.Word,
			Suggestions: suggestions,
		})
	case errors.Is(err, domain.ErrLockTimeout):
		w.Header().Set("Retry-After", "2")
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			ErrorCode: CodeLookupInProgress,
			Message:   "the word is being looked up by another request, retry shortly",
		})
	default:
		h.log.ErrorContext(r.Context(), "lookup failed", "word", word, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			ErrorCode: CodeInternalError,
			Message:   "internal server error",
		})
	}
}

// boolQuery parses a boolean query parameter, falling back to def when
// the parameter is absent or malformed.
func boolQuery(r *http.Request, name string, def bool) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
