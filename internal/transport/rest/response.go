package rest

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// WordNotFoundResponse extends the error envelope with spelling
// suggestions for the misspelled-word case.
type WordNotFoundResponse struct {
	ErrorCode   string   `json:"error_code"`
	Message     string   `json:"message"`
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions"`
}

// Machine-readable error codes.
const (
	CodeInvalidWordFormat = "INVALID_WORD_FORMAT"
	CodeWordNotFound      = "WORD_NOT_FOUND"
	CodeLookupInProgress  = "LOOKUP_IN_PROGRESS"
	CodeInternalError     = "INTERNAL_ERROR"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
