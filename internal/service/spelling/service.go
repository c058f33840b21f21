// Package spelling generates "did you mean" suggestions for words the
// enrichment pipeline could not recognize.
package spelling

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Suggestion limits.
const (
	maxDistance    = 2
	maxSuggestions = 3
)

// Service suggests similar words from a reference vocabulary using
// Levenshtein distance. The vocabulary grows as words are successfully
// enriched, so it is guarded for concurrent readers and writers.
type Service struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// NewService builds the service with an initial vocabulary. Words are
// lowercased on the way in.
func NewService(vocabulary []string) *Service {
	words := make(map[string]struct{}, len(vocabulary))
	for _, w := range vocabulary {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			words[w] = struct{}{}
		}
	}
	return &Service{words: words}
}

// AddWord extends the vocabulary, typically after a successful
// enrichment, so later typos of the word get suggestions.
func (s *Service) AddWord(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}

	s.mu.Lock()
	s.words[word] = struct{}{}
	s.mu.Unlock()
}

// Suggest returns up to 3 vocabulary words within edit distance 2 of
// the query, ordered by ascending distance then alphabetically. Exact
// matches are never suggested.
func (s *Service) Suggest(word string) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}

	type scored struct {
		word     string
		distance int
	}

	s.mu.RLock()
	var candidates []scored
	for candidate := range s.words {
		distance := levenshtein.ComputeDistance(word, candidate)
		if distance > 0 && distance <= maxDistance {
			candidates = append(candidates, scored{word: candidate, distance: distance})
		}
	}
	s.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].word < candidates[j].word
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.word)
	}
	return suggestions
}
