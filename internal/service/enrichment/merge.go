package enrichment

import (
	"sort"
	"strings"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// maxRelatedWords caps the merged related-word list.
const maxRelatedWords = 15

// relationStrength scores a relation. Usage notes and AI provenance
// both raise the score; the result is capped at 1.0.
func relationStrength(kind domain.RelationKind, hasNote, fromAI bool) float64 {
	var base float64
	switch kind {
	case domain.RelationKindSynonym:
		base = 0.9
	case domain.RelationKindAntonym:
		base = 0.8
	case domain.RelationKindDerivative:
		base = 0.7
	case domain.RelationKindHypernym, domain.RelationKindHyponym:
		base = 0.6
	default:
		base = 0.5
	}

	if hasNote {
		base += 0.1
	}
	if fromAI {
		base += 0.05
	}
	if base > 1.0 {
		base = 1.0
	}
	return base
}

type relationKey struct {
	target string
	kind   domain.RelationKind
}

// mergeRelations combines AI and supplementary relations. Duplicates
// of (target, kind) keep the occurrence with a usage note, then the
// higher-strength one. Self-references are dropped. The result is
// sorted by strength descending, then target ascending, and capped
// at 15.
func mergeRelations(word string, aiRelations, supplementaryRelations []domain.RelatedWord) []domain.RelatedWord {
	byKey := make(map[relationKey]domain.RelatedWord)
	var order []relationKey

	add := func(rel domain.RelatedWord, fromAI bool) {
		target := strings.ToLower(strings.TrimSpace(rel.TargetText))
		if target == "" || target == word {
			return
		}
		rel.TargetText = target
		rel.Strength = relationStrength(rel.Kind, rel.UsageNote != nil, fromAI)

		key := relationKey{target: target, kind: rel.Kind}
		existing, seen := byKey[key]
		if !seen {
			byKey[key] = rel
			order = append(order, key)
			return
		}

		if betterRelation(rel, existing) {
			byKey[key] = rel
		}
	}

	for _, rel := range aiRelations {
		add(rel, true)
	}
	for _, rel := range supplementaryRelations {
		add(rel, false)
	}

	merged := make([]domain.RelatedWord, 0, len(order))
	for _, key := range order {
		merged = append(merged, byKey[key])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Strength != merged[j].Strength {
			return merged[i].Strength > merged[j].Strength
		}
		return merged[i].TargetText < merged[j].TargetText
	})

	if len(merged) > maxRelatedWords {
		merged = merged[:maxRelatedWords]
	}
	return merged
}

// betterRelation prefers the candidate with a usage note, then the
// higher strength.
func betterRelation(candidate, existing domain.RelatedWord) bool {
	if (candidate.UsageNote != nil) != (existing.UsageNote != nil) {
		return candidate.UsageNote != nil
	}
	return candidate.Strength > existing.Strength
}
