package enrichment

import (
	"fmt"
	"strings"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// Irregular form keys stored in GrammaticalInfo.IrregularForms.
const (
	irregularVerbKey       = "irregular_verb"
	irregularComparisonKey = "irregular_comparison"
	irregularPluralKey     = "irregular_plural"
)

// suppletiveAdjectives maps base adjectives to their suppletive
// comparative/superlative pairs.
var suppletiveAdjectives = map[string][2]string{
	"good":   {"better", "best"},
	"bad":    {"worse", "worst"},
	"little": {"less", "least"},
	"much":   {"more", "most"},
	"many":   {"more", "most"},
	"far":    {"farther", "farthest"},
}

// validateGrammar enforces grammatical-form consistency and tags
// irregular forms with an explanatory note instead of rejecting them.
// Verb fields imply a base form: it is filled with the headword when
// the source left it empty.
func validateGrammar(word string, g *domain.GrammaticalInfo) *domain.GrammaticalInfo {
	if g == nil {
		return nil
	}

	hasVerbForm := g.VerbBase != nil || g.VerbPastSimple != nil || g.VerbPastParticiple != nil ||
		g.VerbPresentParticiple != nil || g.VerbThirdPerson != nil

	if hasVerbForm || g.PartOfSpeech == domain.PartOfSpeechVerb {
		if g.VerbBase == nil {
			base := word
			g.VerbBase = &base
		}

		if g.VerbPastSimple != nil || g.VerbPastParticiple != nil {
			if isIrregularVerb(*g.VerbBase, g.VerbPastSimple, g.VerbPastParticiple) {
				setIrregular(g, irregularVerbKey, domain.IrregularForm{
					Note: fmt.Sprintf("Irregular verb: %s/%s/%s",
						*g.VerbBase, derefOr(g.VerbPastSimple, "-"), derefOr(g.VerbPastParticiple, "-")),
				})
			}
		}
	}

	if g.AdjComparative != nil && g.AdjSuperlative != nil {
		if isIrregularAdjective(word, *g.AdjComparative, *g.AdjSuperlative) {
			setIrregular(g, irregularComparisonKey, domain.IrregularForm{
				Note: fmt.Sprintf("Irregular adjective: %s/%s/%s", word, *g.AdjComparative, *g.AdjSuperlative),
			})
		}
	}

	if g.PartOfSpeech == domain.PartOfSpeechNoun && g.PluralForm != nil {
		if isIrregularPlural(word, *g.PluralForm) {
			setIrregular(g, irregularPluralKey, domain.IrregularForm{
				Value: *g.PluralForm,
				Note:  fmt.Sprintf("Irregular plural: %s → %s", word, *g.PluralForm),
			})
		}
	}

	return g
}

func setIrregular(g *domain.GrammaticalInfo, key string, form domain.IrregularForm) {
	if g.IrregularForms == nil {
		g.IrregularForms = make(map[string]domain.IrregularForm)
	}
	if _, exists := g.IrregularForms[key]; !exists {
		g.IrregularForms[key] = form
	}
}

// isIrregularVerb reports whether the past forms deviate from the
// regular "+ed" pattern (with e-, doubling- and y-adjustments).
func isIrregularVerb(base string, past, pastParticiple *string) bool {
	if past == nil || base == "" {
		return false
	}

	regularPast := base + "ed"
	if strings.HasSuffix(base, "e") {
		regularPast = base + "d"
	}

	// Consonant doubling (stop → stopped).
	if len(base) >= 2 && !isVowel(base[len(base)-1]) && isVowel(base[len(base)-2]) {
		regularPast = base + string(base[len(base)-1]) + "ed"
	}

	// y → ied (try → tried).
	if strings.HasSuffix(base, "y") && len(base) > 2 && !isVowel(base[len(base)-2]) {
		regularPast = base[:len(base)-1] + "ied"
	}

	if !strings.EqualFold(*past, regularPast) {
		return true
	}

	// A past participle differing from past simple is irregular too.
	if pastParticiple != nil && !strings.EqualFold(*pastParticiple, *past) {
		return true
	}

	return false
}

// isIrregularAdjective reports whether comparison forms deviate from
// "+er/+est" (with e- and y-adjustments) or match a suppletive pair.
func isIrregularAdjective(base, comparative, superlative string) bool {
	baseLower := strings.ToLower(base)
	if expected, ok := suppletiveAdjectives[baseLower]; ok {
		if strings.EqualFold(comparative, expected[0]) && strings.EqualFold(superlative, expected[1]) {
			return true
		}
	}

	regularComp := base + "er"
	if strings.HasSuffix(base, "e") {
		regularComp = base + "r"
	}
	if strings.HasSuffix(base, "y") {
		regularComp = base[:len(base)-1] + "ier"
	}

	if !strings.EqualFold(comparative, regularComp) && !strings.HasPrefix(strings.ToLower(comparative), "more") {
		return true
	}

	return false
}

// isIrregularPlural reports whether the plural deviates from the
// regular "+s/+es" pattern (with y- and f-adjustments).
func isIrregularPlural(singular, plural string) bool {
	regularPlural := singular + "s"

	switch {
	case strings.HasSuffix(singular, "s"), strings.HasSuffix(singular, "x"),
		strings.HasSuffix(singular, "z"), strings.HasSuffix(singular, "ch"),
		strings.HasSuffix(singular, "sh"):
		regularPlural = singular + "es"
	}

	if strings.HasSuffix(singular, "y") && len(singular) > 1 && !isVowel(singular[len(singular)-2]) {
		regularPlural = singular[:len(singular)-1] + "ies"
	}

	if strings.HasSuffix(singular, "fe") {
		regularPlural = singular[:len(singular)-2] + "ves"
	} else if strings.HasSuffix(singular, "f") {
		regularPlural = singular[:len(singular)-1] + "ves"
	}

	return !strings.EqualFold(plural, regularPlural)
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
