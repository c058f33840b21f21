package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

func ptrString(s string) *string { return &s }

func TestValidateGrammar_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validateGrammar("cat", nil))
}

func TestValidateGrammar_FillsVerbBase(t *testing.T) {
	t.Parallel()

	g := validateGrammar("walk", &domain.GrammaticalInfo{
		PartOfSpeech:   domain.PartOfSpeechVerb,
		VerbPastSimple: ptrString("walked"),
	})

	require.NotNil(t, g.VerbBase)
	assert.Equal(t, "walk", *g.VerbBase)
	assert.Empty(t, g.IrregularForms)
}

func TestValidateGrammar_FlagsIrregularVerb(t *testing.T) {
	t.Parallel()

	g := validateGrammar("go", &domain.GrammaticalInfo{
		PartOfSpeech:       domain.PartOfSpeechVerb,
		VerbBase:           ptrString("go"),
		VerbPastSimple:     ptrString("went"),
		VerbPastParticiple: ptrString("gone"),
	})

	form, ok := g.IrregularForms[irregularVerbKey]
	require.True(t, ok)
	assert.Equal(t, "Irregular verb: go/went/gone", form.Note)
}

func TestValidateGrammar_FlagsIrregularAdjective(t *testing.T) {
	t.Parallel()

	g := validateGrammar("good", &domain.GrammaticalInfo{
		PartOfSpeech:   domain.PartOfSpeechAdjective,
		AdjComparative: ptrString("better"),
		AdjSuperlative: ptrString("best"),
	})

	form, ok := g.IrregularForms[irregularComparisonKey]
	require.True(t, ok)
	assert.Equal(t, "Irregular adjective: good/better/best", form.Note)
}

func TestValidateGrammar_FlagsIrregularPlural(t *testing.T) {
	t.Parallel()

	g := validateGrammar("child", &domain.GrammaticalInfo{
		PartOfSpeech: domain.PartOfSpeechNoun,
		PluralForm:   ptrString("children"),
	})

	form, ok := g.IrregularForms[irregularPluralKey]
	require.True(t, ok)
	assert.Equal(t, "children", form.Value)
	assert.Equal(t, "Irregular plural: child → children", form.Note)
}

func TestIsIrregularVerb(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		past *string
		part *string
		want bool
	}{
		{"regular +ed", "walk", ptrString("walked"), ptrString("walked"), false},
		{"regular +d after e", "love", ptrString("loved"), ptrString("loved"), false},
		{"regular doubling", "stop", ptrString("stopped"), ptrString("stopped"), false},
		{"regular y to ied", "try", ptrString("tried"), ptrString("tried"), false},
		{"suppletive", "go", ptrString("went"), ptrString("gone"), true},
		{"vowel change", "swim", ptrString("swam"), ptrString("swum"), true},
		{"participle differs from past", "show", ptrString("showed"), ptrString("shown"), true},
		{"no past form", "walk", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isIrregularVerb(tt.base, tt.past, tt.part))
		})
	}
}

func TestIsIrregularAdjective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		base        string
		comparative string
		superlative string
		want        bool
	}{
		{"regular +er", "small", "smaller", "smallest", false},
		{"regular +r after e", "large", "larger", "largest", false},
		{"regular y to ier", "happy", "happier", "happiest", false},
		{"periphrastic more", "beautiful", "more beautiful", "most beautiful", false},
		{"suppletive good", "good", "better", "best", true},
		{"suppletive bad", "bad", "worse", "worst", true},
		{"unexpected form", "old", "elder", "eldest", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isIrregularAdjective(tt.base, tt.comparative, tt.superlative))
		})
	}
}

func TestIsIrregularPlural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		singular string
		plural   string
		want     bool
	}{
		{"regular +s", "cat", "cats", false},
		{"regular +es after x", "box", "boxes", false},
		{"regular +es after ch", "church", "churches", false},
		{"regular y to ies", "baby", "babies", false},
		{"regular f to ves", "leaf", "leaves", false},
		{"regular fe to ves", "knife", "knives", false},
		{"vowel change", "mouse", "mice", true},
		{"suppletive", "child", "children", true},
		{"unchanged", "sheep", "sheep", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isIrregularPlural(tt.singular, tt.plural))
		})
	}
}
