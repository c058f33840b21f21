package domain

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechDeterminer   PartOfSpeech = "determiner"
	PartOfSpeechModal        PartOfSpeech = "modal"
	PartOfSpeechOther        PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechDeterminer, PartOfSpeechModal, PartOfSpeechOther:
		return true
	}
	return false
}

// ContextType classifies the register of a usage example.
type ContextType string

const (
	ContextTypeCasual    ContextType = "casual"
	ContextTypeAcademic  ContextType = "academic"
	ContextTypeBusiness  ContextType = "business"
	ContextTypeTechnical ContextType = "technical"
	ContextTypeFormal    ContextType = "formal"
)

func (c ContextType) String() string { return string(c) }

func (c ContextType) IsValid() bool {
	switch c {
	case ContextTypeCasual, ContextTypeAcademic, ContextTypeBusiness,
		ContextTypeTechnical, ContextTypeFormal:
		return true
	}
	return false
}

// CEFRLevel is the 6-level proficiency scale used to tag word difficulty.
type CEFRLevel string

const (
	CEFRLevelA1 CEFRLevel = "A1"
	CEFRLevelA2 CEFRLevel = "A2"
	CEFRLevelB1 CEFRLevel = "B1"
	CEFRLevelB2 CEFRLevel = "B2"
	CEFRLevelC1 CEFRLevel = "C1"
	CEFRLevelC2 CEFRLevel = "C2"
)

func (l CEFRLevel) String() string { return string(l) }

func (l CEFRLevel) IsValid() bool {
	switch l {
	case CEFRLevelA1, CEFRLevelA2, CEFRLevelB1, CEFRLevelB2, CEFRLevelC1, CEFRLevelC2:
		return true
	}
	return false
}

// FrequencyBand buckets a corpus frequency rank into a coarse range.
type FrequencyBand string

const (
	FrequencyBandTop100   FrequencyBand = "top-100"
	FrequencyBandTop1000  FrequencyBand = "top-1000"
	FrequencyBandTop5000  FrequencyBand = "top-5000"
	FrequencyBandTop10000 FrequencyBand = "top-10000"
	FrequencyBandRare     FrequencyBand = "rare"
	FrequencyBandVeryRare FrequencyBand = "very-rare"
)

func (b FrequencyBand) String() string { return string(b) }

func (b FrequencyBand) IsValid() bool {
	switch b {
	case FrequencyBandTop100, FrequencyBandTop1000, FrequencyBandTop5000,
		FrequencyBandTop10000, FrequencyBandRare, FrequencyBandVeryRare:
		return true
	}
	return false
}

// BandForRank maps a 1-based frequency rank to its band.
func BandForRank(rank int) FrequencyBand {
	switch {
	case rank <= 100:
		return FrequencyBandTop100
	case rank <= 1000:
		return FrequencyBandTop1000
	case rank <= 5000:
		return FrequencyBandTop5000
	case rank <= 10000:
		return FrequencyBandTop10000
	case rank <= 25000:
		return FrequencyBandRare
	default:
		return FrequencyBandVeryRare
	}
}

// RelationKind is the type of a semantic relationship between two words.
type RelationKind string

const (
	RelationKindSynonym    RelationKind = "synonym"
	RelationKindAntonym    RelationKind = "antonym"
	RelationKindDerivative RelationKind = "derivative"
	RelationKindHypernym   RelationKind = "hypernym"
	RelationKindHyponym    RelationKind = "hyponym"
	RelationKindRelated    RelationKind = "related"
)

func (k RelationKind) String() string { return string(k) }

func (k RelationKind) IsValid() bool {
	switch k {
	case RelationKindSynonym, RelationKindAntonym, RelationKindDerivative,
		RelationKindHypernym, RelationKindHyponym, RelationKindRelated:
		return true
	}
	return false
}
