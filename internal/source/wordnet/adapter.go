package wordnet

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
	"github.com/grimoire-app/grimoire-backend/internal/source"
)

const adapterName = "wordnet"

// Per-word output caps, matching how much supplementary data one
// source is allowed to contribute.
const (
	maxSynonyms           = 10
	maxAntonyms           = 10
	maxRelated            = 10
	maxHypernymsPerSynset = 2
	maxHyponyms           = 3
	maxAlsoSeePerSynset   = 2
)

// Adapter serves semantic relations from an in-memory WordNet index.
// Missing entries are normal for this source, not errors.
type Adapter struct {
	idx *Index
	log *slog.Logger
}

// NewAdapter loads the GWN-LMF file at path into memory.
func NewAdapter(path string, log *slog.Logger) (*Adapter, error) {
	idx, err := Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse wordnet: %w", err)
	}

	log = log.With("adapter", adapterName)
	log.Info("wordnet index loaded",
		"words", idx.Stats.UniqueWords,
		"synsets", idx.Stats.TotalSynsets,
	)

	return &Adapter{idx: idx, log: log}, nil
}

func (a *Adapter) Name() string { return adapterName }

func (a *Adapter) SupportsField(field string) bool {
	return field == domain.FieldRelatedWords
}

// Fetch collects synonyms, antonyms and noted relations for the word.
// Relation strengths are left at zero: the enrichment merge assigns
// them from its weight table.
func (a *Adapter) Fetch(_ context.Context, word string) (*source.WordData, error) {
	synsets := a.idx.wordSynsets[word]
	if len(synsets) == 0 {
		return nil, domain.ErrNotFound
	}

	c := newCollector(word)

	// Synonyms: other members of the word's synsets, alphabetical.
	var synonyms []string
	for _, synsetID := range synsets {
		for _, member := range a.idx.synsetMembers[synsetID] {
			if member != word {
				synonyms = appendUnique(synonyms, member)
			}
		}
	}
	sort.Strings(synonyms)
	for _, s := range capStrings(synonyms, maxSynonyms) {
		c.add(s, domain.RelationKindSynonym, "")
	}

	antonyms := append([]string(nil), a.idx.wordAntonyms[word]...)
	sort.Strings(antonyms)
	for _, ant := range capStrings(antonyms, maxAntonyms) {
		c.add(ant, domain.RelationKindAntonym, "")
	}

	related := 0
	addRelated := func(target string, kind domain.RelationKind, note string) {
		if related >= maxRelated {
			return
		}
		if c.add(target, kind, note) {
			related++
		}
	}

	for _, derived := range a.idx.wordDerived[word] {
		addRelated(derived, domain.RelationKindDerivative,
			fmt.Sprintf("Derived from the same root as %s", word))
	}

	for _, synsetID := range synsets {
		for _, hypernymID := range capStrings(a.idx.synsetHypernyms[synsetID], maxHypernymsPerSynset) {
			for _, member := range a.idx.synsetMembers[hypernymID] {
				if member != word {
					addRelated(member, domain.RelationKindHypernym,
						fmt.Sprintf("A more general term for %s", word))
				}
			}
		}
	}

	// Hyponyms come from the primary synset only: secondary senses
	// produce too much noise.
	hyponyms := 0
	for _, hyponymID := range a.idx.synsetHyponyms[synsets[0]] {
		if hyponyms >= maxHyponyms {
			break
		}
		members := a.idx.synsetMembers[hyponymID]
		if len(members) == 0 || members[0] == word {
			continue
		}
		addRelated(members[0], domain.RelationKindHyponym,
			fmt.Sprintf("A more specific type of %s", word))
		hyponyms++
	}

	for _, synsetID := range synsets {
		for _, alsoID := range capStrings(a.idx.synsetAlsoSee[synsetID], maxAlsoSeePerSynset) {
			members := a.idx.synsetMembers[alsoID]
			if len(members) == 0 || members[0] == word {
				continue
			}
			addRelated(members[0], domain.RelationKindRelated,
				fmt.Sprintf("Related concept to %s", word))
		}
	}

	return &source.WordData{
		Recognized: true,
		Relations:  c.relations,
	}, nil
}

// collector accumulates relations, suppressing duplicates of
// (target, kind) and self-references.
type collector struct {
	word      string
	seen      map[relationKey]bool
	relations []domain.RelatedWord
}

type relationKey struct {
	target string
	kind   domain.RelationKind
}

func newCollector(word string) *collector {
	return &collector{word: word, seen: make(map[relationKey]bool)}
}

func (c *collector) add(target string, kind domain.RelationKind, note string) bool {
	if target == c.word {
		return false
	}
	key := relationKey{target: target, kind: kind}
	if c.seen[key] {
		return false
	}
	c.seen[key] = true

	rel := domain.RelatedWord{TargetText: target, Kind: kind}
	if note != "" {
		rel.UsageNote = &note
	}
	c.relations = append(c.relations, rel)
	return true
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
