// Package wordnet parses Open English WordNet GWN-LMF JSON files and
// serves semantic relations from an in-memory index.
package wordnet

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// GWN-LMF JSON internal types for deserialization.

type gwnDocument struct {
	Graph []gwnLexicon `json:"@graph"`
}

type gwnLexicon struct {
	Entries []gwnEntry  `json:"entry"`
	Synsets []gwnSynset `json:"synset"`
}

type gwnEntry struct {
	ID    string     `json:"@id"`
	Lemma gwnLemma   `json:"lemma"`
	Sense []gwnSense `json:"sense"`
}

type gwnLemma struct {
	WrittenForm string `json:"writtenForm"`
}

type gwnSense struct {
	ID        string        `json:"@id"`
	Synset    string        `json:"synset"`
	Relations []gwnRelation `json:"relations"`
}

type gwnSynset struct {
	ID        string        `json:"@id"`
	Relations []gwnRelation `json:"relations"`
}

type gwnRelation struct {
	RelType string `json:"relType"`
	Target  string `json:"target"`
}

// Index is the queryable form of a parsed WordNet file. All word keys
// and values are lowercased; multi-word lemmas keep their inner spaces.
type Index struct {
	wordSynsets   map[string][]string // word → synset IDs, file order
	synsetMembers map[string][]string // synset ID → member words, file order

	wordAntonyms map[string][]string // word → antonym words (sense level)
	wordDerived  map[string][]string // word → derivationally related words

	synsetHypernyms map[string][]string // synset ID → hypernym synset IDs
	synsetHyponyms  map[string][]string // synset ID → hyponym synset IDs (reverse of hypernym)
	synsetAlsoSee   map[string][]string // synset ID → also-see synset IDs

	Stats Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalEntries int
	TotalSynsets int
	UniqueWords  int
}

// Parse reads a GWN-LMF JSON file into an Index.
func Parse(filePath string) (*Index, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var doc gwnDocument
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	idx := &Index{
		wordSynsets:     make(map[string][]string),
		synsetMembers:   make(map[string][]string),
		wordAntonyms:    make(map[string][]string),
		wordDerived:     make(map[string][]string),
		synsetHypernyms: make(map[string][]string),
		synsetHyponyms:  make(map[string][]string),
		synsetAlsoSee:   make(map[string][]string),
	}

	for _, lex := range doc.Graph {
		idx.Stats.TotalEntries += len(lex.Entries)
		idx.Stats.TotalSynsets += len(lex.Synsets)

		// Sense IDs resolve to the word they belong to.
		senseToWord := make(map[string]string)
		for _, entry := range lex.Entries {
			word := normalizeLemma(entry.Lemma.WrittenForm)
			for _, sense := range entry.Sense {
				senseToWord[sense.ID] = word
			}
		}

		for _, entry := range lex.Entries {
			word := normalizeLemma(entry.Lemma.WrittenForm)
			for _, sense := range entry.Sense {
				idx.wordSynsets[word] = appendUnique(idx.wordSynsets[word], sense.Synset)
				idx.synsetMembers[sense.Synset] = appendUnique(idx.synsetMembers[sense.Synset], word)

				for _, rel := range sense.Relations {
					target, ok := senseToWord[rel.Target]
					if !ok || target == word {
						continue
					}
					switch rel.RelType {
					case "antonym":
						idx.wordAntonyms[word] = appendUnique(idx.wordAntonyms[word], target)
					case "derivation":
						idx.wordDerived[word] = appendUnique(idx.wordDerived[word], target)
					}
				}
			}
		}

		for _, synset := range lex.Synsets {
			for _, rel := range synset.Relations {
				switch rel.RelType {
				case "hypernym":
					idx.synsetHypernyms[synset.ID] = appendUnique(idx.synsetHypernyms[synset.ID], rel.Target)
					idx.synsetHyponyms[rel.Target] = appendUnique(idx.synsetHyponyms[rel.Target], synset.ID)
				case "hyponym":
					idx.synsetHyponyms[synset.ID] = appendUnique(idx.synsetHyponyms[synset.ID], rel.Target)
					idx.synsetHypernyms[rel.Target] = appendUnique(idx.synsetHypernyms[rel.Target], synset.ID)
				case "also":
					idx.synsetAlsoSee[synset.ID] = appendUnique(idx.synsetAlsoSee[synset.ID], rel.Target)
				}
			}
		}
	}

	idx.Stats.UniqueWords = len(idx.wordSynsets)
	return idx, nil
}

// normalizeLemma lowercases a written form and converts underscores to
// spaces (some GWN exports use underscores in multi-word lemmas).
func normalizeLemma(form string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(form), "_", " "))
}

func appendUnique(slice []string, v string) []string {
	for _, existing := range slice {
		if existing == v {
			return slice
		}
	}
	return append(slice, v)
}
