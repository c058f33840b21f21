// Package cmudict parses CMU Pronouncing Dictionary files and serves
// IPA transcriptions from memory. Pure parsing, no I/O beyond the file.
package cmudict

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// Stress markers placed before the stressed vowel.
const (
	primaryStress   = "\u02c8" // ˈ
	secondaryStress = "\u02cc" // ˌ
)

// arpabetMap maps ARPAbet phonemes (without stress markers) to IPA symbols.
var arpabetMap = map[string]string{
	"AA": "\u0251",       // ɑ
	"AE": "\u00e6",       // æ
	"AH": "\u028c",       // ʌ
	"AO": "\u0254",       // ɔ
	"AW": "a\u028a",      // aʊ
	"AY": "a\u026a",      // aɪ
	"B":  "b",
	"CH": "t\u0283",      // tʃ
	"D":  "d",
	"DH": "\u00f0",       // ð
	"EH": "\u025b",       // ɛ
	"ER": "\u025d",       // ɝ
	"EY": "e\u026a",      // eɪ
	"F":  "f",
	"G":  "\u0261",       // ɡ
	"HH": "h",
	"IH": "\u026a",       // ɪ
	"IY": "i",
	"JH": "d\u0292",      // dʒ
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "\u014b",       // ŋ
	"OW": "o\u028a",      // oʊ
	"OY": "\u0254\u026a", // ɔɪ
	"P":  "p",
	"R":  "\u0279",       // ɹ
	"S":  "s",
	"SH": "\u0283",       // ʃ
	"T":  "t",
	"TH": "\u03b8",       // θ
	"UH": "\u028a",       // ʊ
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "\u0292",       // ʒ
}

// Transcription holds a single IPA transcription with its variant index.
type Transcription struct {
	IPA          string // e.g. "/ˈhaʊs/"
	VariantIndex int    // 0 for primary, 1 for (2), 2 for (3), etc.
}

// ParseResult holds the parsed CMU dictionary data.
type ParseResult struct {
	Pronunciations map[string][]Transcription // lowercased word → pronunciations
	Stats          Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
}

// Parse reads a CMU dict file and returns parsed pronunciations.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	result := ParseResult{
		Pronunciations: make(map[string][]Transcription),
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := scanner.Text()

		word, tr, err := parseLine(line)
		if err == errSkipLine {
			if strings.HasPrefix(line, ";;;") {
				result.Stats.CommentLines++
			}
			continue
		}
		if err != nil {
			continue
		}

		result.Stats.ParsedLines++
		result.Pronunciations[word] = append(result.Pronunciations[word], tr)
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Stats.UniqueWords = len(result.Pronunciations)
	return result, nil
}

// splitStress separates an ARPAbet phoneme from its trailing stress
// digit. Returns the bare phoneme and the digit, or 0 when absent.
func splitStress(phoneme string) (string, byte) {
	if len(phoneme) == 0 {
		return phoneme, 0
	}
	last := phoneme[len(phoneme)-1]
	if last == '0' || last == '1' || last == '2' {
		return phoneme[:len(phoneme)-1], last
	}
	return phoneme, 0
}

// phonemesToIPA converts a slice of ARPAbet phonemes to an IPA
// transcription string. Primary stress (1) becomes ˈ and secondary
// stress (2) becomes ˌ, each placed before the stressed vowel.
// The result is wrapped in slashes.
func phonemesToIPA(phonemes []string) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, p := range phonemes {
		base, stress := splitStress(p)
		ipa, ok := arpabetMap[base]
		if !ok {
			continue
		}
		switch stress {
		case '1':
			b.WriteString(primaryStress)
		case '2':
			b.WriteString(secondaryStress)
		}
		b.WriteString(ipa)
	}
	b.WriteByte('/')
	return b.String()
}

// parseLine parses a single line from a CMU dict file.
// Returns the lowercased word and its Transcription, or errSkipLine
// for comments and empty lines.
func parseLine(line string) (string, Transcription, error) {
	if line == "" {
		return "", Transcription{}, errSkipLine
	}

	if strings.HasPrefix(line, ";;;") {
		return "", Transcription{}, errSkipLine
	}

	// CMU format: WORD  PHONEME1 PHONEME2 ... (two spaces between word and phonemes).
	parts := strings.SplitN(line, "  ", 2)
	if len(parts) != 2 {
		return "", Transcription{}, errSkipLine
	}

	rawWord := strings.TrimSpace(parts[0])
	phonemesStr := strings.TrimSpace(parts[1])

	if rawWord == "" || phonemesStr == "" {
		return "", Transcription{}, errSkipLine
	}

	word, variantIdx := parseWordAndVariant(rawWord)
	phonemes := strings.Fields(phonemesStr)
	ipa := phonemesToIPA(phonemes)

	return word, Transcription{
		IPA:          ipa,
		VariantIndex: variantIdx,
	}, nil
}

// parseWordAndVariant splits a raw CMU word like "HOUSE(2)" into
// the lowercased word and variant index.
// Primary pronunciation has variant index 0, "(2)" maps to 1, "(3)" to 2, etc.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return strings.ToLower(raw), 0
	}

	word := raw[:idx]
	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return strings.ToLower(raw), 0
	}

	numStr := raw[idx+1 : idx+end]
	n, err := strconv.Atoi(numStr)
	if err != nil {
		return strings.ToLower(raw), 0
	}

	// (2) → variant index 1, (3) → variant index 2, etc.
	return strings.ToLower(word), n - 1
}
