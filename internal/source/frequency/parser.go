// Package frequency serves corpus frequency ranks from a CSV wordlist.
package frequency

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseCSV reads a frequency wordlist from r. Column 0 is the word;
// column 1, when present and numeric, is an explicit 1-based rank.
// Rows without an explicit rank get their running position, so a plain
// one-column list ordered by frequency also works. The first row is a
// header and is skipped. Later duplicates of a word are ignored.
func ParseCSV(r io.Reader) (map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	ranks := make(map[string]int)
	position := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if len(record) == 0 {
			continue
		}

		word := strings.ToLower(strings.TrimSpace(record[0]))
		if word == "" {
			continue
		}

		position++
		rank := position
		if len(record) > 1 {
			if explicit, err := strconv.Atoi(strings.TrimSpace(record[1])); err == nil && explicit > 0 {
				rank = explicit
			}
		}

		if _, exists := ranks[word]; !exists {
			ranks[word] = rank
		}
	}

	return ranks, nil
}

// ParseFile is ParseCSV over a file path.
func ParseFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}
