package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// resultsDocument is the top-level shape of a benchmark results file.
// RawMessage distinguishes a missing results key from an empty array.
type resultsDocument struct {
	Results json.RawMessage `json:"results"`
}

// loadResults reads a benchmark results file and returns its records
func loadResults(path string) ([]BenchmarkRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s: %w", path, err)
	}

	var doc resultsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON in file %s: %w", path, err)
	}

	if doc.Results == nil {
		return nil, fmt.Errorf("file %s must contain a 'results' key", path)
	}

	var records []BenchmarkRecord
	if err := json.Unmarshal(doc.Results, &records); err != nil {
		return nil, fmt.Errorf("invalid 'results' array in file %s: %w", path, err)
	}

	return records, nil
}

// normalizeText strips all whitespace and lowercases, so that formatting
// differences don't split otherwise identical patterns
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
