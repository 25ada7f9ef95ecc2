package main

// BenchmarkRecord is one result entry from a benchmark results file.
// Pointer fields distinguish absent keys from zero values.
type BenchmarkRecord struct {
	ResponseText *string `json:"response_text"`
	ExpectedInt  *int64  `json:"expected_int"`
	ResponseInt  *int64  `json:"response_int"`
}

// PatternMatch represents a repeated substring with all its occurrences
type PatternMatch struct {
	Pattern   string
	Count     int   // occurrences under the active scan policy
	Positions []int // byte offsets of each occurrence, ascending
}

// InternalRepetition describes the smallest unit a pattern is built from
type InternalRepetition struct {
	Unit        string
	Repetitions float64 // pattern length / unit length, fractional for partial trailing units
	IsExact     bool    // true when the unit tiles the pattern with no remainder
}

// AnalyzedPattern pairs a match with its optional decomposition
type AnalyzedPattern struct {
	PatternMatch
	Internal *InternalRepetition // nil unless decomposition found a smaller unit
}

// EntryAnalysis carries the detection outcome for one benchmark record
type EntryAnalysis struct {
	EntryIndex  int
	ExpectedInt *int64
	ResponseInt *int64
	IsCorrect   *bool // nil when the record carries no gradable answer pair
	TextLength  int   // length of the analyzed text, after normalization when enabled
	Skipped     bool  // record had no response_text
	Patterns    []AnalyzedPattern
}

// HasRepetition reports whether any pattern survived the thresholds
func (e *EntryAnalysis) HasRepetition() bool {
	return len(e.Patterns) > 0
}

// MostFrequent returns the top pattern in sort order, nil when none
func (e *EntryAnalysis) MostFrequent() *AnalyzedPattern {
	if len(e.Patterns) == 0 {
		return nil
	}
	return &e.Patterns[0]
}

// RepeatedChars counts bytes covered by pattern occurrences
func (e *EntryAnalysis) RepeatedChars() int {
	total := 0
	for _, p := range e.Patterns {
		total += len(p.Pattern) * p.Count
	}
	return total
}

// Settings holds the analysis configuration shared by every entry
type Settings struct {
	MinLength      int
	MinOccurrences int
	Decompose      bool
	Normalize      bool
	ScanPolicy     string
}

// Analysis aggregates detection results across a whole results file
type Analysis struct {
	TotalEntries            int // includes skipped records
	EntriesWithRepetition   int
	CorrectAnswers          int
	IncorrectAnswers        int
	CorrectWithRepetition   int
	IncorrectWithRepetition int
	Settings                Settings
	Entries                 []EntryAnalysis // skipped records excluded
}

// RepetitionRate is entries with repetition over total entries (0.0-1.0)
func (a *Analysis) RepetitionRate() float64 {
	if a.TotalEntries == 0 {
		return 0
	}
	return float64(a.EntriesWithRepetition) / float64(a.TotalEntries)
}

// RepetitiveEntries returns the entries that have at least one pattern,
// in entry-index order
func (a *Analysis) RepetitiveEntries() []EntryAnalysis {
	var out []EntryAnalysis
	for _, e := range a.Entries {
		if e.HasRepetition() {
			out = append(out, e)
		}
	}
	return out
}

// JSON output structures

type JSONInternalRepetition struct {
	AtomicUnit             string  `json:"atomic_unit"`
	UnitRepetitions        float64 `json:"unit_repetitions"`
	IsExactRepetition      bool    `json:"is_exact_repetition"`
	TotalAtomicOccurrences float64 `json:"total_atomic_occurrences"`
}

type JSONPattern struct {
	Text               string                  `json:"text"`
	Length             int                     `json:"length"`
	Occurrences        int                     `json:"occurrences"`
	Positions          []int                   `json:"positions"`
	InternalRepetition *JSONInternalRepetition `json:"internal_repetition,omitempty"`
}

type JSONEntry struct {
	EntryIndex          int           `json:"entry_index"`
	ExpectedInt         *int64        `json:"expected_int"`
	ResponseInt         *int64        `json:"response_int"`
	IsCorrect           *bool         `json:"is_correct"`
	TextLength          int           `json:"text_length"`
	HasRepetition       bool          `json:"has_repetition"`
	PatternsFound       int           `json:"patterns_found"`
	MostFrequentPattern *JSONPattern  `json:"most_frequent_pattern,omitempty"`
	AllPatterns         []JSONPattern `json:"all_patterns,omitempty"`
}

type JSONSettings struct {
	MinLength      int    `json:"min_length"`
	MinOccurrences int    `json:"min_occurrences"`
	Decompose      bool   `json:"decompose"`
	Normalize      bool   `json:"normalize"`
	ScanPolicy     string `json:"scan_policy"`
}

type JSONCorrectnessSplit struct {
	CorrectWithRepetition   int `json:"correct_with_repetition"`
	IncorrectWithRepetition int `json:"incorrect_with_repetition"`
}

type JSONOutput struct {
	TotalEntries            int                  `json:"total_entries"`
	EntriesWithRepetition   int                  `json:"entries_with_repetition"`
	CorrectAnswers          int                  `json:"correct_answers"`
	IncorrectAnswers        int                  `json:"incorrect_answers"`
	RepetitionByCorrectness JSONCorrectnessSplit `json:"repetition_by_correctness"`
	AnalysisSettings        JSONSettings         `json:"analysis_settings"`
	Entries                 []JSONEntry          `json:"entries"`
}
