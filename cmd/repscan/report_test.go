package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

// sampleAnalysis builds a small two-entry analysis for output tests
func sampleAnalysis() Analysis {
	return Analysis{
		TotalEntries:            3,
		EntriesWithRepetition:   1,
		CorrectAnswers:          1,
		IncorrectAnswers:        1,
		CorrectWithRepetition:   0,
		IncorrectWithRepetition: 1,
		Settings: Settings{
			MinLength:      25,
			MinOccurrences: 5,
			Decompose:      true,
			Normalize:      false,
			ScanPolicy:     "non-overlapping",
		},
		Entries: []EntryAnalysis{
			{
				EntryIndex:  0,
				ExpectedInt: intPtr(204),
				ResponseInt: intPtr(513),
				IsCorrect:   boolPtr(false),
				TextLength:  500,
				Patterns: []AnalyzedPattern{
					{
						PatternMatch: PatternMatch{Pattern: "wait, wait, wait, wait, w", Count: 8, Positions: []int{0, 25, 50, 75, 100, 125, 150, 175}},
						Internal:     &InternalRepetition{Unit: "wait, ", Repetitions: 25.0 / 6.0, IsExact: false},
					},
					{
						PatternMatch: PatternMatch{Pattern: "let me reconsider the problem", Count: 5, Positions: []int{210, 250, 290, 330, 370}},
					},
				},
			},
			{
				EntryIndex:  2,
				ExpectedInt: intPtr(7),
				ResponseInt: intPtr(7),
				IsCorrect:   boolPtr(true),
				TextLength:  80,
			},
		},
	}
}

// TestBuildJSONOutput verifies the output document mirrors the analysis,
// with the most frequent pattern duplicated at the head of all_patterns
func TestBuildJSONOutput(t *testing.T) {
	analysis := sampleAnalysis()
	out := buildJSONOutput(&analysis)

	if out.TotalEntries != 3 || out.EntriesWithRepetition != 1 {
		t.Errorf("Header counts mismatch: %+v", out)
	}
	if out.RepetitionByCorrectness.IncorrectWithRepetition != 1 {
		t.Errorf("Cross-tab mismatch: %+v", out.RepetitionByCorrectness)
	}
	if out.AnalysisSettings.MinLength != 25 || out.AnalysisSettings.ScanPolicy != "non-overlapping" {
		t.Errorf("Settings echo mismatch: %+v", out.AnalysisSettings)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(out.Entries))
	}

	first := out.Entries[0]
	if !first.HasRepetition || first.PatternsFound != 2 {
		t.Errorf("First entry flags mismatch: %+v", first)
	}
	if first.MostFrequentPattern == nil {
		t.Fatalf("Expected most_frequent_pattern for repetitive entry")
	}
	if first.MostFrequentPattern.Occurrences != 8 {
		t.Errorf("Most frequent occurrences mismatch: %d", first.MostFrequentPattern.Occurrences)
	}
	if len(first.AllPatterns) != 2 || first.AllPatterns[0].Text != first.MostFrequentPattern.Text {
		t.Errorf("all_patterns should lead with the most frequent pattern")
	}

	second := out.Entries[1]
	if second.HasRepetition || second.MostFrequentPattern != nil || second.AllPatterns != nil {
		t.Errorf("Clean entry should omit pattern fields: %+v", second)
	}
	if second.IsCorrect == nil || !*second.IsCorrect {
		t.Errorf("Clean entry correctness lost: %v", second.IsCorrect)
	}
}

// TestJSONPatternDecomposition verifies total_atomic_occurrences stays
// fractional: occurrence count times unit repetitions
func TestJSONPatternDecomposition(t *testing.T) {
	reps := 8.0 / 3.0
	p := AnalyzedPattern{
		PatternMatch: PatternMatch{Pattern: "abcabcab", Count: 3, Positions: []int{0, 20, 40}},
		Internal:     &InternalRepetition{Unit: "abc", Repetitions: reps, IsExact: false},
	}

	jp := jsonPattern(p)
	if jp.InternalRepetition == nil {
		t.Fatalf("Expected internal_repetition in output")
	}
	if jp.InternalRepetition.AtomicUnit != "abc" {
		t.Errorf("Atomic unit mismatch: %q", jp.InternalRepetition.AtomicUnit)
	}
	want := 3 * reps
	if jp.InternalRepetition.TotalAtomicOccurrences != want {
		t.Errorf("TotalAtomicOccurrences mismatch: expected %v, got %v", want, jp.InternalRepetition.TotalAtomicOccurrences)
	}
	if jp.InternalRepetition.IsExactRepetition {
		t.Errorf("Expected partial repetition flag")
	}
}

// TestWriteJSONResults verifies the results file lands on disk with the
// expected schema keys
func TestWriteJSONResults(t *testing.T) {
	analysis := sampleAnalysis()
	outputPath := filepath.Join(t.TempDir(), "nested", "out-repeats.json")

	if err := WriteJSONResults(&analysis, outputPath); err != nil {
		t.Fatalf("WriteJSONResults failed: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read results file: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Results file is not valid JSON: %v", err)
	}
	for _, key := range []string{"total_entries", "entries_with_repetition", "repetition_by_correctness", "analysis_settings", "entries"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Results file missing key %q", key)
		}
	}

	settings, ok := decoded["analysis_settings"].(map[string]interface{})
	if !ok || settings["scan_policy"] != "non-overlapping" {
		t.Errorf("analysis_settings malformed: %v", decoded["analysis_settings"])
	}
}

// TestBuildDetailedReport verifies the markdown carries entries, fenced
// pattern text and decomposition lines
func TestBuildDetailedReport(t *testing.T) {
	analysis := sampleAnalysis()
	report := buildDetailedReport(&analysis)

	if !strings.Contains(report, "## Entry 0") {
		t.Errorf("Report missing entry heading")
	}
	if strings.Contains(report, "## Entry 2") {
		t.Errorf("Clean entries should not appear in the report")
	}
	if !strings.Contains(report, "wait, wait, wait, wait, w") {
		t.Errorf("Report missing pattern text")
	}
	if !strings.Contains(report, "**Atomic unit:** `wait, `") {
		t.Errorf("Report missing atomic unit line")
	}
	if !strings.Contains(report, "```text") {
		t.Errorf("Report missing fenced pattern block")
	}
	if !strings.Contains(report, "✗ incorrect") {
		t.Errorf("Report missing correctness mark")
	}
}

// TestFormatPositions verifies long position lists are elided
func TestFormatPositions(t *testing.T) {
	if got := formatPositions([]int{1, 2, 3}); got != "1, 2, 3" {
		t.Errorf("Unexpected short list: %q", got)
	}

	var long []int
	for i := 0; i < 30; i++ {
		long = append(long, i*10)
	}
	formatted := formatPositions(long)
	if !strings.Contains(formatted, "18 more") {
		t.Errorf("Expected elision marker in %q", formatted)
	}
}
