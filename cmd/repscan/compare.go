package main

import (
	"fmt"
	"sort"
	"strings"
)

// compareOutcome classifies entries by index across two analysis runs
type compareOutcome struct {
	Improved  []int // repetitive in the baseline only
	Regressed []int // repetitive in the current run only
	Lingering []int // repetitive in both
}

// compareAnalyses matches entries by index, assuming both files come from
// the same benchmark set in the same order
func compareAnalyses(baseline, current *Analysis) compareOutcome {
	baseRep := make(map[int]bool)
	for _, e := range baseline.Entries {
		if e.HasRepetition() {
			baseRep[e.EntryIndex] = true
		}
	}

	curRep := make(map[int]bool)
	for _, e := range current.Entries {
		if e.HasRepetition() {
			curRep[e.EntryIndex] = true
		}
	}

	var outcome compareOutcome
	for idx := range baseRep {
		if curRep[idx] {
			outcome.Lingering = append(outcome.Lingering, idx)
		} else {
			outcome.Improved = append(outcome.Improved, idx)
		}
	}
	for idx := range curRep {
		if !baseRep[idx] {
			outcome.Regressed = append(outcome.Regressed, idx)
		}
	}

	sort.Ints(outcome.Improved)
	sort.Ints(outcome.Regressed)
	sort.Ints(outcome.Lingering)
	return outcome
}

// runCompare analyzes a baseline results file with the current settings and
// reports how repetition moved between the two runs
func runCompare(current *Analysis, baselinePath string, settings Settings, scan ScanPolicy) error {
	baseline, err := analyzeFile(baselinePath, settings, scan)
	if err != nil {
		return fmt.Errorf("analyzing baseline: %w", err)
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("COMPARISON RESULTS: %s -> current\n", baselinePath)
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))

	fmt.Printf("Baseline repetition rate: %s (%d/%d)\n",
		theme.Count.Render(fmt.Sprintf("%.1f%%", baseline.RepetitionRate()*100)),
		baseline.EntriesWithRepetition, baseline.TotalEntries)
	fmt.Printf("Current repetition rate:  %s (%d/%d)\n",
		theme.Count.Render(fmt.Sprintf("%.1f%%", current.RepetitionRate()*100)),
		current.EntriesWithRepetition, current.TotalEntries)

	outcome := compareAnalyses(&baseline, current)

	fmt.Println()
	if len(outcome.Improved) > 0 {
		fmt.Printf("%s entries no longer repeat: %s\n",
			theme.Correct.Render(fmt.Sprintf("%d", len(outcome.Improved))),
			theme.Dim.Render(formatEntryList(outcome.Improved)))
	}
	if len(outcome.Regressed) > 0 {
		fmt.Printf("%s entries started repeating: %s\n",
			theme.Incorrect.Render(fmt.Sprintf("%d", len(outcome.Regressed))),
			theme.Dim.Render(formatEntryList(outcome.Regressed)))
	}
	if len(outcome.Lingering) > 0 {
		fmt.Printf("%s entries still repeat: %s\n",
			theme.Count.Render(fmt.Sprintf("%d", len(outcome.Lingering))),
			theme.Dim.Render(formatEntryList(outcome.Lingering)))
	}

	if len(outcome.Lingering) == 0 && len(outcome.Regressed) == 0 {
		if len(outcome.Improved) > 0 {
			fmt.Printf("\nNo repetition carried over. Every repetitive baseline entry is clean now!\n")
		} else {
			fmt.Printf("Neither run contains repetitive entries.\n")
		}
	}

	return nil
}

// formatEntryList joins entry indexes for display, eliding long lists
func formatEntryList(indexes []int) string {
	const maxShown = 15
	parts := make([]string, 0, maxShown)
	for i, idx := range indexes {
		if i == maxShown {
			parts = append(parts, fmt.Sprintf("… %d more", len(indexes)-maxShown))
			break
		}
		parts = append(parts, fmt.Sprintf("%d", idx))
	}
	return strings.Join(parts, ", ")
}
