package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

// analyzeRecord runs pattern detection on a single benchmark record
func analyzeRecord(idx int, rec BenchmarkRecord, settings Settings, scan ScanPolicy) EntryAnalysis {
	entry := EntryAnalysis{
		EntryIndex:  idx,
		ExpectedInt: rec.ExpectedInt,
		ResponseInt: rec.ResponseInt,
	}

	if rec.ResponseText == nil {
		entry.Skipped = true
		return entry
	}

	if rec.ExpectedInt != nil && rec.ResponseInt != nil {
		correct := *rec.ExpectedInt == *rec.ResponseInt
		entry.IsCorrect = &correct
	}

	text := *rec.ResponseText
	if settings.Normalize {
		text = normalizeText(text)
	}
	entry.TextLength = len(text)

	for _, m := range findRepeatingPatterns(text, settings.MinLength, settings.MinOccurrences, scan) {
		p := AnalyzedPattern{PatternMatch: m}
		if settings.Decompose {
			p.Internal = findInternalRepetition(m.Pattern)
		}
		entry.Patterns = append(entry.Patterns, p)
	}

	return entry
}

// analyzeRecords runs detection on every record using parallel workers.
// Results land in an index-addressed slice, so output order stays
// deterministic regardless of scheduling.
func analyzeRecords(records []BenchmarkRecord, settings Settings, scan ScanPolicy) []EntryAnalysis {
	entries := make([]EntryAnalysis, len(records))
	numWorkers := runtime.NumCPU()

	work := make(chan int, len(records))
	for i := range records {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				entries[idx] = analyzeRecord(idx, records[idx], settings, scan)
			}
		}()
	}
	wg.Wait()

	return entries
}

// analyzeResults analyzes every record and aggregates the correctness
// cross-tabulation. Skipped records count toward the total but produce
// no entry.
func analyzeResults(records []BenchmarkRecord, settings Settings, scan ScanPolicy) Analysis {
	analysis := Analysis{
		TotalEntries: len(records),
		Settings:     settings,
	}

	for _, entry := range analyzeRecords(records, settings, scan) {
		if entry.Skipped {
			fmt.Fprintf(os.Stderr, "Warning: entry %d missing 'response_text' key\n", entry.EntryIndex)
			continue
		}

		if entry.IsCorrect != nil {
			if *entry.IsCorrect {
				analysis.CorrectAnswers++
			} else {
				analysis.IncorrectAnswers++
			}
		}

		if entry.HasRepetition() {
			analysis.EntriesWithRepetition++
			if entry.IsCorrect != nil {
				if *entry.IsCorrect {
					analysis.CorrectWithRepetition++
				} else {
					analysis.IncorrectWithRepetition++
				}
			}
		}

		analysis.Entries = append(analysis.Entries, entry)
	}

	return analysis
}

// analyzeFile loads a results file and runs the full analysis on it
func analyzeFile(path string, settings Settings, scan ScanPolicy) (Analysis, error) {
	records, err := loadResults(path)
	if err != nil {
		return Analysis{}, err
	}
	return analyzeResults(records, settings, scan), nil
}
