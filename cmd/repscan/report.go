package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for console output
type Theme struct {
	Header    lipgloss.Style
	Count     lipgloss.Style
	Number    lipgloss.Style
	Location  lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Dim       lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Count:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Number:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Location:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Current theme (can be changed at runtime)
var theme = DefaultTheme

// PrintScanStart prints the initial analysis message
func PrintScanStart(entryCount, workerCount int) {
	fmt.Printf("Analyzing %d entries using %d workers...\n", entryCount, workerCount)
}

// PrintAnalysisComplete prints analysis completion timing
func PrintAnalysisComplete(duration time.Duration) {
	fmt.Printf("Analysis took %s\n", duration.Round(time.Millisecond))
}

// PrintSummary prints the human-readable analysis summary, showing at most
// top example entries
func PrintSummary(a *Analysis, top int) {
	fmt.Printf("\n%s\n", theme.Header.Render("=== LLM Repetition Analysis Summary ==="))
	fmt.Printf("Total entries analyzed: %s\n", theme.Number.Render(fmt.Sprintf("%d", a.TotalEntries)))
	fmt.Printf("Entries with repetitive patterns: %s\n", theme.Count.Render(fmt.Sprintf("%d", a.EntriesWithRepetition)))

	graded := a.CorrectAnswers + a.IncorrectAnswers
	if graded > 0 {
		fmt.Printf("\n%s\n", theme.Header.Render("=== Correctness Analysis ==="))
		fmt.Printf("Entries with answer comparison: %d\n", graded)
		fmt.Printf("Correct answers: %s (%.1f%%)\n",
			theme.Correct.Render(fmt.Sprintf("%d", a.CorrectAnswers)),
			float64(a.CorrectAnswers)/float64(graded)*100)
		fmt.Printf("Incorrect answers: %s (%.1f%%)\n",
			theme.Incorrect.Render(fmt.Sprintf("%d", a.IncorrectAnswers)),
			float64(a.IncorrectAnswers)/float64(graded)*100)

		fmt.Printf("\n%s\n", theme.Header.Render("=== Repetition vs Correctness ==="))
		if a.CorrectAnswers > 0 {
			fmt.Printf("Correct answers with repetition: %d/%d (%.1f%%)\n",
				a.CorrectWithRepetition, a.CorrectAnswers,
				float64(a.CorrectWithRepetition)/float64(a.CorrectAnswers)*100)
		}
		if a.IncorrectAnswers > 0 {
			fmt.Printf("Incorrect answers with repetition: %d/%d (%.1f%%)\n",
				a.IncorrectWithRepetition, a.IncorrectAnswers,
				float64(a.IncorrectWithRepetition)/float64(a.IncorrectAnswers)*100)
		}
	}

	if a.EntriesWithRepetition == 0 {
		fmt.Printf("\nNo repetitive patterns found!\n")
		return
	}

	fmt.Printf("\nOverall repetition rate: %s\n",
		theme.Count.Render(fmt.Sprintf("%.1f%%", a.RepetitionRate()*100)))

	repetitive := a.RepetitiveEntries()
	if len(repetitive) == 0 {
		return
	}

	fmt.Printf("\n%s\n", theme.Header.Render("=== Examples of Repetitive Entries ==="))
	show := top
	if len(repetitive) < show {
		show = len(repetitive)
	}
	for _, entry := range repetitive[:show] {
		printEntrySummary(entry)
	}
	if len(repetitive) > show {
		fmt.Printf("\n... and %d more entries with repetition\n", len(repetitive)-show)
	}
}

// printEntrySummary prints one repetitive entry in the examples section
func printEntrySummary(entry EntryAnalysis) {
	fmt.Printf("\nEntry %s:\n", theme.Location.Render(fmt.Sprintf("%d", entry.EntryIndex)))

	if entry.IsCorrect != nil {
		mark := theme.Correct.Render("✓ Correct")
		if !*entry.IsCorrect {
			mark = theme.Incorrect.Render("✗ Incorrect")
		}
		fmt.Printf("  Answer: %s (expected: %d, got: %d)\n", mark, *entry.ExpectedInt, *entry.ResponseInt)
	}
	fmt.Printf("  Text length: %d characters\n", entry.TextLength)
	fmt.Printf("  Patterns found: %d\n", len(entry.Patterns))

	p := entry.MostFrequent()
	fmt.Printf("  Most frequent pattern: %s chars, %s times\n",
		theme.Number.Render(fmt.Sprintf("%d", len(p.Pattern))),
		theme.Count.Render(fmt.Sprintf("%d", p.Count)))

	if p.Internal != nil {
		exactness := "exact"
		if !p.Internal.IsExact {
			exactness = "partial"
		}
		fmt.Printf("  → Atomic unit: %s × %.1f (%s)\n",
			theme.Number.Render(fmt.Sprintf("'%s'", p.Internal.Unit)),
			p.Internal.Repetitions, exactness)
		fmt.Printf("  → Total atomic occurrences: %.1f\n",
			float64(p.Count)*p.Internal.Repetitions)
	}

	preview := p.Pattern
	if len(preview) > 150 {
		preview = preview[:150] + "..."
	}
	fmt.Printf("  Preview: %s\n", theme.Dim.Render("'"+preview+"'"))
}

// PrintHotspots prints the entries carrying the most repeated text
func PrintHotspots(a *Analysis) {
	type entryHotspot struct {
		index    int
		repeated int
		length   int
	}
	var hotspots []entryHotspot
	for _, e := range a.Entries {
		if r := e.RepeatedChars(); r > 0 {
			hotspots = append(hotspots, entryHotspot{e.EntryIndex, r, e.TextLength})
		}
	}
	if len(hotspots) == 0 {
		return
	}

	sort.Slice(hotspots, func(i, j int) bool {
		return hotspots[i].repeated > hotspots[j].repeated
	})

	fmt.Printf("\n%s\n", theme.Header.Render("Repetition hotspots (chars):"))
	show := 5
	if len(hotspots) < show {
		show = len(hotspots)
	}
	for i := 0; i < show; i++ {
		h := hotspots[i]
		coverage := 0.0
		if h.length > 0 {
			coverage = float64(h.repeated) / float64(h.length) * 100
		}
		fmt.Printf("  %s entry %s %s\n",
			theme.Number.Render(fmt.Sprintf("%6d", h.repeated)),
			theme.Location.Render(fmt.Sprintf("%d", h.index)),
			theme.Dim.Render(fmt.Sprintf("(%.0f%% of text)", coverage)))
	}
}

// PrintTotalSummary prints the final accounting line
func PrintTotalSummary(a *Analysis, elapsed time.Duration) {
	fmt.Printf("\nTotal: %s repetitive entries out of %s in %s\n",
		theme.Count.Render(fmt.Sprintf("%d", a.EntriesWithRepetition)),
		theme.Header.Render(fmt.Sprintf("%d", a.TotalEntries)),
		theme.Header.Render(elapsed.Round(time.Millisecond).String()))
}

// buildDetailedReport renders every repetitive entry as markdown, with the
// full pattern text fenced and occurrence positions listed
func buildDetailedReport(a *Analysis) string {
	var sb strings.Builder

	sb.WriteString("# Repetition Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("Settings: min length %d, min occurrences %d, scan %s",
		a.Settings.MinLength, a.Settings.MinOccurrences, a.Settings.ScanPolicy))
	if a.Settings.Normalize {
		sb.WriteString(", normalized")
	}
	if a.Settings.Decompose {
		sb.WriteString(", decomposed")
	}
	sb.WriteString("\n\n")

	for _, entry := range a.RepetitiveEntries() {
		sb.WriteString(fmt.Sprintf("## Entry %d\n\n", entry.EntryIndex))
		if entry.IsCorrect != nil {
			mark := "✓ correct"
			if !*entry.IsCorrect {
				mark = "✗ incorrect"
			}
			sb.WriteString(fmt.Sprintf("**Answer:** %s (expected %d, got %d)  ",
				mark, *entry.ExpectedInt, *entry.ResponseInt))
		}
		sb.WriteString(fmt.Sprintf("**Text length:** %d  **Patterns:** %d\n\n",
			entry.TextLength, len(entry.Patterns)))

		for j, p := range entry.Patterns {
			sb.WriteString(fmt.Sprintf("### Pattern %d\n\n", j+1))
			sb.WriteString(fmt.Sprintf("**Length:** %d  **Occurrences:** %d  **Positions:** %s\n\n",
				len(p.Pattern), p.Count, formatPositions(p.Positions)))
			if p.Internal != nil {
				exactness := "exact"
				if !p.Internal.IsExact {
					exactness = "partial"
				}
				sb.WriteString(fmt.Sprintf("**Atomic unit:** `%s` × %.1f (%s)\n\n",
					p.Internal.Unit, p.Internal.Repetitions, exactness))
			}
			sb.WriteString("```text\n")
			sb.WriteString(p.Pattern)
			sb.WriteString("\n```\n\n")
		}
		sb.WriteString("---\n\n")
	}

	return sb.String()
}

// formatPositions joins byte offsets for display, eliding long lists
func formatPositions(positions []int) string {
	const maxShown = 12
	parts := make([]string, 0, maxShown)
	for i, pos := range positions {
		if i == maxShown {
			parts = append(parts, fmt.Sprintf("… %d more", len(positions)-maxShown))
			break
		}
		parts = append(parts, fmt.Sprintf("%d", pos))
	}
	return strings.Join(parts, ", ")
}

// PrintDetailedReport renders the markdown report to the terminal
func PrintDetailedReport(a *Analysis) {
	renderMarkdown(buildDetailedReport(a))
}

// renderMarkdown renders markdown for the terminal, falling back to the
// plain text when the renderer is unavailable
func renderMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// jsonPattern converts an analyzed pattern to its output form
func jsonPattern(p AnalyzedPattern) JSONPattern {
	jp := JSONPattern{
		Text:        p.Pattern,
		Length:      len(p.Pattern),
		Occurrences: p.Count,
		Positions:   p.Positions,
	}
	if p.Internal != nil {
		jp.InternalRepetition = &JSONInternalRepetition{
			AtomicUnit:             p.Internal.Unit,
			UnitRepetitions:        p.Internal.Repetitions,
			IsExactRepetition:      p.Internal.IsExact,
			TotalAtomicOccurrences: float64(p.Count) * p.Internal.Repetitions,
		}
	}
	return jp
}

// buildJSONOutput converts an analysis to the output document schema
func buildJSONOutput(a *Analysis) JSONOutput {
	out := JSONOutput{
		TotalEntries:          a.TotalEntries,
		EntriesWithRepetition: a.EntriesWithRepetition,
		CorrectAnswers:        a.CorrectAnswers,
		IncorrectAnswers:      a.IncorrectAnswers,
		RepetitionByCorrectness: JSONCorrectnessSplit{
			CorrectWithRepetition:   a.CorrectWithRepetition,
			IncorrectWithRepetition: a.IncorrectWithRepetition,
		},
		AnalysisSettings: JSONSettings{
			MinLength:      a.Settings.MinLength,
			MinOccurrences: a.Settings.MinOccurrences,
			Decompose:      a.Settings.Decompose,
			Normalize:      a.Settings.Normalize,
			ScanPolicy:     a.Settings.ScanPolicy,
		},
		Entries: make([]JSONEntry, 0, len(a.Entries)),
	}

	for _, entry := range a.Entries {
		je := JSONEntry{
			EntryIndex:    entry.EntryIndex,
			ExpectedInt:   entry.ExpectedInt,
			ResponseInt:   entry.ResponseInt,
			IsCorrect:     entry.IsCorrect,
			TextLength:    entry.TextLength,
			HasRepetition: entry.HasRepetition(),
			PatternsFound: len(entry.Patterns),
		}

		if entry.HasRepetition() {
			first := jsonPattern(entry.Patterns[0])
			je.MostFrequentPattern = &first
			je.AllPatterns = make([]JSONPattern, 0, len(entry.Patterns))
			for _, p := range entry.Patterns {
				je.AllPatterns = append(je.AllPatterns, jsonPattern(p))
			}
		}

		out.Entries = append(out.Entries, je)
	}

	return out
}

// WriteJSONResults writes the full analysis to a JSON file
func WriteJSONResults(a *Analysis, outputPath string) error {
	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(buildJSONOutput(a), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("writing JSON file: %w", err)
	}

	fmt.Printf("\nDetailed results saved to: %s\n", theme.Location.Render(outputPath))
	return nil
}
