package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

func main() {
	minLength := flag.Int("min-length", 25, "Minimum pattern length to search for")
	minOccurrences := flag.Int("min-occurrences", 5, "Minimum number of repetitions required")
	decompose := flag.Bool("decompose", false, "Analyze patterns for internal repetition (finds atomic units)")
	normalize := flag.Bool("normalize", false, "Strip whitespace and lowercase to focus on semantic patterns")
	scanName := flag.String("scan", "non-overlapping", "Occurrence scan policy: non-overlapping or overlapping")
	topN := flag.Int("top", 3, "Show top N repetitive entries in the summary")
	detailed := flag.Bool("detailed", false, "Render a detailed per-entry report")
	baseline := flag.String("baseline", "", "Compare against a baseline results file")
	output := flag.String("o", "", "Output JSON file (default: input filename with -repeats suffix)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: repscan [flags] results.json\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	if *minLength < 1 {
		fmt.Fprintf(os.Stderr, "Error: -min-length must be at least 1\n")
		os.Exit(1)
	}
	if *minOccurrences < 2 {
		fmt.Fprintf(os.Stderr, "Error: -min-occurrences must be at least 2\n")
		os.Exit(1)
	}
	if *topN < 0 {
		*topN = 0
	}

	scan := ScanPolicyByName(*scanName)
	if scan == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown scan policy %q (valid: %s)\n",
			*scanName, strings.Join(ScanPolicyNames(), ", "))
		os.Exit(1)
	}

	settings := Settings{
		MinLength:      *minLength,
		MinOccurrences: *minOccurrences,
		Decompose:      *decompose,
		Normalize:      *normalize,
		ScanPolicy:     scan.Name(),
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}

	startTime := time.Now()

	records, err := loadResults(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Phase 1: Per-entry pattern detection
	PrintScanStart(len(records), runtime.NumCPU())
	analyzeStart := time.Now()
	analysis := analyzeResults(records, settings, scan)
	PrintAnalysisComplete(time.Since(analyzeStart))

	// Phase 2: Console reporting
	PrintSummary(&analysis, *topN)
	PrintHotspots(&analysis)

	if *detailed {
		PrintDetailedReport(&analysis)
	}

	if *baseline != "" {
		if err := runCompare(&analysis, *baseline, settings, scan); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	PrintTotalSummary(&analysis, time.Since(startTime))

	// Phase 3: Detailed JSON results, always written
	if err := WriteJSONResults(&analysis, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultOutputPath inserts -repeats before the input file's extension
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)
	return filepath.Join(filepath.Dir(inputPath), stem+"-repeats"+ext)
}
