package main

import "sort"

// findRepeatingPatterns finds substrings of text that repeat at least
// minOccurrences times under the given scan policy, prioritizing frequency
// over pattern length.
//
// Each unclaimed start offset seeds a candidate that grows from minLength
// one byte at a time while it still repeats enough; the longest surviving
// candidate wins and claims every byte of every occurrence. Claimed bytes
// are skipped as seeds but still count as occurrence territory for later
// candidates.
func findRepeatingPatterns(text string, minLength, minOccurrences int, scan ScanPolicy) []PatternMatch {
	if len(text) < minLength*minOccurrences {
		return nil
	}

	claimed := make([]bool, len(text))
	var results []PatternMatch

	for start := 0; start <= len(text)-minLength; start++ {
		if claimed[start] {
			continue
		}

		var best *PatternMatch
		length := minLength

		// Grow the candidate while it still repeats enough times
		for start+length <= len(text) {
			pattern := text[start : start+length]
			positions := scan.Occurrences(text, pattern)
			if len(positions) < minOccurrences {
				break
			}
			best = &PatternMatch{
				Pattern:   pattern,
				Count:     len(positions),
				Positions: positions,
			}
			length++
		}

		if best != nil {
			results = append(results, *best)
			for _, pos := range best.Positions {
				for i := pos; i < pos+len(best.Pattern); i++ {
					claimed[i] = true
				}
			}
		}
	}

	sortMatches(results)
	return results
}

// sortMatches orders matches by occurrence count descending, then pattern
// length descending. The sort is stable so ties keep discovery order.
func sortMatches(matches []PatternMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Count != matches[j].Count {
			return matches[i].Count > matches[j].Count
		}
		return len(matches[i].Pattern) > len(matches[j].Pattern)
	})
}
