package main

import "strings"

// findInternalRepetition checks whether a pattern is built from a smaller
// repeating unit, e.g. "abcabcabc" decomposes into "abc" repeated 3 times.
// Unit lengths are tried shortest first so the smallest (atomic) unit wins.
// A trailing partial copy of the unit is allowed and yields a fractional
// repetition count. Returns nil when the pattern has no internal structure.
func findInternalRepetition(pattern string) *InternalRepetition {
	for unitLen := 1; unitLen <= len(pattern)/2; unitLen++ {
		unit := pattern[:unitLen]
		fullRepeats := len(pattern) / unitLen

		if strings.Repeat(unit, fullRepeats) != pattern[:fullRepeats*unitLen] {
			continue
		}

		// Any leftover bytes must be a prefix of the unit
		remainder := len(pattern) % unitLen
		if remainder != 0 && pattern[len(pattern)-remainder:] != unit[:remainder] {
			continue
		}

		return &InternalRepetition{
			Unit:        unit,
			Repetitions: float64(len(pattern)) / float64(unitLen),
			IsExact:     remainder == 0,
		}
	}
	return nil
}
