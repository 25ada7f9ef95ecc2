package main

import "strings"

// ScanPolicy defines how occurrences of a candidate pattern are counted
type ScanPolicy interface {
	Name() string
	Occurrences(text, pattern string) []int // starting byte offsets, ascending
}

// NonOverlappingScan resumes searching after the end of each match.
// A run of k adjacent copies of a unit counts k, never more.
type NonOverlappingScan struct{}

func (s *NonOverlappingScan) Name() string {
	return "non-overlapping"
}

func (s *NonOverlappingScan) Occurrences(text, pattern string) []int {
	if pattern == "" {
		return nil
	}
	var positions []int
	start := 0
	for start <= len(text)-len(pattern) {
		pos := strings.Index(text[start:], pattern)
		if pos == -1 {
			break
		}
		positions = append(positions, start+pos)
		start += pos + len(pattern)
	}
	return positions
}

// OverlappingScan resumes searching one byte past each match start.
// Inflates counts on self-similar text; kept for parity with older result sets.
type OverlappingScan struct{}

func (s *OverlappingScan) Name() string {
	return "overlapping"
}

func (s *OverlappingScan) Occurrences(text, pattern string) []int {
	if pattern == "" {
		return nil
	}
	var positions []int
	start := 0
	for start <= len(text)-len(pattern) {
		pos := strings.Index(text[start:], pattern)
		if pos == -1 {
			break
		}
		positions = append(positions, start+pos)
		start += pos + 1
	}
	return positions
}

// scanPolicies lists the available policies in presentation order
var scanPolicies = []ScanPolicy{
	&NonOverlappingScan{},
	&OverlappingScan{},
}

// ScanPolicyByName resolves a -scan flag value, nil when unknown
func ScanPolicyByName(name string) ScanPolicy {
	for _, p := range scanPolicies {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// ScanPolicyNames returns the valid -scan flag values
func ScanPolicyNames() []string {
	names := make([]string, len(scanPolicies))
	for i, p := range scanPolicies {
		names[i] = p.Name()
	}
	return names
}
