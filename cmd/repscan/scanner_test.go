package main

import "testing"

// TestNonOverlappingOccurrences verifies the scan resumes after match end,
// so adjacent copies never double-count
func TestNonOverlappingOccurrences(t *testing.T) {
	scan := &NonOverlappingScan{}

	cases := []struct {
		text    string
		pattern string
		want    []int
	}{
		{"abababab", "abab", []int{0, 4}},
		{"aaaa", "aa", []int{0, 2}},
		{"aaaaa", "aa", []int{0, 2}},
		{"xyxyxy", "xy", []int{0, 2, 4}},
		{"hello world", "o w", []int{4}},
		{"hello world", "zzz", nil},
		{"short", "longer than text", nil},
		{"anything", "", nil},
	}

	for _, c := range cases {
		got := scan.Occurrences(c.text, c.pattern)
		if !intsEqual(got, c.want) {
			t.Errorf("Occurrences(%q, %q) = %v, expected %v", c.text, c.pattern, got, c.want)
		}
	}
}

// TestOverlappingOccurrences verifies the variant scan advances one byte
// at a time and reports shifted matches
func TestOverlappingOccurrences(t *testing.T) {
	scan := &OverlappingScan{}

	cases := []struct {
		text    string
		pattern string
		want    []int
	}{
		{"aaaa", "aa", []int{0, 1, 2}},
		{"abababab", "abab", []int{0, 2, 4}},
		{"hello world", "zzz", nil},
		{"anything", "", nil},
	}

	for _, c := range cases {
		got := scan.Occurrences(c.text, c.pattern)
		if !intsEqual(got, c.want) {
			t.Errorf("Occurrences(%q, %q) = %v, expected %v", c.text, c.pattern, got, c.want)
		}
	}
}

// TestScanPolicyByName verifies flag values resolve to the right policy
func TestScanPolicyByName(t *testing.T) {
	if p := ScanPolicyByName("non-overlapping"); p == nil || p.Name() != "non-overlapping" {
		t.Errorf("non-overlapping did not resolve: %v", p)
	}
	if p := ScanPolicyByName("overlapping"); p == nil || p.Name() != "overlapping" {
		t.Errorf("overlapping did not resolve: %v", p)
	}
	if p := ScanPolicyByName("bogus"); p != nil {
		t.Errorf("Expected nil for unknown policy, got %v", p)
	}

	names := ScanPolicyNames()
	if len(names) != 2 || names[0] != "non-overlapping" || names[1] != "overlapping" {
		t.Errorf("Unexpected policy names: %v", names)
	}
}
