package sentence

import "testing"

func TestAlign(t *testing.T) {
	//      0123456789012345678
	text := "One. Two. Three end"

	tests := []struct {
		name     string
		offset   int
		dir      Direction
		window   int
		expected int
	}{
		{
			name:     "backward from mid-sentence",
			offset:   7, // inside "Two."
			dir:      Backward,
			expected: 4, // just after "One."
		},
		{
			name:     "backward already at boundary",
			offset:   9, // just after "Two."
			dir:      Backward,
			expected: 9,
		},
		{
			name:     "forward from mid-sentence",
			offset:   2, // inside "One."
			dir:      Forward,
			expected: 4,
		},
		{
			name:     "forward already at boundary",
			offset:   4,
			dir:      Forward,
			expected: 4,
		},
		{
			name:     "nearest picks closer boundary",
			offset:   8, // 4 is distance 4, 9 is distance 1
			dir:      Nearest,
			expected: 9,
		},
		{
			name:     "backward from the unterminated tail",
			offset:   13,
			dir:      Backward,
			expected: 9,
		},
		{
			name:     "no boundary in direction falls back to raw offset",
			offset:   15, // "Three end" has no terminator ahead
			dir:      Forward,
			expected: 15,
		},
		{
			name:     "window too small falls back to raw offset",
			offset:   8,
			dir:      Backward,
			window:   2, // boundary at 4 is 4 away
			expected: 8,
		},
		{
			name:     "offset clamped to text length",
			offset:   100,
			dir:      Backward,
			expected: 9,
		},
		{
			name:     "negative offset clamped to zero",
			offset:   -5,
			dir:      Forward,
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Align(text, tt.offset, tt.dir, tt.window)
			if got != tt.expected {
				t.Errorf("Align(%d, %v, %d) = %d, expected %d",
					tt.offset, tt.dir, tt.window, got, tt.expected)
			}
		})
	}
}

func TestAlign_TerminatorAtEndOfText(t *testing.T) {
	text := "Only sentence."
	got := Align(text, 10, Forward, 0)
	if got != len(text) {
		t.Errorf("Align = %d, expected %d (after final terminator)", got, len(text))
	}
}

func TestAlign_NoBoundaryAnywhere(t *testing.T) {
	text := "no punctuation at all"
	for _, dir := range []Direction{Backward, Forward, Nearest} {
		if got := Align(text, 10, dir, 0); got != 10 {
			t.Errorf("Align(%v) = %d, expected raw offset 10", dir, got)
		}
	}
}

func TestHasBoundary(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"A complete sentence.", true},
		{"Ends mid", false},
		{"", false},
		{"version 1.2.3", false},
		{"Done. And more", true},
	}

	for _, tt := range tests {
		if got := HasBoundary(tt.text); got != tt.expected {
			t.Errorf("HasBoundary(%q) = %v, expected %v", tt.text, got, tt.expected)
		}
	}
}
