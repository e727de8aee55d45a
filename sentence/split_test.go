package sentence

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "blank text",
			text:     "   \n\t  ",
			expected: nil,
		},
		{
			name:     "single sentence",
			text:     "Just one sentence here.",
			expected: []string{"Just one sentence here."},
		},
		{
			name:     "multiple sentences",
			text:     "First point. Second point! Third point?",
			expected: []string{"First point.", "Second point!", "Third point?"},
		},
		{
			name:     "no terminal punctuation yields one span",
			text:     "a fragment with no ending",
			expected: []string{"a fragment with no ending"},
		},
		{
			name:     "trailing fragment without punctuation",
			text:     "Complete sentence. trailing fragment",
			expected: []string{"Complete sentence.", "trailing fragment"},
		},
		{
			name:     "terminator runs stay together",
			text:     "Wait... Really?! Yes.",
			expected: []string{"Wait...", "Really?!", "Yes."},
		},
		{
			name:     "newlines separate sentences",
			text:     "Line one.\nLine two.",
			expected: []string{"Line one.", "Line two."},
		},
		{
			name:     "period without following whitespace does not split",
			text:     "version 1.2.3 shipped today",
			expected: []string{"version 1.2.3 shipped today"},
		},
		{
			name: "abbreviations split (documented limitation)",
			text: "Dr. Smith agreed.",
			expected: []string{
				"Dr.",
				"Smith agreed.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Split(tt.text)
			if len(spans) != len(tt.expected) {
				t.Fatalf("Split(%q) returned %d spans, expected %d: %v",
					tt.text, len(spans), len(tt.expected), spans)
			}
			for i, sp := range spans {
				if sp.Text != tt.expected[i] {
					t.Errorf("span %d = %q, expected %q", i, sp.Text, tt.expected[i])
				}
			}
		})
	}
}

func TestSplit_OffsetsMatchSource(t *testing.T) {
	text := "  One. Two!  Three? tail"
	spans := Split(text)

	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d", len(spans))
	}

	prevEnd := -1
	for i, sp := range spans {
		if text[sp.Start:sp.End] != sp.Text {
			t.Errorf("span %d: text[%d:%d] = %q, want %q",
				i, sp.Start, sp.End, text[sp.Start:sp.End], sp.Text)
		}
		if sp.Start <= prevEnd {
			t.Errorf("span %d overlaps previous (start %d, prev end %d)", i, sp.Start, prevEnd)
		}
		if gap := text[max(prevEnd, 0):sp.Start]; strings.TrimSpace(gap) != "" {
			t.Errorf("non-whitespace between spans: %q", gap)
		}
		prevEnd = sp.End
	}
}

func TestSplit_MultiByteText(t *testing.T) {
	text := "Héllo wörld. Ça va bien!"
	spans := Split(text)

	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Text != "Héllo wörld." {
		t.Errorf("first span = %q", spans[0].Text)
	}
	if spans[1].Text != "Ça va bien!" {
		t.Errorf("second span = %q", spans[1].Text)
	}
}
