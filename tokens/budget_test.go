package tokens

import "testing"

func TestBudget_ZeroValueIsUnbounded(t *testing.T) {
	var b Budget

	if b.Bounded() {
		t.Error("zero Budget should be unbounded")
	}
	if !b.Fits(NewWordCounter(), "any amount of text at all") {
		t.Error("everything should fit an unbounded budget")
	}
	if got := b.Measure(NewWordCounter(), "some text"); got != 0 {
		t.Errorf("unbounded Measure = %d, expected 0", got)
	}
}

func TestBudget_Chars(t *testing.T) {
	b := Chars(5)
	c := NewWordCounter()

	if !b.Bounded() {
		t.Error("expected bounded budget")
	}
	if b.Unit != UnitChars {
		t.Errorf("Unit = %v, expected UnitChars", b.Unit)
	}
	// Runes, not bytes: "héllo" is 5 runes, 6 bytes.
	if got := b.Measure(c, "héllo"); got != 5 {
		t.Errorf("Measure = %d, expected 5", got)
	}
	if !b.Fits(c, "héllo") {
		t.Error("expected 5 runes to fit a 5-char budget")
	}
	if b.Fits(c, "hello!") {
		t.Error("expected 6 runes not to fit a 5-char budget")
	}
}

func TestBudget_Tokens(t *testing.T) {
	b := Tokens(3)
	c := NewWordCounter()

	if b.Unit != UnitTokens {
		t.Errorf("Unit = %v, expected UnitTokens", b.Unit)
	}
	if got := b.Measure(c, "one two three four"); got != 4 {
		t.Errorf("Measure = %d, expected 4", got)
	}
	if b.Fits(c, "one two three four") {
		t.Error("expected 4 words not to fit a 3-token budget")
	}
	if !b.Fits(c, "one two three") {
		t.Error("expected 3 words to fit a 3-token budget")
	}
}

func TestBudget_ZeroMax(t *testing.T) {
	b := Tokens(0)
	c := NewWordCounter()

	if !b.Bounded() {
		t.Error("Tokens(0) should be a bounded budget, not unbounded")
	}
	if !b.Fits(c, "") {
		t.Error("empty text should fit a zero budget")
	}
	if b.Fits(c, "word") {
		t.Error("non-empty text should not fit a zero budget")
	}
}

func TestBudget_Remaining(t *testing.T) {
	b := Tokens(10)

	if got := b.Remaining(4); got != 6 {
		t.Errorf("Remaining(4) = %d, expected 6", got)
	}
	if got := b.Remaining(15); got != 0 {
		t.Errorf("Remaining(15) = %d, expected 0", got)
	}
}

func TestUnit_String(t *testing.T) {
	tests := []struct {
		unit     Unit
		expected string
	}{
		{UnitNone, "none"},
		{UnitChars, "chars"},
		{UnitTokens, "tokens"},
	}

	for _, tt := range tests {
		if got := tt.unit.String(); got != tt.expected {
			t.Errorf("Unit(%d).String() = %q, expected %q", tt.unit, got, tt.expected)
		}
	}
}
