package tokens

import "unicode/utf8"

// Unit is the unit a budget is expressed in.
type Unit int

const (
	// UnitNone means no budget: measuring is undefined and everything fits.
	UnitNone Unit = iota

	// UnitChars measures text in Unicode code points.
	UnitChars

	// UnitTokens measures text with a Counter.
	UnitTokens
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitChars:
		return "chars"
	case UnitTokens:
		return "tokens"
	default:
		return "none"
	}
}

// Budget is a maximum output length in characters or tokens.
// The zero value is unbounded: everything fits and nothing is truncated.
type Budget struct {
	// Unit selects how text is measured.
	Unit Unit

	// Max is the maximum allowed measure. Zero is a valid budget meaning
	// "nothing fits"; unbounded budgets use UnitNone instead.
	Max int
}

// Chars creates a character budget.
func Chars(n int) Budget {
	return Budget{Unit: UnitChars, Max: n}
}

// Tokens creates a token budget.
func Tokens(n int) Budget {
	return Budget{Unit: UnitTokens, Max: n}
}

// Bounded returns true if the budget limits output length.
func (b Budget) Bounded() bool {
	return b.Unit != UnitNone
}

// Measure returns the length of text in the budget's unit.
// Character budgets count runes; token budgets use the counter.
// An unbounded budget measures everything as zero.
func (b Budget) Measure(c Counter, text string) int {
	switch b.Unit {
	case UnitChars:
		return utf8.RuneCountInString(text)
	case UnitTokens:
		return c.Count(text)
	default:
		return 0
	}
}

// Fits returns true if the text fits within the budget.
// Unbounded budgets always fit.
func (b Budget) Fits(c Counter, text string) bool {
	if !b.Bounded() {
		return true
	}
	return b.Measure(c, text) <= b.Max
}

// Remaining returns the budget left after accounting for used units.
func (b Budget) Remaining(used int) int {
	remaining := b.Max - used
	if remaining < 0 {
		return 0
	}
	return remaining
}
