package tokens

import (
	"strings"
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio used by
// EstimatingCounter. Approximately 4 characters equals 1 token for English.
const DefaultCharsPerToken = 4.0

// Counter estimates token counts for text.
type Counter interface {
	// Count returns the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// WordCounter counts whitespace-delimited words as tokens.
//
// This is the default tokenization rule: fast, deterministic, and
// dependency-free. It does not match any model tokenizer exactly; use
// TiktokenCounter when parity with a real BPE tokenizer is required.
type WordCounter struct{}

// NewWordCounter creates a word-based token counter.
func NewWordCounter() *WordCounter {
	return &WordCounter{}
}

// Count returns the number of whitespace-delimited words in the text.
func (c *WordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *WordCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// EstimatingCounter uses a character-to-token ratio for estimation.
// Default ratio is ~4 chars per token.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken float64
}

// NewEstimatingCounter creates a ratio-based token counter with default settings.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{
		CharsPerToken: DefaultCharsPerToken,
	}
}

// NewEstimatingCounterWithRatio creates a token counter with a custom ratio.
// If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{
		CharsPerToken: charsPerToken,
	}
}

// Count estimates the number of tokens in the given text.
// Counts runes rather than bytes so multi-byte characters don't inflate
// the estimate.
func (c *EstimatingCounter) Count(text string) int {
	runeCount := utf8.RuneCountInString(text)
	tokens := float64(runeCount) / c.CharsPerToken

	// Round to nearest integer
	return int(tokens + 0.5)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// CountWords is a convenience function using the default word counter.
func CountWords(text string) int {
	return NewWordCounter().Count(text)
}

// EstimateTokens is a convenience function using the default ratio estimator.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}
