package truncate

import (
	"github.com/randalmurphal/truncyate/sentence"
	"github.com/randalmurphal/truncyate/tokens"
)

// ToTokens truncates text to a token budget with the start strategy,
// keeping whole sentences. Non-positive budgets yield "".
func ToTokens(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	tr, err := New(Config{Budget: tokens.Tokens(maxTokens), Strategy: Start})
	if err != nil {
		return ""
	}
	result, _ := tr.Truncate(text)
	return result
}

// ToChars truncates text to a character budget with the start strategy,
// keeping whole sentences. Non-positive budgets yield "".
func ToChars(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	tr, err := New(Config{Budget: tokens.Chars(maxChars), Strategy: Start})
	if err != nil {
		return ""
	}
	result, _ := tr.Truncate(text)
	return result
}

// Sentences returns the text of each sentence in document order.
func Sentences(text string) []string {
	spans := sentence.Split(text)
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = sp.Text
	}
	return out
}
