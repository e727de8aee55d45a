// Package truncate trims text to a token or character budget while
// preserving context.
//
// # Strategies
//
// Four strategies decide which portion of the text survives:
//
//   - Smart: keep the highest-scoring sentences that fit (default)
//   - Start: keep the beginning
//   - End: keep the end
//   - Middle: keep the beginning and end, drop the middle
//
// # Basic Usage
//
// Create a truncator with a budget and truncate:
//
//	tr, err := truncate.NewWithTokens(100)
//	result, truncated := tr.Truncate(text)
//
// Or configure everything explicitly:
//
//	tr, err := truncate.New(truncate.Config{
//		MaxChars: 500,
//		Strategy: truncate.Middle,
//	})
//	result, _ := tr.TruncateWith(text, truncate.End, false)
//
// # Budgets
//
// Exactly one budget should be set; when both MaxChars and MaxTokens are
// given, the character budget wins. A zero budget (tokens.Chars(0) or
// tokens.Tokens(0) via Config.Budget) yields empty output; text that
// already fits is returned unchanged with no marker.
//
// Validation happens once in New. Truncation itself never fails: missing
// sentence boundaries, budgets too small for a whole sentence, and empty
// input all fall back to defined behavior.
//
// # Sentence Preservation
//
// By default cut points snap to sentence boundaries so output never stops
// mid-sentence. Pass keepSentences=false to TruncateWith to cut exactly at
// the unit boundary instead. The Smart strategy is sentence-based either way.
//
// # Markers
//
// Removed content is marked: "..." at a trimmed start or end, " [...] " at
// gaps. Markers are reserved out of the budget, so the measured output
// length never exceeds it.
//
// # Token Counting
//
// Token budgets count whitespace-delimited words by default. Any
// tokens.Counter can be plugged in; with a non-word counter (for example
// tokens.TiktokenCounter) cuts are found by binary search over rune
// boundaries, the same technique as the word case but tokenizer-agnostic.
package truncate
