// Package truncyate provides precision text truncation for LLM pipelines.
//
// When feeding retrieved documents, tool output, or chat history into a
// bounded context window, naive slicing destroys meaning. truncyate trims
// text to a token or character budget while preserving sentence boundaries
// and, with the smart strategy, the sentences that matter most.
//
// Each subpackage can be used independently:
//
//   - tokens: token counting (word-based, ratio-based, or tiktoken) and budgets
//   - sentence: sentence splitting, boundary alignment, importance scoring
//   - truncate: the truncation engine with start/end/middle/smart strategies
//   - config: TOML/YAML configuration files for library and CLI defaults
//
// # Quick Start
//
// Truncate to a token budget, keeping whole sentences:
//
//	tr, err := truncate.NewWithTokens(200)
//	if err != nil {
//		// invalid budget
//	}
//	result, truncated := tr.Truncate(longText)
//
// Pick a strategy per call:
//
//	result, _ = tr.TruncateWith(longText, truncate.Middle, true)
//
// Count tokens:
//
//	import "github.com/randalmurphal/truncyate/tokens"
//	n := tokens.CountWords("Hello, World!")
//
// # Tokenization
//
// By default a "token" is a whitespace-delimited word. This is deliberate:
// it is fast, dependency-free, and close enough for budget enforcement.
// Callers who need parity with a real BPE tokenizer can plug in
// tokens.NewTiktokenCounter, which counts with OpenAI's cl100k_base (or any
// other tiktoken encoding).
//
// # Design Philosophy
//
//   - Truncation never fails: degenerate inputs and budgets fall back to
//     well-defined behavior instead of returning errors
//   - Configuration is validated once at construction, not per call
//   - No shared state: truncators are safe for concurrent use
//   - Interfaces for extensibility (tokens.Counter), concrete types for
//     simplicity
package truncyate
