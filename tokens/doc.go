// Package tokens provides token counting and length budgets for text truncation.
//
// # Counters
//
// The Counter interface has three implementations:
//
//	counter := tokens.NewWordCounter()        // whitespace-delimited words (default)
//	counter := tokens.NewEstimatingCounter()  // ~4 chars per token heuristic
//	counter, err := tokens.NewTiktokenCounter("cl100k_base")  // exact BPE counts
//
// The word counter is the pinned default: a "token" is a whitespace-delimited
// word, matching how most lightweight RAG pipelines budget text. It will not
// match a model tokenizer exactly; TiktokenCounter exists for that.
//
// For one-off counting:
//
//	n := tokens.CountWords("Hello, world!")      // 2
//	n := tokens.EstimateTokens("Hello, world!")  // ~3
//
// # Budgets
//
// Budget expresses a maximum length in characters or tokens:
//
//	b := tokens.Tokens(200)
//	b.Fits(counter, text)          // true if text measures <= 200 tokens
//	b.Measure(counter, text)       // length in the budget's unit
//
// The zero Budget is unbounded (everything fits), which is distinct from
// tokens.Chars(0) or tokens.Tokens(0): those are real budgets that nothing
// non-empty fits into.
package tokens
