// Package sentence provides sentence segmentation, boundary alignment, and
// heuristic importance scoring for plain text.
//
// Splitting is punctuation-based: a sentence ends at '.', '!', or '?'
// followed by whitespace or end of text. This is fast and tokenizer-free but
// treats abbreviations as boundaries; that trade-off is intentional.
//
//	spans := sentence.Split("First point. Second point.")
//	// spans[0].Text == "First point.", spans[1].Text == "Second point."
//
// Align snaps an arbitrary cut position (for example where a length budget
// ran out) to a sentence boundary so truncation doesn't cut mid-sentence:
//
//	cut := sentence.Align(text, rawOffset, sentence.Backward, 0)
//
// Scorer ranks sentences by position, length, and keyword density, the
// signals behind the smart truncation strategy:
//
//	scorer := sentence.DefaultScorer()
//	score := scorer.Score(spans[0], 0, len(spans))
package sentence
