package sentence

// Span is a sentence's location in the original text.
// Start and End are byte offsets; spans are ordered, contiguous, and
// non-overlapping, and together with the separating whitespace they
// reconstruct the source text.
type Span struct {
	Start int
	End   int
	Text  string
}

// Split segments text into an ordered sequence of sentence spans.
//
// A sentence ends at a run of '.', '!', or '?' followed by whitespace or the
// end of the text. Text with no terminal punctuation yields a single span
// covering the whole (trimmed) text; empty or blank text yields nil.
//
// Abbreviations ("Dr.", "e.g.") are not special-cased, so they produce false
// boundaries. This is a known limitation of punctuation-based detection.
func Split(text string) []Span {
	var spans []Span
	n := len(text)
	i := 0

	for i < n {
		for i < n && isSpace(text[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i
		end := -1
		for j := i; j < n; j++ {
			if !isTerminator(text[j]) {
				continue
			}
			// Absorb a run of terminators ("...", "?!").
			k := j
			for k+1 < n && isTerminator(text[k+1]) {
				k++
			}
			if k+1 >= n || isSpace(text[k+1]) {
				end = k + 1
				break
			}
			j = k
		}
		if end < 0 {
			// No terminal punctuation: the remainder is one span.
			end = n
			for end > start && isSpace(text[end-1]) {
				end--
			}
		}

		spans = append(spans, Span{Start: start, End: end, Text: text[start:end]})
		i = end
	}

	return spans
}

// isTerminator reports whether b is sentence-ending punctuation.
func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// isSpace reports whether b is ASCII whitespace. Terminators are ASCII, so
// byte-wise checks never split a multi-byte rune.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
