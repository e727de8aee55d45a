package truncate

import (
	"strings"
	"unicode"

	"github.com/randalmurphal/truncyate/sentence"
	"github.com/randalmurphal/truncyate/tokens"
)

// cutSpace is trimmed from cut edges before markers are attached.
const cutSpace = " \t\n\r\f\v"

// truncateStart keeps the beginning of the text.
func (t *Truncator) truncateStart(text string, keep bool) string {
	max := t.budget.Max - t.markerCost(t.ellipsis)
	if max <= 0 {
		// The marker alone would blow the budget: hard cut, no marker.
		return strings.TrimRight(text[:t.prefixOffset(text, t.budget.Max)], cutSpace)
	}

	off := t.prefixOffset(text, max)
	if keep {
		off = sentence.Align(text, off, sentence.Backward, t.alignWindow)
	}
	return strings.TrimRight(text[:off], cutSpace) + t.ellipsis
}

// truncateEnd keeps the end of the text.
func (t *Truncator) truncateEnd(text string, keep bool) string {
	max := t.budget.Max - t.markerCost(t.ellipsis)
	if max <= 0 {
		return strings.TrimLeft(text[t.suffixOffset(text, t.budget.Max):], cutSpace)
	}

	start := t.suffixOffset(text, max)
	if keep {
		aligned := sentence.Align(text, start, sentence.Forward, t.alignWindow)
		// Snapping to the final terminator would leave nothing; keep the
		// raw cut instead, truncation never returns less than it could.
		if aligned < len(text) {
			start = aligned
		}
	}
	return t.ellipsis + strings.TrimLeft(text[start:], cutSpace)
}

// truncateMiddle keeps the beginning and end, dropping the middle.
func (t *Truncator) truncateMiddle(text string, keep bool) string {
	max := t.budget.Max - t.markerCost(t.middleEllipsis)
	if max <= 1 {
		return t.truncateStart(text, keep)
	}

	headMax := int(float64(max) * t.middleRatio)
	if headMax < 1 {
		headMax = 1
	}
	if headMax >= max {
		headMax = max - 1
	}
	tailMax := max - headMax

	headOff := t.prefixOffset(text, headMax)
	tailOff := t.suffixOffset(text, tailMax)

	if keep {
		headOff = sentence.Align(text, headOff, sentence.Backward, t.alignWindow)
		if aligned := sentence.Align(text, tailOff, sentence.Forward, t.alignWindow); aligned < len(text) {
			tailOff = aligned
		}
		// The budget cannot hold one whole sentence per side; the defined
		// tie-break is to degrade to a start cut.
		if !sentence.HasBoundary(text[:headOff]) || !sentence.HasBoundary(text[tailOff:]) {
			return t.truncateStart(text, keep)
		}
	}
	if tailOff < headOff {
		tailOff = headOff
	}

	head := strings.TrimRight(text[:headOff], cutSpace)
	tail := strings.TrimLeft(text[tailOff:], cutSpace)
	return head + t.middleEllipsis + tail
}

// markerCost measures a marker in the budget's unit so it can be reserved
// up front.
func (t *Truncator) markerCost(marker string) int {
	if marker == "" {
		return 0
	}
	return t.budget.Measure(t.counter, marker)
}

// prefixOffset returns the byte offset of the longest prefix measuring at
// most max units, cut at a unit boundary: a rune for character budgets, a
// whole word for word-counted token budgets. Other counters binary-search
// the longest fitting prefix over rune boundaries.
func (t *Truncator) prefixOffset(text string, max int) int {
	if max <= 0 {
		return 0
	}

	if t.budget.Unit == tokens.UnitChars {
		count := 0
		for i := range text {
			if count == max {
				return i
			}
			count++
		}
		return len(text)
	}

	if _, ok := t.counter.(*tokens.WordCounter); ok {
		fields := fieldSpans(text)
		if max >= len(fields) {
			return len(text)
		}
		return fields[max-1][1]
	}

	runes := []rune(text)
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.counter.FitsInLimit(string(runes[:mid]), max) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return len(string(runes[:low]))
}

// suffixOffset returns the byte offset where the longest suffix measuring
// at most max units begins. Mirror of prefixOffset.
func (t *Truncator) suffixOffset(text string, max int) int {
	if max <= 0 {
		return len(text)
	}

	if t.budget.Unit == tokens.UnitChars {
		indices := runeStarts(text)
		if max >= len(indices) {
			return 0
		}
		return indices[len(indices)-max]
	}

	if _, ok := t.counter.(*tokens.WordCounter); ok {
		fields := fieldSpans(text)
		if max >= len(fields) {
			return 0
		}
		return fields[len(fields)-max][0]
	}

	runes := []rune(text)
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high) / 2
		if t.counter.FitsInLimit(string(runes[mid:]), max) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return len(string(runes[:low]))
}

// fieldSpans returns the byte ranges of whitespace-delimited words,
// consistent with strings.Fields.
func fieldSpans(text string) [][2]int {
	var spans [][2]int
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, [2]int{start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, [2]int{start, len(text)})
	}
	return spans
}

// runeStarts returns the byte offset of every rune in the text.
func runeStarts(text string) []int {
	indices := make([]int, 0, len(text))
	for i := range text {
		indices = append(indices, i)
	}
	return indices
}
