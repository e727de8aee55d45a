package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Default weights for the scoring components. They sum to 1 so scores stay
// comparable when weights are customized individually.
const (
	DefaultPositionWeight = 0.5
	DefaultLengthWeight   = 0.2
	DefaultKeywordWeight  = 0.3
)

// indicatorTerms are words that signal an important sentence: conclusions,
// enumerations, imperatives.
var indicatorTerms = map[string]struct{}{
	"important": {}, "significant": {}, "crucial": {}, "essential": {},
	"critical": {}, "conclusion": {}, "therefore": {}, "thus": {},
	"result": {}, "summary": {}, "first": {}, "second": {}, "third": {},
	"finally": {}, "lastly": {}, "must": {}, "should": {}, "key": {},
	"main": {},
}

// Scorer assigns heuristic importance scores to sentences.
//
// score = PositionWeight*position + LengthWeight*length + KeywordWeight*keyword
//
// where position follows a U-shaped curve (document openings and closings
// score highest), length favors sentences that are neither very short nor
// very long, and keyword measures information density via capitalized words,
// numerals, and indicator terms.
type Scorer struct {
	PositionWeight float64
	LengthWeight   float64
	KeywordWeight  float64
}

// DefaultScorer returns a scorer with the default weights.
func DefaultScorer() Scorer {
	return Scorer{
		PositionWeight: DefaultPositionWeight,
		LengthWeight:   DefaultLengthWeight,
		KeywordWeight:  DefaultKeywordWeight,
	}
}

// Score returns the importance of the index-th of total sentences.
// Each component is in [0, 1], so with default weights the score is too.
func (s Scorer) Score(sp Span, index, total int) float64 {
	return s.PositionWeight*positionWeight(index, total) +
		s.LengthWeight*lengthWeight(sp.Text) +
		s.KeywordWeight*keywordWeight(sp.Text)
}

// positionWeight is U-shaped: the first and last sentences score highest,
// sentences near either edge score above the flat middle.
func positionWeight(index, total int) float64 {
	if total <= 1 {
		return 1.0
	}
	switch {
	case index == 0 || index == total-1:
		return 1.0
	case index <= 2 || index >= total-3:
		return 0.7
	default:
		return 0.2
	}
}

// lengthWeight favors mid-length sentences. Very short fragments carry
// little content; very long ones eat the budget.
func lengthWeight(text string) float64 {
	words := len(strings.Fields(text))
	switch {
	case words >= 8 && words <= 25:
		return 1.0
	case words >= 4 && words <= 40:
		return 0.6
	default:
		return 0.2
	}
}

// keywordWeight counts capitalized words (past the first), numerals, and
// indicator terms as a proxy for informational density. Quoted material
// gets a small bump.
func keywordWeight(text string) float64 {
	var hits int
	for i, w := range strings.Fields(text) {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		if w == "" {
			continue
		}
		if _, ok := indicatorTerms[strings.ToLower(w)]; ok {
			hits += 2
			continue
		}
		if containsDigit(w) {
			hits++
			continue
		}
		if i > 0 && startsUpper(w) {
			hits++
		}
	}

	weight := float64(hits) * 0.25
	if strings.ContainsAny(text, `"'`) {
		weight += 0.1
	}
	if weight > 1 {
		weight = 1
	}
	return weight
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
