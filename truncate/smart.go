package truncate

import (
	"sort"
	"strings"

	"github.com/randalmurphal/truncyate/sentence"
)

// truncateSmart keeps the highest-scoring sentences that fit the budget.
// Selection runs in descending score order, skipping sentences that would
// overrun the remaining budget but still trying smaller ones after; the
// output re-orders the picks by document position so it reads left to right.
func (t *Truncator) truncateSmart(text string) string {
	spans := sentence.Split(text)
	if len(spans) == 0 {
		return ""
	}

	scores := make([]float64, len(spans))
	for i, sp := range spans {
		scores[i] = t.scorer.Score(sp, i, len(spans))
	}

	order := make([]int, len(spans))
	for i := range order {
		order[i] = i
	}
	// Stable sort: equal scores keep document order, so earlier sentences
	// win ties.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	selected := make([]bool, len(spans))
	var result string
	for _, idx := range order {
		selected[idx] = true
		candidate := t.assemble(spans, selected)
		if t.budget.Fits(t.counter, candidate) {
			result = candidate
		} else {
			selected[idx] = false
		}
	}

	if result == "" {
		// Not even one sentence fits; degrade to a start cut.
		return t.truncateStart(text, false)
	}
	return result
}

// assemble joins the selected spans in document order. Adjacent picks are
// joined with a space, gaps with the middle marker.
func (t *Truncator) assemble(spans []sentence.Span, selected []bool) string {
	gap := t.middleEllipsis
	if gap == "" {
		gap = " "
	}

	var sb strings.Builder
	last := -1
	for i, sp := range spans {
		if !selected[i] {
			continue
		}
		if sb.Len() > 0 {
			if i == last+1 {
				sb.WriteString(" ")
			} else {
				sb.WriteString(gap)
			}
		}
		sb.WriteString(sp.Text)
		last = i
	}
	return sb.String()
}
