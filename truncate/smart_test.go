package truncate

import (
	"strings"
	"testing"

	"github.com/randalmurphal/truncyate/sentence"
)

func TestSmart_KeepsEdgesAndMarksGap(t *testing.T) {
	text := "Alpha is first. middle filler one here. middle filler two here. Omega is last."
	tr := mustNew(t, Config{MaxTokens: 8})

	result, truncated := tr.TruncateWith(text, Smart, true)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if result != "Alpha is first. [...] Omega is last." {
		t.Errorf("result = %q, expected %q", result, "Alpha is first. [...] Omega is last.")
	}
}

func TestSmart_OutputPreservesDocumentOrder(t *testing.T) {
	text := "First sentence opens the document properly today. " +
		"Some middle filler without much to say at all. " +
		"More middle filler without much to say either. " +
		"In conclusion the Project delivered 42% gains in 2024. " +
		"Last sentence closes the document properly today."
	tr := mustNew(t, Config{MaxTokens: 25})

	result, _ := tr.TruncateWith(text, Smart, true)

	// Whatever was selected must appear in source order.
	var positions []int
	for _, s := range Sentences(text) {
		if idx := strings.Index(result, s); idx >= 0 {
			positions = append(positions, idx)
		}
	}
	if len(positions) < 2 {
		t.Fatalf("expected at least two selected sentences in %q", result)
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] < positions[i-1] {
			t.Errorf("selected sentences out of document order in %q", result)
		}
	}
}

func TestSmart_SkipsOverrunningSentenceButTriesSmaller(t *testing.T) {
	// The long middle sentence scores well but cannot fit after the edges
	// are taken; the tiny one still can.
	text := "Start here. " +
		"This enormous sentence would certainly overrun whatever budget remains after the edges. " +
		"ok. " +
		"End here."
	tr := mustNew(t, Config{MaxTokens: 7})

	result, _ := tr.TruncateWith(text, Smart, true)

	if strings.Contains(result, "enormous") {
		t.Errorf("overrunning sentence should have been skipped: %q", result)
	}
	if !strings.Contains(result, "Start here.") || !strings.Contains(result, "End here.") {
		t.Errorf("edge sentences should survive: %q", result)
	}
}

func TestSmart_AdjacentSelectionsJoinWithoutGapMarker(t *testing.T) {
	text := "Aa bb. Cc dd. This much longer sentence will not fit the budget at all here."
	tr := mustNew(t, Config{MaxTokens: 6})

	result, truncated := tr.TruncateWith(text, Smart, true)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if result != "Aa bb. Cc dd." {
		t.Errorf("result = %q, expected %q", result, "Aa bb. Cc dd.")
	}
	if strings.Contains(result, "[...]") {
		t.Errorf("adjacent sentences should not get a gap marker: %q", result)
	}
}

func TestSmart_NoSentenceFitsFallsBackToStartCut(t *testing.T) {
	text := "This single sentence has more than four words total."
	tr := mustNew(t, Config{MaxTokens: 3})

	result, _ := tr.TruncateWith(text, Smart, true)
	if result != "This single..." {
		t.Errorf("result = %q, expected %q", result, "This single...")
	}
}

func TestSmart_CustomScorer(t *testing.T) {
	// Keyword-only scoring ignores position, so the dense middle sentence
	// beats the bland edges.
	scorer := sentence.Scorer{KeywordWeight: 1}
	text := "bland words open it up here now. " +
		"Project Atlas shipped 99 features in 2024. " +
		"bland words close it out here now."
	tr := mustNew(t, Config{MaxTokens: 8, Scorer: &scorer})

	result, _ := tr.TruncateWith(text, Smart, true)
	if !strings.Contains(result, "Project Atlas") {
		t.Errorf("keyword-dense sentence should be selected: %q", result)
	}
}
