package sentence

// Direction controls which way Align searches for a sentence boundary.
type Direction int

const (
	// Nearest snaps to the closest boundary on either side (ties go backward).
	Nearest Direction = iota

	// Backward snaps to the nearest boundary at or before the offset.
	Backward

	// Forward snaps to the nearest boundary at or after the offset.
	Forward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "nearest"
	}
}

// Align snaps a raw byte offset to the nearest sentence boundary in the
// given direction. A boundary is the position immediately after a
// terminator run that Split would treat as a sentence end.
//
// window limits how many bytes from offset to search; window <= 0 searches
// the whole text. When no boundary exists within the window the raw offset
// is returned unchanged: alignment degrades, it never fails.
func Align(text string, offset int, dir Direction, window int) int {
	n := len(text)
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}

	switch dir {
	case Backward:
		if cut, ok := findBackward(text, offset, window); ok {
			return cut
		}
	case Forward:
		if cut, ok := findForward(text, offset, window); ok {
			return cut
		}
	default:
		back, backOK := findBackward(text, offset, window)
		fwd, fwdOK := findForward(text, offset, window)
		switch {
		case backOK && fwdOK:
			if offset-back <= fwd-offset {
				return back
			}
			return fwd
		case backOK:
			return back
		case fwdOK:
			return fwd
		}
	}
	return offset
}

// HasBoundary reports whether the text contains at least one sentence
// boundary, i.e. whether it holds a complete sentence.
func HasBoundary(text string) bool {
	for i := 0; i < len(text); i++ {
		if cutAt(text, i) {
			return true
		}
	}
	return false
}

// cutAt reports whether position i+1 is a sentence boundary: a terminator
// followed by whitespace or end of text.
func cutAt(text string, i int) bool {
	if !isTerminator(text[i]) {
		return false
	}
	return i+1 == len(text) || isSpace(text[i+1])
}

func findBackward(text string, offset, window int) (int, bool) {
	for i := offset - 1; i >= 0; i-- {
		if window > 0 && offset-(i+1) > window {
			break
		}
		if cutAt(text, i) {
			return i + 1, true
		}
	}
	return 0, false
}

func findForward(text string, offset, window int) (int, bool) {
	start := offset - 1
	if start < 0 {
		start = 0
	}
	for i := start; i < len(text); i++ {
		if i+1 < offset {
			continue
		}
		if window > 0 && (i+1)-offset > window {
			break
		}
		if cutAt(text, i) {
			return i + 1, true
		}
	}
	return 0, false
}
