package puzzle

import (
	"github.com/samber/lo"
)

// Orientation classifies the line between two selected cells.
type Orientation int

const (
	OrientInvalid    Orientation = iota // not a straight 8-way line
	OrientHorizontal                    // same row
	OrientVertical                      // same column
	OrientDiagonal                      // 45 degrees, any of the four ways
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientHorizontal:
		return "horizontal"
	case OrientVertical:
		return "vertical"
	case OrientDiagonal:
		return "diagonal"
	default:
		return "invalid"
	}
}

// Classify returns the orientation of the segment start→end. Identical
// cells classify as OrientInvalid.
func Classify(start, end Cell) Orientation {
	dr := end.Row - start.Row
	dc := end.Col - start.Col

	switch {
	case dr == 0 && dc != 0:
		return OrientHorizontal
	case dc == 0 && dr != 0:
		return OrientVertical
	case dr != 0 && abs(dr) == abs(dc):
		return OrientDiagonal
	default:
		return OrientInvalid
	}
}

// Extract walks from start to end inclusive and returns the letters and
// cells visited. ok is false when the segment is not a straight line or
// leaves the grid. start == end walks the single cell.
func Extract(g *Grid, start, end Cell) (letters string, cells []Cell, ok bool) {
	if start != end && Classify(start, end) == OrientInvalid {
		return "", nil, false
	}

	dr := sign(end.Row - start.Row)
	dc := sign(end.Col - start.Col)
	n := max(abs(end.Row-start.Row), abs(end.Col-start.Col)) + 1

	buf := make([]byte, n)
	cells = make([]Cell, n)
	for i := 0; i < n; i++ {
		c := start.Add(dr*i, dc*i)
		if !g.InBounds(c) {
			return "", nil, false
		}
		buf[i] = g.Letter(c)
		cells[i] = c
	}
	return string(buf), cells, true
}

// MatchResult is the outcome of resolving one selection.
type MatchResult struct {
	Matched      bool
	Word         string
	Positions    []Cell // first letter of Word to last
	Reversed     bool   // the selection was drawn last letter to first
	AlreadyFound bool   // Word was in the found set before this selection
}

// Resolve checks whether the straight line start→end spells a word from
// words, read forwards or backwards. Positions always run from the
// matched word's first letter to its last. Resolve has no side effects;
// found is only consulted to set AlreadyFound and may be nil.
//
// If the forward reading and the reversed reading are both list words the
// forward reading wins.
func Resolve(g *Grid, start, end Cell, words []string, found *FoundSet) MatchResult {
	candidate, cells, ok := Extract(g, start, end)
	if !ok {
		return MatchResult{}
	}

	res := MatchResult{Positions: cells}
	switch {
	case lo.Contains(words, candidate):
		res.Word = candidate
	case lo.Contains(words, reverseString(candidate)):
		res.Word = reverseString(candidate)
		res.Positions = lo.Reverse(cells)
		res.Reversed = true
	default:
		return MatchResult{}
	}

	res.Matched = true
	res.AlreadyFound = found.Contains(res.Word)
	return res
}

// reverseString reverses an ASCII string.
func reverseString(s string) string {
	b := []byte(s)
	lo.Reverse(b)
	return string(b)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
