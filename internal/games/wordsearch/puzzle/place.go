package puzzle

// CanPlace reports whether word fits on g starting at (row, col) in dir.
// Every cell along the path must be in bounds and either empty or already
// holding the same letter the word needs there.
func CanPlace(g *Grid, word string, row, col int, dir Direction) bool {
	n := len(word)
	if n == 0 || !isUpperWord(word) {
		return false
	}

	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return false
	}

	start := At(row, col)
	end := start.Add(dr*(n-1), dc*(n-1))
	if !g.InBounds(start) || !g.InBounds(end) {
		return false
	}

	for i := 0; i < n; i++ {
		ch := g.Letter(start.Add(dr*i, dc*i))
		if ch != empty && ch != word[i] {
			return false
		}
	}
	return true
}

// PlaceWord writes word onto g from (row, col) along dir and returns the
// written cells in placement order. It does not re-validate: callers check
// CanPlace first.
func PlaceWord(g *Grid, word string, row, col int, dir Direction) []Cell {
	dr, dc := dir.Delta()
	start := At(row, col)
	cells := make([]Cell, len(word))
	for i := 0; i < len(word); i++ {
		c := start.Add(dr*i, dc*i)
		g.set(c, word[i])
		cells[i] = c
	}
	return cells
}

// isUpperWord reports whether s consists only of the letters A-Z.
func isUpperWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
