package puzzle

// DefaultMaxAttempts is how many random placements are tried per word
// before the word is given up on.
const DefaultMaxAttempts = 100

// PlacedWord records where the generator put a word.
type PlacedWord struct {
	Word      string
	Start     Cell
	Direction Direction
	Cells     []Cell // placement order, first letter first
}

// End returns the cell holding the word's last letter.
func (p PlacedWord) End() Cell {
	if len(p.Cells) == 0 {
		return p.Start
	}
	return p.Cells[len(p.Cells)-1]
}

// Result is the outcome of a generation run.
type Result struct {
	Grid    *Grid
	Placed  []PlacedWord
	Skipped []string // words that could not be placed, in input order
}

// Placement returns the placement for word, if it was placed.
func (r Result) Placement(word string) (PlacedWord, bool) {
	for _, p := range r.Placed {
		if p.Word == word {
			return p, true
		}
	}
	return PlacedWord{}, false
}

// Generator builds word-search grids.
type Generator struct {
	// MaxAttempts bounds the random placements tried per word.
	MaxAttempts int
}

// DefaultGenerator returns a generator with the default attempt budget.
func DefaultGenerator() Generator {
	return Generator{MaxAttempts: DefaultMaxAttempts}
}

// Generate builds a size×size grid with the default generator.
func Generate(size int, words []string, rng Source) Result {
	return DefaultGenerator().Generate(size, words, rng)
}

// Generate builds a size×size grid and tries to embed every word.
//
// Words are handled in order. Each gets up to MaxAttempts tries at a random
// direction and origin; the first placement that fits wins. Earlier words
// are never moved to make room for later ones. A word that runs out of
// attempts is skipped and listed in Result.Skipped. Finally every empty
// cell is filled with a random letter.
func (gen Generator) Generate(size int, words []string, rng Source) Result {
	attempts := gen.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	g := NewGrid(size)
	res := Result{Grid: g}

	for _, word := range words {
		if p, ok := gen.place(g, word, attempts, rng); ok {
			res.Placed = append(res.Placed, p)
		} else {
			res.Skipped = append(res.Skipped, word)
		}
	}

	fill(g, rng)
	return res
}

// place runs the bounded attempt loop for one word.
func (gen Generator) place(g *Grid, word string, attempts int, rng Source) (PlacedWord, bool) {
	// No orientation can hold these; skip without spending draws.
	if g.Size() == 0 || len(word) == 0 || len(word) > g.Size() || !isUpperWord(word) {
		return PlacedWord{}, false
	}

	for i := 0; i < attempts; i++ {
		dir := PlacementDirections[rng.Intn(len(PlacementDirections))]
		row := rng.Intn(g.Size())
		col := rng.Intn(g.Size())

		if CanPlace(g, word, row, col, dir) {
			cells := PlaceWord(g, word, row, col, dir)
			return PlacedWord{
				Word:      word,
				Start:     At(row, col),
				Direction: dir,
				Cells:     cells,
			}, true
		}
	}
	return PlacedWord{}, false
}

// fill puts a uniformly random letter in every empty cell, row by row.
func fill(g *Grid, rng Source) {
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			if cell := At(r, c); g.IsEmpty(cell) {
				g.set(cell, byte('A'+rng.Intn(26)))
			}
		}
	}
}
