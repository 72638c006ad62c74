// Package puzzle implements word-search grid generation, placement
// validation and selection matching. It is pure logic: no terminal, no
// storage, no clocks. Randomness comes in through Source.
package puzzle

import (
	"fmt"
	"strings"
)

// Cell is a 0-indexed grid coordinate.
type Cell struct {
	Row int
	Col int
}

// At is a convenience constructor for Cell.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Add returns the cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the orientations the generator places words in.
type Direction int

const (
	DirHorizontal Direction = iota // left to right
	DirVertical                    // top to bottom
	DirDiagonal                    // top-left to bottom-right
)

// PlacementDirections lists every direction the generator may pick.
// Upward, leftward and anti-diagonal placements are never attempted.
var PlacementDirections = []Direction{DirHorizontal, DirVertical, DirDiagonal}

// Delta returns the per-letter row and column step for the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirHorizontal:
		return 0, 1
	case DirVertical:
		return 1, 0
	case DirDiagonal:
		return 1, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirHorizontal:
		return "horizontal"
	case DirVertical:
		return "vertical"
	case DirDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// empty marks a cell that no word has claimed yet.
const empty byte = 0

// Grid is a square matrix of letters. During generation some cells may be
// empty; a finished grid holds exactly one letter A-Z per cell.
type Grid struct {
	size  int
	cells []byte // row-major
}

// NewGrid creates an empty size×size grid. Negative sizes produce a 0×0 grid.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:  size,
		cells: make([]byte, size*size),
	}
}

// ParseGrid builds a grid from rows of letters. All rows must have the same
// length as the number of rows. A '.' marks an empty cell.
func ParseGrid(rows ...string) (*Grid, error) {
	g := NewGrid(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("puzzle: row %d has %d letters, want %d", r, len(row), len(rows))
		}
		for c := 0; c < len(row); c++ {
			ch := row[c]
			switch {
			case ch == '.':
				continue
			case ch >= 'A' && ch <= 'Z':
				g.set(At(r, c), ch)
			default:
				return nil, fmt.Errorf("puzzle: invalid letter %q at %v", ch, At(r, c))
			}
		}
	}
	return g, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Letter returns the letter at c, or 0 if c is empty or out of bounds.
func (g *Grid) Letter(c Cell) byte {
	if !g.InBounds(c) {
		return empty
	}
	return g.cells[c.Row*g.size+c.Col]
}

// IsEmpty reports whether c is in bounds and unclaimed.
func (g *Grid) IsEmpty(c Cell) bool {
	return g.InBounds(c) && g.Letter(c) == empty
}

func (g *Grid) set(c Cell, ch byte) {
	g.cells[c.Row*g.size+c.Col] = ch
}

// Complete reports whether every cell holds a letter A-Z.
func (g *Grid) Complete() bool {
	for _, ch := range g.cells {
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}

// Rows returns the grid as strings, one per row. Empty cells render as '.'.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	buf := make([]byte, g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			ch := g.Letter(At(r, c))
			if ch == empty {
				ch = '.'
			}
			buf[c] = ch
		}
		rows[r] = string(buf)
	}
	return rows
}

// String renders the grid with letters separated by spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < len(row); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(row[c])
		}
	}
	return sb.String()
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{size: g.size, cells: make([]byte, len(g.cells))}
	copy(clone.cells, g.cells)
	return clone
}
