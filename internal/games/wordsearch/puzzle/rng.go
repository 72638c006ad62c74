package puzzle

import "math/rand"

// Source is the random choice the generator depends on: direction, origin
// row, origin column and filler letters are all drawn through Intn.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewSource returns a seeded math/rand source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
