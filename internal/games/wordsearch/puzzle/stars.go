package puzzle

import (
	"fmt"

	"github.com/samber/lo"
)

// MaxStars is the rating for a level where every word was found.
const MaxStars = 5

// Thresholds are the minimum found-word counts for one, two, three and four
// stars. Five stars is reserved for finding every word.
type Thresholds []int

// DefaultThresholds buckets found counts as 1-2, 3-4, 5-6 and 7+.
var DefaultThresholds = Thresholds{1, 3, 5, 7}

// Validate checks the thresholds are positive, strictly ascending and at
// most MaxStars-1 long.
func (t Thresholds) Validate() error {
	if len(t) >= MaxStars {
		return fmt.Errorf("puzzle: %d star thresholds, at most %d allowed", len(t), MaxStars-1)
	}
	for i, v := range t {
		if v <= 0 {
			return fmt.Errorf("puzzle: star threshold %d must be positive, got %d", i+1, v)
		}
		if i > 0 && v <= t[i-1] {
			return fmt.Errorf("puzzle: star thresholds must ascend, %d follows %d", v, t[i-1])
		}
	}
	return nil
}

// Stars rates a level from the number of words found out of total.
// Nothing found is zero stars; everything found is MaxStars regardless of
// the list length; otherwise the highest threshold reached decides.
func Stars(found, total int, t Thresholds) int {
	if found <= 0 {
		return 0
	}
	if total > 0 && found >= total {
		return MaxStars
	}

	stars := 0
	for i, need := range t {
		if found >= need {
			stars = i + 1
		}
	}
	return min(stars, MaxStars-1)
}

// AverageStars returns the mean rating over levels, or 0 for none.
func AverageStars(levels []int) float64 {
	if len(levels) == 0 {
		return 0
	}
	return float64(lo.Sum(levels)) / float64(len(levels))
}
