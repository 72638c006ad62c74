package config

import "math"

// Floor values that keep scaled levels playable.
const (
	minTimerSeconds = 15
)

// DifficultyManager calculates per-level game parameters across a campaign.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a 0-based level index.
func (d *DifficultyManager) Level(levelIndex int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return clampF(float64(levelIndex)/maxAt, 0.0, 1.0)
}

// TimerSeconds returns the countdown for a level.
func (d *DifficultyManager) TimerSeconds(baseSeconds int, levelIndex int) int {
	level := d.Level(levelIndex)
	// Time shrinks as difficulty increases
	reduction := int(level * float64(d.cfg.Scaling.TimeReduction))
	result := baseSeconds - reduction
	if result < minTimerSeconds && baseSeconds >= minTimerSeconds {
		result = minTimerSeconds
	}
	return result
}

// GridSize returns the grid side for a level.
func (d *DifficultyManager) GridSize(baseSize int, levelIndex int) int {
	level := d.Level(levelIndex)
	// Grid grows as difficulty increases
	result := baseSize + int(level*float64(d.cfg.Scaling.SizeIncrease))
	if result > MaxGridSize {
		result = MaxGridSize
	}
	return result
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
