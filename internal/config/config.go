// Package config provides YAML-based game configuration loading and
// difficulty management for the word search game.
package config

// WordSearchConfig contains all configuration for the word search game.
type WordSearchConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Timer      TimerConfig      `yaml:"timer"`
	Flow       FlowConfig       `yaml:"flow"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines puzzle generation parameters.
type GridConfig struct {
	Size        int `yaml:"size"`         // Cells per side
	MaxAttempts int `yaml:"max_attempts"` // Placement attempts per word
}

// TimerConfig defines the per-level countdown.
type TimerConfig struct {
	Enabled bool `yaml:"enabled"`
	Seconds int  `yaml:"seconds"`
}

// FlowConfig defines pacing between levels.
type FlowConfig struct {
	AdvanceDelayMS int `yaml:"advance_delay_ms"` // Delay after a submission before the next level
}

// ScoringConfig defines the star rating buckets.
type ScoringConfig struct {
	StarThresholds []int `yaml:"star_thresholds"`
}

// DifficultyConfig defines how levels get harder through a campaign.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases across levels.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeReduction int `yaml:"time_reduction"` // Seconds removed from the timer at max difficulty
	SizeIncrease  int `yaml:"size_increase"`  // Cells added to the grid side at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
