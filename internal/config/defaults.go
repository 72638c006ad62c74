package config

import (
	_ "embed"
)

//go:embed defaults/wordsearch.yaml
var defaultWordSearchYAML []byte

// Grid size limits. 26 keeps column labels to a single letter.
const (
	MinGridSize = 4
	MaxGridSize = 26
)

// DefaultWordSearchConfig returns the default word search configuration.
func DefaultWordSearchConfig() WordSearchConfig {
	return WordSearchConfig{
		Grid: GridConfig{
			Size:        10,
			MaxAttempts: 100,
		},
		Timer: TimerConfig{
			Enabled: true,
			Seconds: 60,
		},
		Flow: FlowConfig{
			AdvanceDelayMS: 2000,
		},
		Scoring: ScoringConfig{
			StarThresholds: []int{1, 3, 5, 7},
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				TimeReduction: 20,
				SizeIncrease:  2,
			},
		},
	}
}
