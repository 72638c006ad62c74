package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
)

// LoadWordSearch loads word search configuration.
// Search order: customPath -> ~/.wordsearch/configs/wordsearch.yaml -> ./configs/wordsearch.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped on failure.
func LoadWordSearch(customPath string) (WordSearchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WordSearchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseWordSearch(data)
		if err != nil {
			return WordSearchConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("wordsearch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseWordSearch(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/wordsearch.yaml"); err == nil {
		if cfg, err := ParseWordSearch(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseWordSearch(defaultWordSearchYAML)
	if err != nil {
		return DefaultWordSearchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseWordSearch decodes YAML over the default config and validates it.
func ParseWordSearch(data []byte) (WordSearchConfig, error) {
	cfg := DefaultWordSearchConfig()
	// Let the file replace the default list instead of merging into it.
	cfg.Scoring.StarThresholds = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WordSearchConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Scoring.StarThresholds == nil {
		cfg.Scoring.StarThresholds = DefaultWordSearchConfig().Scoring.StarThresholds
	}
	if err := cfg.Validate(); err != nil {
		return WordSearchConfig{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the game cannot run with.
func (c WordSearchConfig) Validate() error {
	if c.Grid.Size < MinGridSize || c.Grid.Size > MaxGridSize {
		return fmt.Errorf("grid.size %d out of range [%d, %d]", c.Grid.Size, MinGridSize, MaxGridSize)
	}
	if c.Grid.MaxAttempts < 1 {
		return fmt.Errorf("grid.max_attempts must be at least 1, got %d", c.Grid.MaxAttempts)
	}
	if c.Timer.Enabled && c.Timer.Seconds < 1 {
		return fmt.Errorf("timer.seconds must be at least 1 when the timer is enabled, got %d", c.Timer.Seconds)
	}
	if c.Flow.AdvanceDelayMS < 0 {
		return fmt.Errorf("flow.advance_delay_ms must not be negative, got %d", c.Flow.AdvanceDelayMS)
	}
	if err := puzzle.Thresholds(c.Scoring.StarThresholds).Validate(); err != nil {
		return fmt.Errorf("scoring.star_thresholds: %w", err)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "level":
	default:
		return fmt.Errorf("difficulty.progression.type %q must be \"level\" or \"none\"", c.Difficulty.Progression.Type)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordsearch", "configs", filename)
}

// ApplyWordSearchPreset modifies the config based on a difficulty preset.
// Fixed keeps the loaded values and turns progression off; the others set
// the timer and grid size and turn progression on.
func ApplyWordSearchPreset(cfg *WordSearchConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Timer.Seconds = 90
		cfg.Grid.Size = 10
	case DifficultyNormal:
		cfg.Timer.Seconds = 60
		cfg.Grid.Size = 10
	case DifficultyHard:
		cfg.Timer.Seconds = 45
		cfg.Grid.Size = 12
	default:
		return
	}
	cfg.Difficulty.Enabled = true
}
