// Package levels loads word search level packs. A pack is an ordered list
// of categories; each category is one level and its words are the words
// hidden in that level's grid.
package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
)

//go:embed default.yaml
var defaultPackYAML []byte

// Category is one level: a themed word list.
type Category struct {
	Name  string
	Words []string
}

// Pack is an ordered set of levels.
type Pack struct {
	Name       string
	Size       int // Grid side override; 0 means use the game config
	Categories []Category
	Source     string // File the pack came from, or "embedded"
}

// yamlPack is the on-disk format.
type yamlPack struct {
	Name       string         `yaml:"name"`
	Size       int            `yaml:"size,omitempty"`
	Categories []yamlCategory `yaml:"categories"`
}

type yamlCategory struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// Len returns the number of levels.
func (p Pack) Len() int {
	return len(p.Categories)
}

// Level returns the category for a 0-based level index.
func (p Pack) Level(index int) (Category, bool) {
	if index < 0 || index >= len(p.Categories) {
		return Category{}, false
	}
	return p.Categories[index], true
}

// Names returns the category names in level order.
func (p Pack) Names() []string {
	return lo.Map(p.Categories, func(c Category, _ int) string { return c.Name })
}

// Parse decodes and normalizes a YAML level pack. Words are trimmed and
// upper-cased; a word with characters outside A-Z, or a word repeated
// within one category, is an error.
func Parse(data []byte) (Pack, error) {
	var yp yamlPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yp.Size != 0 && (yp.Size < config.MinGridSize || yp.Size > config.MaxGridSize) {
		return Pack{}, fmt.Errorf("size must be 0 or in %d..%d, got %d",
			config.MinGridSize, config.MaxGridSize, yp.Size)
	}
	if len(yp.Categories) == 0 {
		return Pack{}, fmt.Errorf("pack has no categories")
	}

	pack := Pack{
		Name:       strings.TrimSpace(yp.Name),
		Size:       yp.Size,
		Categories: make([]Category, 0, len(yp.Categories)),
	}

	for i, yc := range yp.Categories {
		name := strings.TrimSpace(yc.Name)
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		if len(yc.Words) == 0 {
			return Pack{}, fmt.Errorf("category %q has no words", name)
		}

		words, err := NormalizeWords(yc.Words)
		if err != nil {
			return Pack{}, fmt.Errorf("category %q: %w", name, err)
		}

		pack.Categories = append(pack.Categories, Category{Name: name, Words: words})
	}

	return pack, nil
}

// NormalizeWords trims and upper-cases a word list. A word with characters
// outside A-Z, or a word given twice, is an error.
func NormalizeWords(raw []string) ([]string, error) {
	words := lo.Map(raw, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	for _, w := range words {
		if !isWord(w) {
			return nil, fmt.Errorf("invalid word %q", w)
		}
	}
	if dups := lo.FindDuplicates(words); len(dups) > 0 {
		return nil, fmt.Errorf("duplicate words %v", dups)
	}
	return words, nil
}

// LoadFile loads a level pack from a YAML file.
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	pack, err := Parse(data)
	if err != nil {
		return Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	pack.Source = path
	return pack, nil
}

// Load finds a level pack.
// Search order: customPath -> ~/.wordsearch/levels.yaml -> ./configs/levels.yaml -> embedded default
func Load(customPath string) (Pack, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		if pack, err := LoadFile(filepath.Join(home, ".wordsearch", "levels.yaml")); err == nil {
			return pack, nil
		}
	}

	if pack, err := LoadFile(filepath.Join("configs", "levels.yaml")); err == nil {
		return pack, nil
	}

	return Default(), nil
}

// Default returns the embedded pack of six classic categories.
func Default() Pack {
	pack, err := Parse(defaultPackYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded default pack is invalid: %v", err))
	}
	pack.Source = "embedded"
	return pack
}

// isWord reports whether w is a non-empty run of A-Z.
func isWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
