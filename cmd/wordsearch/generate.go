package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/levels"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
)

var (
	flagGenSize     int
	flagGenWords    []string
	flagGenLevel    int
	flagGenAttempts int
	flagGenAnswers  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated puzzle",
	Long: `Generate a word search grid and print it with its word list.

Words come from --words, or from a level of the level pack when --words
is not given. Words that do not fit are listed as skipped. With --seed the
same grid is printed every time.

Examples:
  wordsearch generate
  wordsearch generate --level 4 --size 12
  wordsearch generate --words GO,RUST,ZIG --size 6 --seed 42 --answers`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagGenSize, "size", 0, "Grid size (0 = level pack or config size)")
	generateCmd.Flags().StringSliceVar(&flagGenWords, "words", nil, "Comma separated words to hide")
	generateCmd.Flags().IntVar(&flagGenLevel, "level", 1, "Level of the pack to take words from (1-based)")
	generateCmd.Flags().IntVar(&flagGenAttempts, "attempts", puzzle.DefaultMaxAttempts, "Placement attempts per word")
	generateCmd.Flags().BoolVar(&flagGenAnswers, "answers", false, "Highlight the hidden words")
	generateCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a level pack YAML")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	pack, err := levels.Load(flagLevels)
	if err != nil {
		return err
	}

	words, err := levels.NormalizeWords(flagGenWords)
	if err != nil {
		return fmt.Errorf("--words: %w", err)
	}
	title := "Custom"
	if len(words) == 0 {
		category, ok := pack.Level(flagGenLevel - 1)
		if !ok {
			return fmt.Errorf("level %d out of range 1..%d", flagGenLevel, pack.Len())
		}
		words = category.Words
		title = category.Name
	}

	size := flagGenSize
	if size == 0 {
		size = pack.Size
	}
	if size == 0 {
		size = config.DefaultWordSearchConfig().Grid.Size
	}
	if size < config.MinGridSize || size > config.MaxGridSize {
		return fmt.Errorf("size %d out of range %d..%d", size, config.MinGridSize, config.MaxGridSize)
	}
	if flagGenAttempts < 1 {
		return fmt.Errorf("attempts must be at least 1")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := puzzle.Generator{MaxAttempts: flagGenAttempts}
	res := gen.Generate(size, words, puzzle.NewSource(seed))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%dx%d, seed %d)\n\n", title, size, size, seed)
	fmt.Fprintln(out, renderGrid(res, flagGenAnswers))
	fmt.Fprintln(out)

	for _, p := range res.Placed {
		if flagGenAnswers {
			fmt.Fprintf(out, "  %-16s %s %s\n", p.Word, p.Start, p.Direction)
		} else {
			fmt.Fprintf(out, "  %s\n", p.Word)
		}
	}
	if len(res.Skipped) > 0 {
		fmt.Fprintf(os.Stderr, "\nSkipped (no room): %s\n", strings.Join(res.Skipped, ", "))
	}
	return nil
}

// answerStyle marks letters that belong to a placed word.
var answerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// renderGrid prints the grid with spaced letters, highlighting placed
// words when answers is set.
func renderGrid(res puzzle.Result, answers bool) string {
	if !answers {
		return res.Grid.String()
	}

	marked := make(map[puzzle.Cell]bool)
	for _, p := range res.Placed {
		for _, c := range p.Cells {
			marked[c] = true
		}
	}

	var sb strings.Builder
	for r, row := range res.Grid.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < len(row); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			letter := string(row[c])
			if marked[puzzle.At(r, c)] {
				letter = answerStyle.Render(letter)
			}
			sb.WriteString(letter)
		}
	}
	return sb.String()
}
