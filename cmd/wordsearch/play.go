package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/platform/tui"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLevel      int
	flagSalt       string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/hjkl  - Move the cursor
  Space/Enter  - Anchor a selection, then commit it
  Mouse drag   - Select a word
  Esc          - Cancel the selection
  Tab/S        - Submit the level early
  P            - Pause
  R            - Restart (after the last level)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 90 second levels, levels get shorter and grids larger
  normal - 60 second levels, levels get shorter and grids larger
  hard   - 45 second levels on 12x12 grids, scaling up from there
  fixed  - No progression, every level uses the config as loaded

Examples:
  wordsearch play wordsearch
  wordsearch play wordsearch --difficulty hard
  wordsearch play wordsearch_zen --level 3
  wordsearch play wordsearch_daily --salt my-team
  wordsearch play wordsearch --levels ./my-words.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based), skipping the level menu")
}

// addGameFlags registers the flags that configure the word search game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a level pack YAML")
	cmd.Flags().StringVar(&flagSalt, "salt", "", "Secret that picks the daily puzzle")
}

// applyGameFlags hands the game flags to the word search package before a
// game is created.
func applyGameFlags() {
	wordsearch.SetConfigPath(flagConfig)
	wordsearch.SetDifficultyPreset(flagDifficulty)
	wordsearch.SetLevelsPath(flagLevels)
	wordsearch.SetDailySalt(flagSalt)
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// chooseStartLevel applies a start level to the game, asking with the level
// menu when none was given. Returns false if the user backed out.
func chooseStartLevel(game registry.Game, title string, level int, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	ls, ok := game.(registry.LevelStarter)
	if !ok || !ls.SelectableLevels() {
		return true, nil
	}
	if level > 0 {
		ls.StartAt(level)
		return true, nil
	}

	sel, err := tui.RunLevelSelector(store, game.ID(), title, flagLevels, cfg)
	if err != nil {
		return false, err
	}
	if sel == nil {
		return false, nil
	}
	ls.StartAt(sel.Level)
	return true, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wordsearch list' to see available modes.")
		os.Exit(1)
	}

	cfg := terminalConfig()
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	ok, err := chooseStartLevel(game, game.Title(), flagLevel, store, cfg)
	if err == nil && ok {
		_, err = tui.Run(game, store, cfg)
	}

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
