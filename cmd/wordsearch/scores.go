package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/levels"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs for the specified mode, ranked by total
stars, followed by the best rating reached on every level.

A run ID (logged when a run finishes) shows the levels of that run.

Examples:
  wordsearch scores wordsearch
  wordsearch scores wordsearch_zen --all
  wordsearch scores wordsearch --run 0b6f3c1e-...
  wordsearch scores wordsearch --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a level pack YAML, for level names")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every run and level rating of the mode")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the levels of one run")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wordsearch list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	defer store.Close()

	switch {
	case flagScoresClear:
		clearScores(store, gameID)
		return
	case flagScoresRun != "":
		printRun(store, gameID, flagScoresRun)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wordsearch play %s' to earn the first stars!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Stars", "Date")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d stars over %d runs, %.1f stars per level on average\n",
			stats.HighScore, stats.GamesCount, stats.AvgStars)
	}

	printBestLevels(store, gameID)
}

// printBestLevels lists the best rating of every level played in the mode.
func printBestLevels(store *storage.Store, gameID string) {
	best, err := store.BestStars(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level ratings: %v\n", err)
		return
	}
	if len(best) == 0 {
		return
	}

	var names []string
	if pack, err := levels.Load(flagLevels); err == nil {
		names = pack.Names()
	}

	fmt.Println()
	fmt.Println("Levels:")
	indexes := lo.Keys(best)
	slices.Sort(indexes)
	for _, i := range indexes {
		name := fmt.Sprintf("Level %d", i+1)
		if i < len(names) {
			name = names[i]
		}
		fmt.Printf("  %2d. %-18s %d/%d\n", i+1, name, best[i], puzzle.MaxStars)
	}
}

// clearScores wipes the mode's runs together with its saved best stars.
func clearScores(store *storage.Store, gameID string) {
	if err := store.ClearScores(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		return
	}
	if err := store.SaveStars(gameID, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing level ratings: %v\n", err)
		return
	}
	fmt.Printf("Cleared all runs of %s.\n", gameID)
}

// printRun lists the rated levels of one run.
func printRun(store *storage.Store, gameID, runID string) {
	results, err := store.RunResults(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		return
	}
	results = lo.Filter(results, func(r storage.LevelResult, _ int) bool { return r.GameID == gameID })
	if len(results) == 0 {
		fmt.Printf("No levels recorded for run %s.\n", runID)
		return
	}

	fmt.Printf("Run %s - %s\n\n", runID, results[0].CreatedAt.Format("2006-01-02 15:04"))
	for _, r := range results {
		fmt.Printf("  %2d. %-18s %d/%d found  %d/%d\n",
			r.Level+1, r.Category, r.Found, r.Total, r.Stars, puzzle.MaxStars)
	}
	total := lo.SumBy(results, func(r storage.LevelResult) int { return r.Stars })
	fmt.Printf("\n  %d stars, %.1f per level\n", total, float64(total)/float64(len(results)))
}
