package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered word search mode.`,
	Run:   runList,
}

var modeNotes = map[string]string{
	wordsearch.IDCampaign: "every level, timed",
	wordsearch.IDZen:      "every level, no timer",
	wordsearch.IDDaily:    "one puzzle per day, same for everyone",
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	idWidth := max(2, lo.Max(lo.Map(games, func(g registry.GameInfo, _ int) int { return len(g.ID) })))
	titleWidth := max(5, lo.Max(lo.Map(games, func(g registry.GameInfo, _ int) int { return len(g.Title) })))

	stats := loadAllStats()

	fmt.Printf("  %-*s  %-*s  %-11s  %s\n", idWidth, "ID", titleWidth, "Title", "Runs / Best", "Notes")
	fmt.Printf("  %-*s  %-*s  %-11s  %s\n", idWidth, "--", titleWidth, "-----", "-----------", "-----")

	for _, g := range games {
		played := "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprintf("%d / %d★", st.GamesCount, st.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %-11s  %s\n", idWidth, g.ID, titleWidth, g.Title, played, modeNotes[g.ID])
	}

	fmt.Println()
	fmt.Println("Run 'wordsearch play <id>' to play a mode.")
}

// loadAllStats returns per-mode run statistics, or nil when the database
// cannot be read.
func loadAllStats() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Debug("no scores database", "err", err)
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		log.Warn("cannot read run statistics", "err", err)
		return nil
	}
	return stats
}
