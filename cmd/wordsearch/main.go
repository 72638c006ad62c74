// wordsearch is a terminal word search game.
//
// Usage:
//
//	wordsearch list              - List available modes
//	wordsearch play <mode>       - Play a mode
//	wordsearch menu              - Start menu to pick modes interactively
//	wordsearch serve             - Start SSH server for remote play
//	wordsearch scores <mode>     - Show best runs and level ratings
//	wordsearch generate          - Print a generated puzzle
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible puzzles
//	--db <path>          - Set database path (default: ~/.wordsearch/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log file for interactive commands
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logFile is the open log file of an interactive command, if any.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsearch",
	Short: "Word Search - find hidden words in your terminal",
	Long: `Word Search is a terminal puzzle game: every level hides a list of
words in a grid of letters. Drag with the mouse or use the keyboard to mark
them before the timer runs out.

Available commands:
  list      - Show all available modes
  play      - Play a specific mode directly
  menu      - Interactive mode picker menu
  serve     - Start SSH server for remote play
  scores    - View best runs
  generate  - Print a puzzle without playing it

Examples:
  wordsearch list
  wordsearch play wordsearch
  wordsearch play wordsearch_daily
  wordsearch menu
  wordsearch serve --ssh :2222
  wordsearch generate --size 12 --words GO,RUST,ZIG --answers`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordsearch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.wordsearch/wordsearch.log", "Log file used while a game owns the terminal")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
}

// interactiveCommands take over the terminal, so their logs go to a file.
var interactiveCommands = map[string]bool{
	"play": true,
	"menu": true,
}

// setupLogging configures the default logger for the command being run.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	if !interactiveCommands[cmd.Name()] || flagLogFile == "" {
		return nil
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	log.SetOutput(f)
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
