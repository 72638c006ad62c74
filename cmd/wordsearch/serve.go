package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the word search SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordsearch/host_key

Examples:
  wordsearch serve                           # Listen on :23234 with auto-generated key
  wordsearch serve --ssh :2222               # Listen on port 2222
  wordsearch serve --host-key ./my_host_key  # Use specific host key
  wordsearch serve --db ./scores.db          # Use specific database

Environment (flags win when given; a .env file in the working directory
is read first):
  WORDSEARCH_SSH_ADDR, WORDSEARCH_HOST_KEY, WORDSEARCH_IDLE_TIMEOUT (e.g. 45m),
  WORDSEARCH_DB, WORDSEARCH_LEVELS

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

// serveEnv holds server settings read from the environment.
type serveEnv struct {
	Address     string        `env:"WORDSEARCH_SSH_ADDR"     envDefault:":23234"`
	HostKey     string        `env:"WORDSEARCH_HOST_KEY"`
	IdleTimeout time.Duration `env:"WORDSEARCH_IDLE_TIMEOUT" envDefault:"30m"`
	DBPath      string        `env:"WORDSEARCH_DB"`
	LevelsPath  string        `env:"WORDSEARCH_LEVELS"`
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addGameFlags(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) {
	// A .env file in the working directory fills unset variables.
	_ = godotenv.Load()

	cfg, err := serveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	flagLevels = cfg.LevelsPath
	applyGameFlags()

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting word search SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// serveConfig builds the server config from the environment, then applies
// the flags the user set explicitly.
func serveConfig(cmd *cobra.Command) (tui.SSHServerConfig, error) {
	var e serveEnv
	if err := env.Parse(&e); err != nil {
		return tui.SSHServerConfig{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     e.Address,
		HostKeyPath: e.HostKey,
		DBPath:      flagDBPath,
		LevelsPath:  flagLevels,
		TickRate:    flagFPS,
		IdleTimeout: e.IdleTimeout,
	}
	if e.DBPath != "" && !cmd.Flags().Changed("db") {
		cfg.DBPath = e.DBPath
	}
	if e.LevelsPath != "" && !cmd.Flags().Changed("levels") {
		cfg.LevelsPath = e.LevelsPath
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	return cfg, nil
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
