package wordsearch

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSubmitted   GameStateType = "submitted"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and screenshots.
type Snapshot struct {
	Tick     uint64        `yaml:"tick"`
	Mode     string        `yaml:"mode"`
	Level    int           `yaml:"level"` // 1-indexed for display
	Category string        `yaml:"category"`
	Grid     []string      `yaml:"grid"`
	Words    []string      `yaml:"words"`
	Found    []string      `yaml:"found"`
	Cursor   puzzle.Cell   `yaml:"cursor,flow"`
	TimeLeft int           `yaml:"time_left"`
	Stars    []int         `yaml:"stars,flow"`
	State    GameStateType `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.session.CurrentProgress()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case p.GameOver:
		state = StateGameOver
	case p.Submitted:
		state = StateSubmitted
	case p.Paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Level:    p.Level + 1,
		Category: p.Category,
		Grid:     g.session.Grid().Rows(),
		Words:    g.session.Words(),
		Found:    lo.Map(g.session.Found().Words(), func(fw puzzle.FoundWord, _ int) string { return fw.Word }),
		Cursor:   g.cursor,
		TimeLeft: p.TimeLeft,
		Stars:    g.session.StarsByLevel(),
		State:    state,
	}
}

// SnapshotData returns the snapshot for the platform's state dumps.
func (g *Game) SnapshotData() any {
	return g.Snapshot()
}
