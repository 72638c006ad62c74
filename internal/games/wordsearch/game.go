// Package wordsearch implements the word search game: find the hidden words
// of each category in a grid of letters before the timer runs out.
package wordsearch

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/levels"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Every level, timed
	ModeZen      Mode = "zen"      // Every level, no timer
	ModeDaily    Mode = "daily"    // One date-seeded level
)

// Game IDs for the registry.
const (
	IDCampaign = "wordsearch"
	IDZen      = "wordsearch_zen"
	IDDaily    = "wordsearch_daily"
)

// DefaultDailySalt keys the daily puzzle when no salt is configured.
const DefaultDailySalt = "wordsearch-daily"

// Package-level settings applied on the next Reset.
var (
	configPath         string
	levelsPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	dailySalt          = DefaultDailySalt
	now                = time.Now
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsPath sets the custom level pack path for loading.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the starting level (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetDailySalt sets the secret that keys the daily puzzle.
func SetDailySalt(salt string) {
	if salt == "" {
		salt = DefaultDailySalt
	}
	dailySalt = salt
}

// Game adapts a Session to the platform's tick-driven Game interface.
type Game struct {
	mode Mode

	cfg        config.WordSearchConfig
	pack       levels.Pack
	session    *Session
	startLevel int
	dailyKey   string

	cursor       puzzle.Cell
	tick         uint64
	tickRate     int
	secondTicks  int // Ticks counted toward the next timer second
	advanceTicks int // Ticks left before moving on from a submitted level
	wasSubmitted bool

	screenW  int
	screenH  int
	layout   layout
	tooSmall bool

	logger *log.Logger
}

// New creates a timed campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewZen creates an untimed campaign game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewDaily creates a daily puzzle game.
func NewDaily() *Game {
	return &Game{mode: ModeDaily}
}

var (
	_ registry.Resizer      = (*Game)(nil)
	_ registry.LevelStarter = (*Game)(nil)
	_ registry.Snapshotter  = (*Game)(nil)
)

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDZen, func() registry.Game {
		return NewZen()
	})
	registry.Register(IDDaily, func() registry.Game {
		return NewDaily()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeZen:
		return IDZen
	case ModeDaily:
		return IDDaily
	default:
		return IDCampaign
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeZen:
		return "Word Search (Zen)"
	case ModeDaily:
		return "Word Search (Daily)"
	default:
		return "Word Search"
	}
}

// Reset loads config and levels and starts the first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.logger = log.Default().With("game", g.ID())

	cfg, err := config.LoadWordSearch(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultWordSearchConfig()
	}
	if difficultyPreset != "" {
		config.ApplyWordSearchPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeZen {
		cfg.Timer.Enabled = false
	}
	g.cfg = cfg

	pack, err := levels.Load(levelsPath)
	if err != nil {
		g.logger.Warn("using default levels", "err", err)
		pack = levels.Default()
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if g.mode == ModeDaily {
		index, dailySeed := levels.Daily(now(), dailySalt, pack.Len())
		category, _ := pack.Level(index)
		pack.Categories = []levels.Category{category}
		seed = dailySeed
		g.dailyKey = levels.DateKey(now())
		g.startLevel = 0
	} else if selectedStartLevel > 0 && selectedStartLevel <= pack.Len() {
		g.startLevel = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	}
	if g.startLevel >= pack.Len() {
		g.startLevel = 0
	}
	g.pack = pack

	timer := 0
	if cfg.Timer.Enabled {
		timer = cfg.Timer.Seconds
	}
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	if g.mode == ModeDaily {
		difficulty.SetEnabled(false)
	}
	g.session = NewSession(SessionConfig{
		Pack:         pack,
		Size:         cfg.Grid.Size,
		MaxAttempts:  cfg.Grid.MaxAttempts,
		TimerSeconds: timer,
		Thresholds:   puzzle.Thresholds(cfg.Scoring.StarThresholds),
		StartLevel:   g.startLevel,
		Difficulty:   difficulty,
	}, puzzle.NewSource(seed))

	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	if err := g.session.Restart(); err != nil {
		// Only reachable with an empty pack, which levels.Parse rejects.
		g.logger.Error("cannot start level", "err", err)
	}
	g.onLevelStart()
}

// SelectableLevels reports whether the mode has more than one level to choose from.
func (g *Game) SelectableLevels() bool {
	return g.mode != ModeDaily
}

// StartAt sets the 1-based level the next Reset starts from. Unlike
// SetStartLevel it only affects this instance.
func (g *Game) StartAt(level int) {
	g.startLevel = max(level-1, 0)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.computeLayout()
}

// onLevelStart resets per-level adapter state.
func (g *Game) onLevelStart() {
	g.cursor = puzzle.At(0, 0)
	g.secondTicks = 0
	g.advanceTicks = 0
	g.wasSubmitted = false
	g.computeLayout()

	p := g.session.CurrentProgress()
	if len(p.Skipped) > 0 {
		g.logger.Debug("words not placed", "level", p.Level+1, "category", p.Category, "words", p.Skipped)
	}
}

// advanceDelayTicks converts the configured delay to ticks.
func (g *Game) advanceDelayTicks() int {
	return g.cfg.Flow.AdvanceDelayMS * g.tickRate / 1000
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var res core.StepResult

	if g.tooSmall || g.session == nil {
		res.State = g.State()
		return res
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}
	if in.Has(core.ActionSubmit) {
		g.session.Submit()
	}
	g.checkSubmitted(&res)

	p := g.session.CurrentProgress()
	switch {
	case p.GameOver || p.Paused:
		// Nothing moves.
	case p.Submitted:
		g.stepAdvance(&res)
	default:
		g.stepInput(in, &res)
		g.stepTimer(&res)
	}

	g.checkSubmitted(&res)
	res.State = g.State()
	return res
}

// stepInput applies cursor keys, selection keys and pointer events.
func (g *Game) stepInput(in core.InputFrame, res *core.StepResult) {
	size := g.session.Grid().Size()
	move := func(dr, dc int) {
		g.cursor = puzzle.At(
			core.Clamp(g.cursor.Row+dr, 0, size-1),
			core.Clamp(g.cursor.Col+dc, 0, size-1),
		)
		g.session.UpdateSelection(g.cursor)
	}

	switch {
	case in.Has(core.ActionUp):
		move(-1, 0)
	case in.Has(core.ActionDown):
		move(1, 0)
	case in.Has(core.ActionLeft):
		move(0, -1)
	case in.Has(core.ActionRight):
		move(0, 1)
	}

	if in.Has(core.ActionCancel) {
		g.session.CancelSelection()
	}
	if in.Has(core.ActionSelect) {
		if _, _, active := g.session.Selection(); active {
			g.session.UpdateSelection(g.cursor)
			g.noteMatch(g.session.EndSelection(), res)
		} else {
			g.session.BeginSelection(g.cursor)
		}
	}

	for _, ev := range in.Pointer {
		cell, onGrid := g.cellAt(ev.X, ev.Y)
		if onGrid {
			g.cursor = cell
		}
		switch ev.Kind {
		case core.PointerPress:
			if onGrid {
				g.session.BeginSelection(cell)
			}
		case core.PointerMotion:
			g.session.UpdateSelection(cell)
		case core.PointerRelease:
			if onGrid {
				g.session.UpdateSelection(cell)
			}
			if _, _, active := g.session.Selection(); active {
				g.noteMatch(g.session.EndSelection(), res)
			}
		}
	}
}

// noteMatch records a selection outcome as an event.
func (g *Game) noteMatch(m puzzle.MatchResult, res *core.StepResult) {
	switch {
	case !m.Matched:
		return
	case m.AlreadyFound:
		res.Events = append(res.Events, fmt.Sprintf("already found %s", m.Word))
	default:
		res.Events = append(res.Events, fmt.Sprintf("found %s", m.Word))
	}
}

// stepTimer converts ticks to timer seconds.
func (g *Game) stepTimer(res *core.StepResult) {
	g.secondTicks++
	if g.secondTicks < g.tickRate {
		return
	}
	g.secondTicks = 0
	if g.session.Tick() {
		res.Events = append(res.Events, "time up")
	}
}

// stepAdvance counts down the results screen and moves on.
func (g *Game) stepAdvance(res *core.StepResult) {
	g.advanceTicks--
	if g.advanceTicks > 0 {
		return
	}
	if err := g.session.Advance(); err != nil {
		g.logger.Error("cannot advance", "err", err)
		return
	}
	p := g.session.CurrentProgress()
	if p.GameOver {
		res.Events = append(res.Events, fmt.Sprintf("game over: %.1f stars average", g.session.AverageStars()))
		g.logger.Info("run finished", "stars", p.TotalStars, "average", g.session.AverageStars())
		return
	}
	g.onLevelStart()
	res.Events = append(res.Events, fmt.Sprintf("level %d: %s", p.Level+1, p.Category))
}

// checkSubmitted reports a level the first time it is seen submitted.
func (g *Game) checkSubmitted(res *core.StepResult) {
	p := g.session.CurrentProgress()
	if !p.Submitted || g.wasSubmitted {
		return
	}
	g.wasSubmitted = true
	g.advanceTicks = g.advanceDelayTicks()

	res.Levels = append(res.Levels, core.LevelResult{
		Level:    p.Level,
		Category: p.Category,
		Stars:    p.Stars,
		Found:    p.Found,
		Total:    p.Total,
	})
	res.Events = append(res.Events, fmt.Sprintf("level %d submitted: %d stars", p.Level+1, p.Stars))
	g.logger.Debug("level submitted", "level", p.Level+1, "stars", p.Stars, "found", p.Found, "total", p.Total)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	p := g.session.CurrentProgress()
	return core.GameState{
		Score:    p.TotalStars,
		GameOver: p.GameOver,
		Paused:   p.Paused || g.tooSmall,
	}
}

// Session exposes the underlying session, mainly for tests and tools.
func (g *Game) Session() *Session {
	return g.session
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() puzzle.Cell {
	return g.cursor
}
