package wordsearch

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
)

const testPack = `
categories:
  - name: Pets
    words: [CAT, DOG, BIRD]
  - name: Sky
    words: [SUN, MOON, STAR]
`

const relaxedConfig = `
grid:
  size: 8
timer:
  enabled: true
  seconds: 60
flow:
  advance_delay_ms: 500
`

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42}
}

// useFiles points the package at temporary config and level files.
func useFiles(t *testing.T, cfgYAML, packYAML string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wordsearch.yaml")
	packPath := filepath.Join(dir, "levels.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(packPath, []byte(packYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(cfgPath)
	SetLevelsPath(packPath)
	t.Cleanup(func() {
		SetConfigPath("")
		SetLevelsPath("")
		SetDifficultyPreset("")
		SetStartLevel(0)
	})
}

func newTestGame(t *testing.T, cfgYAML string) *Game {
	t.Helper()
	useFiles(t, cfgYAML, testPack)
	g := New()
	g.Reset(testRuntime())
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// moveCursorTo steps the cursor to target one key at a time.
func moveCursorTo(g *Game, target puzzle.Cell) {
	for g.Cursor().Row < target.Row {
		step(g, core.ActionDown)
	}
	for g.Cursor().Row > target.Row {
		step(g, core.ActionUp)
	}
	for g.Cursor().Col < target.Col {
		step(g, core.ActionRight)
	}
	for g.Cursor().Col > target.Col {
		step(g, core.ActionLeft)
	}
}

func TestRegisteredModes(t *testing.T) {
	expected := map[string]string{
		IDCampaign: "Word Search",
		IDZen:      "Word Search (Zen)",
		IDDaily:    "Word Search (Daily)",
	}
	for id, title := range expected {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id || g.Title() != title {
			t.Errorf("Create(%q) = %s/%s", id, g.ID(), g.Title())
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, relaxedConfig)
	snap := g.Snapshot()

	if snap.Level != 1 || snap.Category != "Pets" || snap.State != StatePlaying {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Grid) != 8 {
		t.Errorf("grid has %d rows, expected 8", len(snap.Grid))
	}
	if snap.TimeLeft != 60 {
		t.Errorf("TimeLeft = %d, expected 60", snap.TimeLeft)
	}
	if g.State().Score != 0 || g.State().GameOver {
		t.Errorf("State() = %+v", g.State())
	}
}

func TestGameDeterministic(t *testing.T) {
	a := newTestGame(t, relaxedConfig)
	b := New()
	b.Reset(testRuntime())

	if !reflect.DeepEqual(a.Snapshot().Grid, b.Snapshot().Grid) {
		t.Error("same seed should produce the same grid")
	}
}

func TestGameKeyboardSelection(t *testing.T) {
	g := newTestGame(t, relaxedConfig)
	placed := g.Session().Placement().Placed[0]

	moveCursorTo(g, placed.Start)
	step(g, core.ActionSelect)
	if _, _, active := g.Session().Selection(); !active {
		t.Fatal("first select should anchor a selection")
	}

	end := placed.End()
	for g.Cursor() != end {
		switch {
		case g.Cursor().Row < end.Row:
			step(g, core.ActionDown)
		case g.Cursor().Col < end.Col:
			step(g, core.ActionRight)
		}
	}

	res := step(g, core.ActionSelect)
	if !g.Session().Found().Contains(placed.Word) {
		t.Fatalf("%s not found after keyboard selection", placed.Word)
	}
	if !slices.Contains(res.Events, "found "+placed.Word) {
		t.Errorf("Events = %v", res.Events)
	}
}

func TestGameCancelSelection(t *testing.T) {
	g := newTestGame(t, relaxedConfig)
	step(g, core.ActionSelect)
	step(g, core.ActionCancel)
	if _, _, active := g.Session().Selection(); active {
		t.Error("cancel should drop the selection")
	}
}

func TestGamePointerSelection(t *testing.T) {
	g := newTestGame(t, relaxedConfig)
	placed := g.Session().Placement().Placed[0]

	screenPos := func(c puzzle.Cell) (int, int) {
		return g.layout.gridX + c.Col*cellWidth, g.layout.gridY + c.Row
	}

	in := core.NewInputFrame()
	x, y := screenPos(placed.End())
	in.AddPointer(core.PointerPress, x, y)
	x, y = screenPos(placed.Cells[1])
	in.AddPointer(core.PointerMotion, x, y)
	x, y = screenPos(placed.Start)
	in.AddPointer(core.PointerRelease, x+1, y) // the gap belongs to the letter
	res := g.Step(in)

	if !g.Session().Found().Contains(placed.Word) {
		t.Fatalf("%s not found after drag, events %v", placed.Word, res.Events)
	}
}

func TestGamePointerOffGrid(t *testing.T) {
	g := newTestGame(t, relaxedConfig)

	in := core.NewInputFrame()
	in.AddPointer(core.PointerPress, 0, 0)
	in.AddPointer(core.PointerRelease, 1, 1)
	g.Step(in)

	if g.Session().Found().Len() != 0 {
		t.Error("off-grid gesture found a word")
	}
	if _, _, active := g.Session().Selection(); active {
		t.Error("off-grid press should not start a selection")
	}
}

func TestCellAt(t *testing.T) {
	g := newTestGame(t, relaxedConfig)
	x, y := g.layout.gridX, g.layout.gridY

	tests := []struct {
		x, y int
		cell puzzle.Cell
		ok   bool
	}{
		{x, y, puzzle.At(0, 0), true},
		{x + 1, y, puzzle.At(0, 0), true},
		{x + 2, y + 3, puzzle.At(3, 1), true},
		{x + 14, y + 7, puzzle.At(7, 7), true},
		{x - 1, y, puzzle.Cell{}, false},
		{x, y - 1, puzzle.Cell{}, false},
		{x + 16, y, puzzle.Cell{}, false},
		{x, y + 8, puzzle.Cell{}, false},
	}
	for _, tc := range tests {
		cell, ok := g.cellAt(tc.x, tc.y)
		if ok != tc.ok || cell != tc.cell {
			t.Errorf("cellAt(%d, %d) = %v, %v; expected %v, %v", tc.x, tc.y, cell, ok, tc.cell, tc.ok)
		}
	}
}

func TestGameTimerExpiryAndAdvance(t *testing.T) {
	g := newTestGame(t, `
grid:
  size: 8
timer:
  seconds: 2
flow:
  advance_delay_ms: 500
`)

	var rated []core.LevelResult
	for i := 0; i < 20; i++ {
		rated = append(rated, step(g).Levels...)
	}
	if g.Snapshot().State != StateSubmitted {
		t.Fatalf("state after 2s = %s, expected submitted", g.Snapshot().State)
	}

	for i := 0; i < 10; i++ {
		rated = append(rated, step(g).Levels...)
	}
	if len(rated) != 1 {
		t.Fatalf("rated %d levels, expected 1", len(rated))
	}
	if rated[0].Level != 0 || rated[0].Category != "Pets" || rated[0].Stars != 0 || rated[0].Total != 3 {
		t.Errorf("level result = %+v", rated[0])
	}

	snap := g.Snapshot()
	if snap.Level != 2 || snap.State != StatePlaying || snap.TimeLeft != 2 {
		t.Errorf("after the delay: %+v", snap)
	}
}

func TestGameSubmitAndGameOver(t *testing.T) {
	useFiles(t, "flow:\n  advance_delay_ms: 0\n", "categories:\n  - name: Solo\n    words: [CAT]\n")
	g := New()
	g.Reset(testRuntime())

	res := step(g, core.ActionSubmit)
	if len(res.Levels) != 1 {
		t.Fatalf("submit should rate the level, got %+v", res)
	}
	step(g)
	if !g.State().GameOver {
		t.Fatal("single level game should be over after advancing")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("state = %s", g.Snapshot().State)
	}

	// Input after game over changes nothing.
	step(g, core.ActionSelect)
	if _, _, active := g.Session().Selection(); active {
		t.Error("selection started after game over")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, relaxedConfig)

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	before := g.Snapshot().TimeLeft
	for i := 0; i < 30; i++ {
		step(g, core.ActionSelect)
	}
	if g.Snapshot().TimeLeft != before {
		t.Error("timer ran while paused")
	}
	if _, _, active := g.Session().Selection(); active {
		t.Error("selection started while paused")
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "PAUSED") || !strings.Contains(out, "·") {
		t.Error("paused render should hide letters and show PAUSED")
	}

	step(g, core.ActionPause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestZenHasNoTimer(t *testing.T) {
	useFiles(t, relaxedConfig, testPack)
	g := NewZen()
	g.Reset(testRuntime())

	for i := 0; i < 200; i++ {
		step(g)
	}
	if g.Snapshot().State != StatePlaying {
		t.Errorf("zen level ended on its own: %s", g.Snapshot().State)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if strings.Contains(scr.String(), "Time ") {
		t.Error("zen HUD should not show a timer")
	}
}

func TestDailyIsFixedForDate(t *testing.T) {
	useFiles(t, relaxedConfig, testPack)
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return day }
	t.Cleanup(func() { now = time.Now })

	a := NewDaily()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})
	b := NewDaily()
	b.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 2})

	if !reflect.DeepEqual(a.Snapshot().Grid, b.Snapshot().Grid) {
		t.Error("daily grids differ for the same date")
	}
	if a.Snapshot().Category != b.Snapshot().Category {
		t.Error("daily category differs for the same date")
	}
	if a.Session().CurrentProgress().Levels != 1 {
		t.Error("daily mode should have exactly one level")
	}

	scr := core.NewScreen(80, 24)
	a.Render(scr)
	if !strings.Contains(scr.String(), "Daily 2024-03-15") {
		t.Error("daily title missing")
	}
}

func TestSetStartLevel(t *testing.T) {
	useFiles(t, relaxedConfig, testPack)
	SetStartLevel(2)

	g := New()
	g.Reset(testRuntime())
	if g.Snapshot().Level != 2 {
		t.Errorf("Level = %d, expected 2", g.Snapshot().Level)
	}

	// The platform restarts by calling Reset again.
	g.Reset(testRuntime())
	if g.Snapshot().Level != 2 {
		t.Errorf("restart Level = %d, expected 2", g.Snapshot().Level)
	}
}

func TestStartAtIsPerInstance(t *testing.T) {
	useFiles(t, relaxedConfig, testPack)

	a := New()
	a.StartAt(2)
	a.Reset(testRuntime())
	b := New()
	b.Reset(testRuntime())

	if a.Snapshot().Level != 2 || b.Snapshot().Level != 1 {
		t.Errorf("levels = %d, %d; expected 2, 1", a.Snapshot().Level, b.Snapshot().Level)
	}
	if !a.SelectableLevels() || NewDaily().SelectableLevels() {
		t.Error("only campaign modes offer a level choice")
	}

	// Out of range starts from the first level.
	a.StartAt(9)
	a.Reset(testRuntime())
	if a.Snapshot().Level != 1 {
		t.Errorf("out of range start Level = %d, expected 1", a.Snapshot().Level)
	}
}

func TestSnapshotData(t *testing.T) {
	g := newTestGame(t, relaxedConfig)
	snap, ok := g.SnapshotData().(Snapshot)
	if !ok {
		t.Fatalf("SnapshotData returned %T", g.SnapshotData())
	}
	if snap.Category != "Pets" || snap.State != StatePlaying || len(snap.Words) != 3 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestDifficultyPresetApplied(t *testing.T) {
	useFiles(t, relaxedConfig, testPack)
	SetDifficultyPreset("hard")

	g := New()
	g.Reset(testRuntime())
	if g.Snapshot().TimeLeft != 45 || len(g.Snapshot().Grid) != 12 {
		t.Errorf("hard preset: time %d size %d", g.Snapshot().TimeLeft, len(g.Snapshot().Grid))
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, relaxedConfig)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Word Search: Pets", "Level 1/2", "Found 0/3", "Time 1:00", "CAT", "DOG", "BIRD"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestTooSmallAndResize(t *testing.T) {
	useFiles(t, relaxedConfig, testPack)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 10, Seed: 42})

	if !g.State().Paused {
		t.Error("tiny screen should pause the game")
	}
	scr := core.NewScreen(10, 5)
	g.Render(scr)
	if !strings.Contains(scr.String(), "small") {
		t.Error("tiny screen should explain itself")
	}

	placed := g.Session().Placement().Placed[0]
	g.Resize(80, 24)
	if g.State().Paused {
		t.Fatal("resize to a large screen should unpause")
	}
	if g.Session().Placement().Placed[0].Start != placed.Start {
		t.Error("resize should not regenerate the level")
	}
}
