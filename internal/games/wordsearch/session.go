package wordsearch

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/levels"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
)

// SessionConfig holds everything a session needs to build levels.
type SessionConfig struct {
	Pack         levels.Pack
	Size         int // Grid side; Pack.Size overrides it when set
	MaxAttempts  int
	TimerSeconds int // 0 disables the countdown
	Thresholds   puzzle.Thresholds
	StartLevel   int                       // 0-based level Restart returns to
	Difficulty   *config.DifficultyManager // Optional per-level scaling
}

// Progress is a read-only view of the session for HUDs and persistence.
type Progress struct {
	Level        int // 0-based
	Levels       int
	Category     string
	Found        int
	Total        int
	TimeLeft     int
	TimerEnabled bool
	Submitted    bool
	Paused       bool
	GameOver     bool
	Stars        int // Current level's stars once submitted
	TotalStars   int // Sum over submitted levels
	Skipped      []string
}

// Session drives one player through the levels of a pack: grid generation,
// selection gestures, found words, the countdown and star ratings.
//
// Gestures are ignored while the session is paused, submitted or over.
type Session struct {
	cfg SessionConfig
	rng puzzle.Source

	level    int
	category levels.Category
	result   puzzle.Result
	found    *puzzle.FoundSet

	selecting bool
	selStart  puzzle.Cell
	selEnd    puzzle.Cell

	timeLeft   int
	timerLimit int

	started   bool
	submitted bool
	paused    bool
	gameOver  bool

	levelStars map[int]int // level index -> stars, submitted levels only
	order      []int       // submitted levels in play order
}

// NewSession creates a session. No level is active until StartLevel.
func NewSession(cfg SessionConfig, rng puzzle.Source) *Session {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = puzzle.DefaultMaxAttempts
	}
	if cfg.Thresholds == nil {
		cfg.Thresholds = puzzle.DefaultThresholds
	}
	return &Session{
		cfg:        cfg,
		rng:        rng,
		found:      puzzle.NewFoundSet(),
		levelStars: make(map[int]int),
	}
}

// StartLevel generates the grid for a level and resets the per-level state:
// found words, selection, submission, pause and the timer.
func (s *Session) StartLevel(index int) error {
	category, ok := s.cfg.Pack.Level(index)
	if !ok {
		return fmt.Errorf("wordsearch: level %d out of range [0, %d)", index, s.cfg.Pack.Len())
	}

	size := s.cfg.Size
	if s.cfg.Pack.Size > 0 {
		size = s.cfg.Pack.Size
	}
	timer := s.cfg.TimerSeconds
	if s.cfg.Difficulty != nil {
		size = s.cfg.Difficulty.GridSize(size, index)
		if timer > 0 {
			timer = s.cfg.Difficulty.TimerSeconds(timer, index)
		}
	}

	gen := puzzle.Generator{MaxAttempts: s.cfg.MaxAttempts}
	s.result = gen.Generate(size, category.Words, s.rng)

	s.level = index
	s.category = category
	s.found = puzzle.NewFoundSet()
	s.selecting = false
	s.timerLimit = max(timer, 0)
	s.timeLeft = s.timerLimit
	s.started = true
	s.submitted = false
	s.paused = false
	s.gameOver = false
	return nil
}

// acceptsGestures reports whether selections may start or finish.
func (s *Session) acceptsGestures() bool {
	return s.started && !s.paused && !s.submitted && !s.gameOver
}

// BeginSelection anchors a selection at c. Cells outside the grid are ignored.
func (s *Session) BeginSelection(c puzzle.Cell) {
	if !s.acceptsGestures() || !s.result.Grid.InBounds(c) {
		return
	}
	s.selecting = true
	s.selStart = c
	s.selEnd = c
}

// UpdateSelection moves the free end of the active selection. Cells
// outside the grid keep the previous end.
func (s *Session) UpdateSelection(c puzzle.Cell) {
	if !s.selecting || !s.acceptsGestures() || !s.result.Grid.InBounds(c) {
		return
	}
	s.selEnd = c
}

// EndSelection resolves the active selection, records a newly found word
// and clears the selection. Finding the last word submits the level.
func (s *Session) EndSelection() puzzle.MatchResult {
	if !s.selecting || !s.acceptsGestures() {
		s.selecting = false
		return puzzle.MatchResult{}
	}
	s.selecting = false

	res := puzzle.Resolve(s.result.Grid, s.selStart, s.selEnd, s.category.Words, s.found)
	if res.Matched && !res.AlreadyFound {
		s.found.Add(puzzle.FoundWord{Word: res.Word, Positions: res.Positions})
		if s.found.Len() == len(s.category.Words) {
			s.Submit()
		}
	}
	return res
}

// CancelSelection drops the active selection.
func (s *Session) CancelSelection() {
	s.selecting = false
}

// Selection returns the active selection's endpoints.
func (s *Session) Selection() (start, end puzzle.Cell, active bool) {
	return s.selStart, s.selEnd, s.selecting
}

// SelectionCells returns the cells under the active selection, or nil when
// there is none or it is not a straight line.
func (s *Session) SelectionCells() []puzzle.Cell {
	if !s.selecting {
		return nil
	}
	_, cells, ok := puzzle.Extract(s.result.Grid, s.selStart, s.selEnd)
	if !ok {
		return nil
	}
	return cells
}

// Submit rates the level and freezes it. Later calls return the stored
// rating without recomputing it.
func (s *Session) Submit() int {
	if !s.started {
		return 0
	}
	if s.submitted {
		return s.levelStars[s.level]
	}

	stars := puzzle.Stars(s.found.Len(), len(s.category.Words), s.cfg.Thresholds)
	s.levelStars[s.level] = stars
	s.order = append(s.order, s.level)
	s.submitted = true
	s.paused = false
	s.selecting = false
	return stars
}

// Tick counts down one second of level time and reports whether the
// level ran out of time on this tick.
func (s *Session) Tick() bool {
	if !s.started || s.paused || s.submitted || s.gameOver || s.timerLimit == 0 {
		return false
	}
	s.timeLeft--
	if s.timeLeft > 0 {
		return false
	}
	s.timeLeft = 0
	s.Submit()
	return true
}

// TogglePause pauses or resumes the level. Pausing drops any selection.
func (s *Session) TogglePause() {
	if !s.started || s.submitted || s.gameOver {
		return
	}
	s.paused = !s.paused
	s.selecting = false
}

// Advance moves to the next level after a submission, or ends the game
// after the last one. It does nothing before the level is submitted.
func (s *Session) Advance() error {
	if !s.submitted || s.gameOver {
		return nil
	}
	next := s.level + 1
	if next >= s.cfg.Pack.Len() {
		s.gameOver = true
		return nil
	}
	return s.StartLevel(next)
}

// Restart clears all ratings and replays from the start level.
func (s *Session) Restart() error {
	s.levelStars = make(map[int]int)
	s.order = nil
	return s.StartLevel(s.cfg.StartLevel)
}

// CurrentProgress returns a snapshot of the session.
func (s *Session) CurrentProgress() Progress {
	p := Progress{
		Level:        s.level,
		Levels:       s.cfg.Pack.Len(),
		Category:     s.category.Name,
		Found:        s.found.Len(),
		Total:        len(s.category.Words),
		TimeLeft:     s.timeLeft,
		TimerEnabled: s.timerLimit > 0,
		Submitted:    s.submitted,
		Paused:       s.paused,
		GameOver:     s.gameOver,
		TotalStars:   lo.Sum(s.StarsByLevel()),
		Skipped:      s.result.Skipped,
	}
	if s.submitted {
		p.Stars = s.levelStars[s.level]
	}
	return p
}

// StarsByLevel returns the ratings of submitted levels in play order.
func (s *Session) StarsByLevel() []int {
	return lo.Map(s.order, func(level int, _ int) int { return s.levelStars[level] })
}

// AverageStars returns the mean rating over submitted levels.
func (s *Session) AverageStars() float64 {
	return puzzle.AverageStars(s.StarsByLevel())
}

// Grid returns the current level's grid.
func (s *Session) Grid() *puzzle.Grid {
	return s.result.Grid
}

// Words returns the current level's word list.
func (s *Session) Words() []string {
	return s.category.Words
}

// Found returns the words found so far in the current level.
func (s *Session) Found() *puzzle.FoundSet {
	return s.found
}

// Placement returns the generator's record of the current level.
func (s *Session) Placement() puzzle.Result {
	return s.result
}
