package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/levels"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

// LevelSelection holds the user's choice from the level menu.
type LevelSelection struct {
	Level int // 0 = start from the beginning, 1..n = specific level
}

// LevelMenuModel lets users choose where a word search run starts.
type LevelMenuModel struct {
	title         string
	names         []string
	stars         []int // Best stars per level, may be shorter than names
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     LevelSelection
	choosing      bool
	quitting      bool
	back          bool
}

// Start options of the first screen.
const (
	levelOptionBeginning = iota
	levelOptionContinue
	levelOptionSelect
	levelOptionCount
)

// NewLevelMenuModel creates a level menu for the given level names and
// best star ratings.
func NewLevelMenuModel(title string, names []string, stars []int, width, height int) LevelMenuModel {
	return LevelMenuModel{
		title:     title,
		names:     names,
		stars:     stars,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleStartKey(action)
}

func (m LevelMenuModel) handleStartKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < levelOptionCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case levelOptionBeginning:
			m.choosing = false
			m.selection = LevelSelection{Level: 0}
			return m, tea.Quit
		case levelOptionContinue:
			m.choosing = false
			m.selection = LevelSelection{Level: m.firstUnfinished() + 1}
			return m, tea.Quit
		case levelOptionSelect:
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LevelMenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.names)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if len(m.names) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = LevelSelection{Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// firstUnfinished returns the index of the first level without a full
// rating, or 0 when every level is perfect.
func (m LevelMenuModel) firstUnfinished() int {
	for i := range m.names {
		if m.bestStars(i) < puzzle.MaxStars {
			return i
		}
	}
	return 0
}

func (m LevelMenuModel) bestStars(i int) int {
	if i < len(m.stars) {
		return m.stars[i]
	}
	return 0
}

// View renders the start options or the level list.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewStart()
}

func (m LevelMenuModel) viewStart() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Where to start?", m.width))
	b.WriteString("\n\n")

	options := []string{
		fmt.Sprintf("From the beginning (%d levels)", len(m.names)),
		fmt.Sprintf("Continue at level %d", m.firstUnfinished()+1),
		"Select Level...",
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m LevelMenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, name := range m.names {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %-18s %s", cursor, i+1, name, starString(m.bestStars(i)))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// starString renders a rating as filled and empty stars.
func starString(n int) string {
	n = core.Clamp(n, 0, puzzle.MaxStars)
	return strings.Repeat("★", n) + strings.Repeat("☆", puzzle.MaxStars-n)
}

// levelMenuData loads the level names of the pack at levelsPath and the
// game's best ratings from the store.
func levelMenuData(store *storage.Store, gameID, levelsPath string) (names []string, stars []int, err error) {
	pack, err := levels.Load(levelsPath)
	if err != nil {
		return nil, nil, err
	}
	if store != nil {
		stars, err = store.LoadStars(gameID)
		if err != nil {
			return nil, nil, err
		}
	}
	return pack.Names(), stars, nil
}

// RunLevelSelector shows the start options for a campaign mode.
// Returns nil when the user backs out or quits.
func RunLevelSelector(store *storage.Store, gameID, title, levelsPath string, cfg core.RuntimeConfig) (*LevelSelection, error) {
	names, stars, err := levelMenuData(store, gameID, levelsPath)
	if err != nil {
		return nil, err
	}

	model := NewLevelMenuModel(title, names, stars, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
