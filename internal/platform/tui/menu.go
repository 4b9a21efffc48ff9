package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-roll/internal/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll"
	"github.com/vovakirdan/tui-roll/internal/registry"
	"github.com/vovakirdan/tui-roll/internal/storage"
)

// Registry IDs of the two Roll modes.
const (
	GameCampaign = "roll"
	GamePractice = "roll_practice"
)

// MenuModel is the Bubble Tea model for the stage picker.
type MenuModel struct {
	stages   []roll.StageInfo
	stats    map[string]*storage.StageStats
	loadErr  error
	cursor   int
	practice bool
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model

	quitting    bool
	selected    *roll.StageInfo
	openRecords bool
}

// NewMenuModel creates a stage picker for the stages in stageDir
// (the builtin pack when empty). store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, stageDir string) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}

	m.stages, m.loadErr = roll.ListStages(stageDir)
	if store != nil {
		stats, err := store.AllStats()
		if err == nil {
			m.stats = stats
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.stages)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Practice):
		m.practice = !m.practice

	case key.Matches(msg, m.keys.Select):
		if len(m.stages) > 0 {
			selected := m.stages[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Records):
		m.openRecords = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("  R O L L  "), m.width))
	b.WriteString("\n\n")

	mode := "Campaign"
	if m.practice {
		mode = "Practice"
	}
	b.WriteString(centerText(theme.MenuDescription.Render("Select a stage  ["+mode+"]"), m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(theme.Empty.Render("No stages: "+m.loadErr.Error()), m.width))
		b.WriteString("\n")
	}

	nameWidth := 0
	for _, s := range m.stages {
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
	}

	for i, s := range m.stages {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}

		line := fmt.Sprintf("%s%-4s %-*s %2dx%-2d", cursor, s.ID, nameWidth, s.Name, s.Width, s.Height)
		best := m.bestLabel(s)
		b.WriteString(centerText(style.Render(line)+"  "+best, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// bestLabel describes the best recorded solve of a stage.
func (m MenuModel) bestLabel(s roll.StageInfo) string {
	if !s.HasGoal {
		return theme.MenuDescription.Render("free play")
	}
	st, ok := m.stats[s.ID]
	if !ok || st.Solves == 0 {
		return theme.MenuDescription.Render("unsolved")
	}
	return theme.MenuSolved.Render(fmt.Sprintf("✓ %d moves %s", st.BestMoves, formatDuration(st.BestDuration)))
}

// Selected returns the selected stage, or nil if none selected.
func (m MenuModel) Selected() *roll.StageInfo {
	return m.selected
}

// GameID returns the registry ID for the chosen mode.
func (m MenuModel) GameID() string {
	if m.practice {
		return GamePractice
	}
	return GameCampaign
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRecords returns true if user requested the records screen.
func (m MenuModel) WantsRecords() bool {
	return m.openRecords
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult contains the result of running the menu.
type MenuResult struct {
	StageID      string
	GameID       string
	Config       core.RuntimeConfig
	WantsRecords bool
	Quit         bool
}

// Result summarizes what the player chose.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.openRecords:
		result.WantsRecords = true
	case m.selected != nil:
		result.StageID = m.selected.ID
		result.GameID = m.GameID()
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, stageDir string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, stageDir)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// NewGame creates the game for a menu selection. Each call returns a new
// instance, so concurrent sessions never share board state.
func NewGame(result MenuResult, opts roll.Options) (registry.Game, error) {
	mode := roll.ModeCampaign
	switch result.GameID {
	case GameCampaign:
	case GamePractice:
		mode = roll.ModePractice
	default:
		return nil, fmt.Errorf("unknown game %q", result.GameID)
	}
	opts.StartStage = result.StageID
	return roll.New(mode, opts), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// formatDuration formats a solve time as mm:ss.t.
func formatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := d % time.Minute
	return fmt.Sprintf("%02d:%04.1f", minutes, seconds.Seconds())
}
