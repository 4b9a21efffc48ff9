package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-roll/internal/core"
	"github.com/vovakirdan/tui-roll/internal/registry"
	"github.com/vovakirdan/tui-roll/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// GameModel is the Bubble Tea model for running a game.
// The game gets the terminal minus the help bar at the bottom.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	log    *log.Logger
	keys   GameKeyMap
	help   help.Model

	inputFrame core.InputFrame
	gameState  core.GameState

	standalone bool // Quit the program when going back to the menu
	quitting   bool
	backToMenu bool
	lastSolve  int64 // Row ID of the last recorded solve
}

// NewGameModel creates a model for the given game and resets it to fit
// the screen. store may be nil, in which case solves are not recorded.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW
	h.Styles.ShortKey = theme.Controls.Bold(true)
	h.Styles.ShortDesc = theme.Controls
	h.Styles.FullKey = theme.Controls.Bold(true)
	h.Styles.FullDesc = theme.Controls

	m := GameModel{
		game:       game,
		store:      store,
		config:     cfg,
		log:        logger,
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())
	game.Reset(m.playConfig())
	m.gameState = game.State()
	return m
}

// playHeight is the number of rows left for the game.
func (m GameModel) playHeight() int {
	h := m.config.ScreenH - lipgloss.Height(m.help.View(m.keys))
	if h < 1 {
		h = 1
	}
	return h
}

func (m GameModel) playConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.playHeight()
	return cfg
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if kind, ok := MouseToPointer(msg); ok {
			m.inputFrame.AddPointer(kind, msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.applySize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.log.Warn("could not save screenshot", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.applySize()
		return m, nil
	}

	if action := m.keys.MapKey(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// applySize resizes the screen buffer and tells the game.
// Games that cannot resize in place are reset.
func (m *GameModel) applySize() {
	cfg := m.playConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	if r, ok := m.game.(resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	m.game.Reset(cfg)
	m.gameState = m.game.State()
}

// handleTick advances the game by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Cleared {
		m.recordSolve()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordSolve stores the solve of the current stage.
func (m *GameModel) recordSolve() {
	if m.store == nil {
		return
	}
	d := time.Duration(m.gameState.Ticks) * time.Second / time.Duration(m.config.TickRate)
	id, err := m.store.SaveSolve(m.gameState.StageID, m.game.ID(), m.gameState.Moves, d)
	if err != nil {
		m.log.Warn("could not save solve", "stage", m.gameState.StageID, "err", err)
		return
	}
	m.lastSolve = id
	m.log.Debug("solve saved", "stage", m.gameState.StageID, "moves", m.gameState.Moves, "duration", d)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".roll", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := m.game.ID()
	if m.gameState.StageID != "" {
		name += "_" + m.gameState.StageID
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the game and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen, theme),
		m.help.View(m.keys),
	)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LastSolveID returns the row ID of the last solve recorded by this model,
// or 0 if none was.
func (m GameModel) LastSolveID() int64 {
	return m.lastSolve
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the player quits or goes
// back. It reports whether the player asked for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
