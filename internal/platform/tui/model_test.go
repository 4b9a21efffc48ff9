package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-roll/internal/config"
	"github.com/vovakirdan/tui-roll/internal/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll"
	rollcore "github.com/vovakirdan/tui-roll/internal/games/roll/core"
	"github.com/vovakirdan/tui-roll/internal/storage"
)

var testStages = map[string]string{
	"01.yaml": `id: "01"
name: Line
size: {w: 3, h: 1}
tiles:
  - {id: a, x: 0, y: 0, kind: red, movable: true}
goal:
  a: {x: 2, y: 0}
`,
	"02.yaml": `id: "02"
name: Open
size: {w: 2, h: 2}
tiles:
  - {id: b, x: 0, y: 0, kind: blue, movable: true}
`,
}

func writeStages(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range testStages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func testOptions(dir string) roll.Options {
	return roll.Options{
		Config:   config.DefaultRollConfig(),
		StageDir: dir,
		Logger:   log.New(io.Discard),
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) (GameModel, *roll.Game) {
	t.Helper()
	game := roll.New(roll.ModePractice, testOptions(writeStages(t)))
	m := NewGameModel(game, store, core.DefaultConfig(), log.New(io.Discard))
	return m, game
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// dragRight drags the tile at cell (cx, cy) half a tile to the right and
// runs one tick.
func dragRight(t *testing.T, m GameModel, game *roll.Game, cx, cy int) GameModel {
	t.Helper()
	x, y := game.Camera().CellRect(rollcore.C(cx, cy)).Center()
	dx := game.Camera().TileW / 2

	m = update(t, m, mouse(x, y, tea.MouseActionPress))
	for i := 1; i <= dx; i++ {
		m = update(t, m, mouse(x+i, y, tea.MouseActionMotion))
	}
	m = update(t, m, mouse(x+dx, y, tea.MouseActionRelease))
	return update(t, m, TickMsg(time.Now()))
}

func TestGameModelLeavesRoomForHelp(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if m.screen.Height() != 23 || m.screen.Width() != 80 {
		t.Errorf("screen = %dx%d, want 80x23", m.screen.Width(), m.screen.Height())
	}
	if st := m.State(); st.StageID != "01" {
		t.Errorf("stage = %q, want 01", st.StageID)
	}
}

func TestGameModelMouseDragMovesTile(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = dragRight(t, m, game, 0, 0)

	if m.State().Moves != 1 {
		t.Fatalf("moves = %d, want 1", m.State().Moves)
	}
	if tile, _ := game.Board().Grid().Tile("a"); tile.Pos != rollcore.C(1, 0) {
		t.Errorf("tile a at %v, want (1,0)", tile.Pos)
	}
	if len(m.inputFrame.Pointer) != 0 {
		t.Error("pointer samples should be consumed by the tick")
	}
}

func TestGameModelRecordsSolve(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, store)

	m = dragRight(t, m, game, 0, 0)
	m = dragRight(t, m, game, 1, 0)

	if !m.State().Solved {
		t.Fatalf("stage should be solved, state %+v", m.State())
	}
	if m.LastSolveID() == 0 {
		t.Fatal("solve was not recorded")
	}

	best, err := store.BestSolve("01")
	if err != nil || best == nil {
		t.Fatalf("BestSolve: %v, %v", best, err)
	}
	if best.Moves != 2 || best.Mode != GamePractice {
		t.Errorf("best = %+v, want 2 moves in practice", best)
	}

	// Idle ticks after the solve do not record it again.
	first := m.LastSolveID()
	m = update(t, m, TickMsg(time.Now()))
	if m.LastSolveID() != first {
		t.Error("solve recorded twice")
	}
}

func TestGameModelKeys(t *testing.T) {
	m, _ := newTestModel(t, nil)

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("esc should go back to the menu")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m = update(t, m, TickMsg(time.Now()))
	if st := m.State(); st.StageID != "02" {
		t.Errorf("n should open the next stage, on %q", st.StageID)
	}
}

func TestGameModelResizeKeepsStage(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = dragRight(t, m, game, 0, 0)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, TickMsg(time.Now()))

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
	if m.State().Moves != 1 {
		t.Errorf("resize lost progress: moves = %d", m.State().Moves)
	}
}

func TestGameModelHelpToggleResizesScreen(t *testing.T) {
	m, _ := newTestModel(t, nil)
	short := m.screen.Height()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.screen.Height() >= short {
		t.Errorf("full help should take more rows: %d -> %d", short, m.screen.Height())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.screen.Height() != short {
		t.Errorf("height = %d after closing help, want %d", m.screen.Height(), short)
	}
}
