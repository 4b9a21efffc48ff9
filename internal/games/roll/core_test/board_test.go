package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
)

func newBoard(t *testing.T) (*core.Board, *recorder) {
	t.Helper()
	rec := &recorder{}
	b, err := core.NewBoard(testConfig, core.UnitLayout(), rec)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b, rec
}

func scenarioStage() core.Stage {
	return core.Stage{
		ID:     "scenario",
		Name:   "Scenario",
		Width:  4,
		Height: 4,
		Tiles: []core.Placement{
			{X: 1, Y: 1, ID: "T", Kind: "red", Movable: true},
			{X: 3, Y: 3, ID: "W", Kind: "wall"},
			{X: 0, Y: 3, Empty: true},
		},
	}
}

func TestNewBoardRejectsBadConfig(t *testing.T) {
	_, err := core.NewBoard(&core.GestureConfig{MoveThreshold: 0.1}, core.UnitLayout(), nil)
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("NewBoard() error = %v, want ErrInvalidConfig", err)
	}
}

func TestBoardLoadStage(t *testing.T) {
	b, rec := newBoard(t)

	if err := b.LoadStage(scenarioStage()); err != nil {
		t.Fatalf("LoadStage() failed: %v", err)
	}

	if !b.Loaded() {
		t.Fatal("board should be loaded")
	}
	g := b.Grid()
	if g.Width() != 4 || g.Height() != 4 {
		t.Errorf("grid is %dx%d, want 4x4", g.Width(), g.Height())
	}
	if g.OccupiedCount() != 2 {
		t.Errorf("expected 2 tiles, got %d", g.OccupiedCount())
	}
	if !g.IsEmpty(core.C(0, 3)) {
		t.Error("hole entry should leave its cell empty")
	}
	if _, ok := b.Gesture("T"); !ok {
		t.Error("movable tile should have a gesture")
	}
	if _, ok := b.Gesture("W"); ok {
		t.Error("immovable tile should not have a gesture")
	}
	if len(rec.loaded) != 1 || rec.loaded[0] != [2]int{4, 4} {
		t.Errorf("loaded notifications = %v, want [[4 4]]", rec.loaded)
	}
}

func TestBoardLoadStageGeneratesIDs(t *testing.T) {
	b, _ := newBoard(t)

	stage := core.Stage{
		Width:  2,
		Height: 2,
		Tiles:  []core.Placement{{X: 1, Y: 0, Movable: true}},
	}
	if err := b.LoadStage(stage); err != nil {
		t.Fatalf("LoadStage() failed: %v", err)
	}
	id, _ := b.Grid().Get(core.C(1, 0))
	if id != core.DefaultTileID(1, 0) {
		t.Errorf("generated id = %q, want %q", id, core.DefaultTileID(1, 0))
	}
}

// Scenario C and friends: malformed stages are rejected wholesale.
func TestBoardLoadStageInvalid(t *testing.T) {
	tests := []struct {
		name  string
		stage core.Stage
		code  string
	}{
		{
			name:  "x out of range",
			stage: core.Stage{Width: 4, Height: 4, Tiles: []core.Placement{{X: 1, Y: 1, ID: "a"}, {X: 4, Y: 1, ID: "b"}}},
			code:  core.CodeOutOfBounds,
		},
		{
			name:  "negative y",
			stage: core.Stage{Width: 4, Height: 4, Tiles: []core.Placement{{X: 0, Y: -1, ID: "a"}}},
			code:  core.CodeOutOfBounds,
		},
		{
			name:  "hole out of range",
			stage: core.Stage{Width: 2, Height: 2, Tiles: []core.Placement{{X: 2, Y: 0, Empty: true}}},
			code:  core.CodeOutOfBounds,
		},
		{
			name:  "duplicate cell",
			stage: core.Stage{Width: 4, Height: 4, Tiles: []core.Placement{{X: 1, Y: 1, ID: "a"}, {X: 1, Y: 1, ID: "b"}}},
			code:  core.CodeDuplicateCell,
		},
		{
			name:  "hole on a tile",
			stage: core.Stage{Width: 4, Height: 4, Tiles: []core.Placement{{X: 1, Y: 1, ID: "a"}, {X: 1, Y: 1, Empty: true}}},
			code:  core.CodeDuplicateCell,
		},
		{
			name:  "duplicate id",
			stage: core.Stage{Width: 4, Height: 4, Tiles: []core.Placement{{X: 0, Y: 0, ID: "a"}, {X: 1, Y: 1, ID: "a"}}},
			code:  core.CodeDuplicateID,
		},
		{
			name:  "zero width",
			stage: core.Stage{Width: 0, Height: 4},
			code:  core.CodeBadSize,
		},
		{
			name:  "too tall",
			stage: core.Stage{Width: 4, Height: core.MaxStageSize + 1},
			code:  core.CodeBadSize,
		},
		{
			name: "goal for unknown tile",
			stage: core.Stage{Width: 2, Height: 2, Tiles: []core.Placement{{X: 0, Y: 0, ID: "a"}},
				Goal: map[core.TileID]core.Coord{"b": core.C(1, 1)}},
			code: core.CodeBadGoal,
		},
		{
			name: "goal out of bounds",
			stage: core.Stage{Width: 2, Height: 2, Tiles: []core.Placement{{X: 0, Y: 0, ID: "a"}},
				Goal: map[core.TileID]core.Coord{"a": core.C(2, 1)}},
			code: core.CodeBadGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newBoard(t)
			if err := b.LoadStage(scenarioStage()); err != nil {
				t.Fatalf("loading valid stage failed: %v", err)
			}

			err := b.LoadStage(tt.stage)
			if !errors.Is(err, core.ErrInvalidStage) {
				t.Fatalf("LoadStage() error = %v, want ErrInvalidStage", err)
			}
			var stageErr core.StageError
			if !errors.As(err, &stageErr) || stageErr.Code != tt.code {
				t.Errorf("error code = %q, want %q (%v)", stageErr.Code, tt.code, err)
			}
			if b.Loaded() || b.Grid() != nil {
				t.Error("rejected stage must leave the board cleared")
			}
		})
	}
}

func TestBoardRouteInputScenarioA(t *testing.T) {
	b, rec := newBoard(t)
	if err := b.LoadStage(scenarioStage()); err != nil {
		t.Fatal(err)
	}

	if res, err := b.PointerDown("T", core.V(0, 0)); err != nil || res != core.ResultTracking {
		t.Fatalf("PointerDown = %v, %v", res, err)
	}
	res, err := b.PointerMove("T", core.V(0, 0.5))
	if err != nil || res != core.ResultCommitted {
		t.Fatalf("PointerMove = %v, %v; want Committed", res, err)
	}

	id, _ := b.Grid().Get(core.C(1, 2))
	if id != "T" {
		t.Errorf("(1,2) holds %q, want T", id)
	}
	if b.Moves() != 1 {
		t.Errorf("moves = %d, want 1", b.Moves())
	}
	if pos, _ := b.Visual("T"); pos != core.V(1, 2) {
		t.Errorf("visual after commit = %v, want (1,2)", pos)
	}
	if len(rec.commits) != 1 {
		t.Errorf("expected one commit notification, got %d", len(rec.commits))
	}
}

func TestBoardRouteInputScenarioB(t *testing.T) {
	b, _ := newBoard(t)
	stage := scenarioStage()
	stage.Tiles = append(stage.Tiles, core.Placement{X: 1, Y: 2, ID: "B", Movable: true})
	if err := b.LoadStage(stage); err != nil {
		t.Fatal(err)
	}

	b.PointerDown("T", core.V(0, 0))
	res, err := b.PointerMove("T", core.V(0, 0.5))
	if err != nil || res != core.ResultReverted {
		t.Fatalf("PointerMove = %v, %v; want Reverted", res, err)
	}
	tile, _ := b.Grid().Tile("T")
	if tile.Pos != core.C(1, 1) {
		t.Errorf("T at %v, want (1,1)", tile.Pos)
	}
	if pos, _ := b.Visual("T"); pos != core.V(1, 1) {
		t.Errorf("visual = %v, want (1,1)", pos)
	}
	if b.Moves() != 0 {
		t.Errorf("moves = %d, want 0", b.Moves())
	}
}

// Scenario D through the board.
func TestBoardImmovableTileIgnored(t *testing.T) {
	b, rec := newBoard(t)
	if err := b.LoadStage(scenarioStage()); err != nil {
		t.Fatal(err)
	}
	before := b.Grid().Snapshot()

	for _, ev := range []core.PointerEvent{
		{Action: core.ActionDown, Pos: core.V(3, 3)},
		{Action: core.ActionMove, Pos: core.V(3, 1)},
		{Action: core.ActionMove, Pos: core.V(1, 3)},
		{Action: core.ActionUp},
	} {
		res, err := b.RouteInput("W", ev)
		if err != nil || res != core.ResultIgnored {
			t.Fatalf("RouteInput(W, %v) = %v, %v; want Ignored", ev.Action, res, err)
		}
	}

	after := b.Grid().Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("immovable tile changed the grid")
		}
	}
	if len(rec.visuals) != 0 {
		t.Errorf("immovable tile produced visual changes: %v", rec.visuals)
	}
}

func TestBoardUnknownTile(t *testing.T) {
	b, _ := newBoard(t)

	if _, err := b.PointerDown("T", core.V(0, 0)); !errors.Is(err, core.ErrUnknownTile) {
		t.Errorf("input with no stage: error = %v, want ErrUnknownTile", err)
	}

	if err := b.LoadStage(scenarioStage()); err != nil {
		t.Fatal(err)
	}
	before := b.Grid().Snapshot()
	if _, err := b.PointerDown("ghost", core.V(0, 0)); !errors.Is(err, core.ErrUnknownTile) {
		t.Errorf("error = %v, want ErrUnknownTile", err)
	}
	after := b.Grid().Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("unknown tile input changed the grid")
		}
	}
}

func TestBoardClear(t *testing.T) {
	b, rec := newBoard(t)
	if err := b.LoadStage(scenarioStage()); err != nil {
		t.Fatal(err)
	}
	cleared := rec.cleared

	b.Clear()

	if b.Loaded() || b.Grid() != nil {
		t.Error("board should be empty after Clear")
	}
	if _, ok := b.Gesture("T"); ok {
		t.Error("gestures should be discarded after Clear")
	}
	if rec.cleared != cleared+1 {
		t.Errorf("expected one more cleared notification, got %d", rec.cleared-cleared)
	}
}

func TestBoardTileAt(t *testing.T) {
	b, err := core.NewBoard(testConfig, core.Layout{Origin: core.V(-2, -2), CellSize: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.LoadStage(scenarioStage()); err != nil {
		t.Fatal(err)
	}

	if id, ok := b.TileAt(core.V(-0.5, -0.5)); !ok || id != "T" {
		t.Errorf("TileAt(-0.5,-0.5) = %q, %v; want T", id, ok)
	}
	if _, ok := b.TileAt(core.V(0.5, 0.5)); ok {
		t.Error("TileAt over an empty cell should report nothing")
	}
	if _, ok := b.TileAt(core.V(10, 10)); ok {
		t.Error("TileAt off the board should report nothing")
	}
}

func TestBoardSolved(t *testing.T) {
	b, _ := newBoard(t)
	stage := core.Stage{
		Width:  3,
		Height: 1,
		Tiles:  []core.Placement{{X: 0, Y: 0, ID: "a", Movable: true}},
		Goal:   map[core.TileID]core.Coord{"a": core.C(2, 0)},
	}
	if err := b.LoadStage(stage); err != nil {
		t.Fatal(err)
	}
	if b.Solved() {
		t.Fatal("stage should not start solved")
	}

	for i := 0; i < 2; i++ {
		b.PointerDown("a", core.V(0, 0))
		if res, _ := b.PointerMove("a", core.V(0.5, 0)); res != core.ResultCommitted {
			t.Fatalf("move %d = %v, want Committed", i, res)
		}
		b.PointerUp("a")
	}

	if !b.Solved() {
		t.Errorf("stage should be solved, grid:\n%s", b.Grid())
	}
	if b.Moves() != 2 {
		t.Errorf("moves = %d, want 2", b.Moves())
	}
}

func TestBoardFreePlayNeverSolved(t *testing.T) {
	b, _ := newBoard(t)
	if err := b.LoadStage(scenarioStage()); err != nil {
		t.Fatal(err)
	}
	if b.HasGoal() || b.Solved() {
		t.Error("stage without goal should never be solved")
	}
}
