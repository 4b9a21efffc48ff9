// Package roll provides the Roll sliding-tile puzzle for the terminal.
package roll

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-roll/internal/config"
	platformcore "github.com/vovakirdan/tui-roll/internal/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll/stages"
	"github.com/vovakirdan/tui-roll/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Solved stages advance to the next one
	ModePractice Mode = "practice" // Stay on the chosen stage
)

// Options configures new games.
type Options struct {
	Config     config.RollConfig
	StageDir   string      // Load stages from this directory instead of the builtin pack
	StartStage string      // Stage ID to open first
	Logger     *log.Logger // Defaults to log.Default()
}

// How long the clear banner shows before campaign mode moves on.
const clearBannerSeconds = 2

// Package-level options used by registered factories.
var defaults = Options{Config: config.DefaultRollConfig()}

// Configure sets the options used by games created through the registry.
func Configure(opts Options) {
	defaults = opts
}

func init() {
	registry.Register("roll", func() registry.Game {
		return New(ModeCampaign, defaults)
	})
	registry.Register("roll_practice", func() registry.Game {
		return New(ModePractice, defaults)
	})
}

// Game implements registry.Game for Roll.
// It projects mouse samples into world space, feeds them to a core.Board,
// and draws the board state.
type Game struct {
	mode Mode
	opts Options
	log  *log.Logger

	board   *core.Board
	gesture core.GestureConfig
	stages  []core.Stage
	index   int
	loadErr error

	// Drag routed to the board, if any
	active   core.TileID
	dragging bool

	// Screen dimensions and layout
	screenW  int
	screenH  int
	tickRate int
	camera   Camera
	tooSmall bool

	// Status
	tick        uint64
	stageTicks  uint64
	solved      bool
	finished    bool
	paused      bool
	bannerTicks int
}

// New creates a game. The stage list is loaded on Reset.
func New(mode Mode, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		mode: mode,
		opts: opts,
		log:  logger.WithPrefix("roll"),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "roll_practice"
	}
	return "roll"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Roll (Practice)"
	}
	return "Roll"
}

// Reset loads the stage list and opens the start stage.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.finished = false
	g.paused = false
	g.loadErr = nil

	gs := g.opts.Config.Gesture
	g.gesture = core.GestureConfig{
		MoveThreshold: gs.MoveThreshold,
		SnapThreshold: gs.SnapThreshold,
	}
	board, err := core.NewBoard(&g.gesture, core.UnitLayout(), logListener{log: g.log})
	if err != nil {
		g.fail(fmt.Errorf("creating board: %w", err))
		return
	}
	g.board = board

	all, err := LoadStages(g.opts.StageDir)
	if err != nil {
		g.fail(err)
		return
	}
	if len(all) == 0 {
		g.fail(core.ErrNoStage)
		return
	}
	g.stages = all

	g.index = 0
	if start := g.opts.StartStage; start != "" {
		if i := stageIndex(all, start); i >= 0 {
			g.index = i
		} else {
			g.log.Warn("start stage not found, opening the first one", "stage", start)
		}
	}
	g.loadCurrentStage()
}

// fail records an error that prevents play.
func (g *Game) fail(err error) {
	g.loadErr = err
	g.finished = true
	g.log.Error("cannot start", "err", err)
}

// LoadStages returns the stages in dir, or the builtin pack when dir is empty.
func LoadStages(dir string) ([]core.Stage, error) {
	loader := stages.Builtin()
	if dir != "" {
		loader = stages.NewDirLoader(dir)
	}
	all, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading stages: %w", err)
	}
	return all, nil
}

func stageIndex(all []core.Stage, id string) int {
	for i, s := range all {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// loadCurrentStage puts the stage at index on the board.
func (g *Game) loadCurrentStage() {
	g.dragging = false
	g.active = core.NoTile
	g.solved = false
	g.stageTicks = 0
	g.bannerTicks = 0

	if g.index < 0 || g.index >= len(g.stages) {
		g.board.Clear()
		g.finished = true
		return
	}
	g.finished = false

	stage := g.stages[g.index]
	if err := g.board.LoadStage(stage); err != nil {
		g.log.Error("stage rejected", "stage", stage.ID, "err", err)
		g.loadErr = err
		return
	}
	g.loadErr = nil
	g.log.Info("stage loaded", "stage", stage.ID, "name", stage.Name,
		"size", fmt.Sprintf("%dx%d", stage.Width, stage.Height))
	g.calculateLayout()
}

// calculateLayout fits the board into the screen, shrinking tiles when the
// configured size does not fit.
func (g *Game) calculateLayout() {
	stage, ok := g.board.Stage()
	if !ok {
		return
	}
	d := g.opts.Config.Display

	// HUD on top, frame around the board, padding outside the frame
	availW := g.screenW - 2*(d.Padding+1)
	availH := g.screenH - hudHeight - 2*(d.Padding+1)

	tileW := platformcore.Min(d.TileWidth, availW/stage.Width)
	tileH := platformcore.Min(d.TileHeight, availH/stage.Height)
	if tileW < 1 || tileH < 1 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	boardW := stage.Width * tileW
	boardH := stage.Height * tileH
	x := (g.screenW - boardW) / 2
	y := hudHeight + (g.screenH-hudHeight-boardH)/2
	g.camera = NewCamera(x, y, stage.Width, stage.Height, tileW, tileH)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.board == nil {
		return platformcore.StepResult{State: g.State()}
	}

	switch {
	case in.Has(platformcore.ActionRestart):
		if g.finished && g.mode == ModeCampaign && g.loadErr == nil {
			g.index = 0
		}
		g.loadCurrentStage()
		return platformcore.StepResult{State: g.State()}
	case in.Has(platformcore.ActionNext):
		g.gotoStage(g.index + 1)
		return platformcore.StepResult{State: g.State()}
	case in.Has(platformcore.ActionPrev):
		g.gotoStage(g.index - 1)
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.finished {
		g.paused = !g.paused
		if g.paused {
			g.releaseDrag()
		}
	}

	if g.finished || g.paused || g.tooSmall || !g.board.Loaded() {
		return platformcore.StepResult{State: g.State()}
	}

	if g.solved {
		g.bannerTicks++
		if g.mode == ModeCampaign && g.bannerTicks >= clearBannerSeconds*g.tickRate {
			g.gotoStage(g.index + 1)
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.stageTicks++
	for _, p := range in.Pointer {
		g.handlePointer(p)
	}

	result := platformcore.StepResult{}
	if g.board.Solved() {
		g.solved = true
		g.releaseDrag()
		result.Cleared = true
		g.log.Info("stage solved", "stage", g.stages[g.index].ID,
			"moves", g.board.Moves(), "time", g.Elapsed().Round(time.Second))
	}
	result.State = g.State()
	return result
}

// gotoStage moves to stage i. Campaign mode stops at the ends of the list.
func (g *Game) gotoStage(i int) {
	if len(g.stages) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(g.stages) {
		if g.mode == ModePractice {
			i = len(g.stages) - 1
		} else {
			g.index = len(g.stages)
			g.releaseDrag()
			g.board.Clear()
			g.finished = true
			g.log.Info("all stages cleared")
			return
		}
	}
	g.index = i
	g.loadCurrentStage()
}

// handlePointer routes one mouse sample to the board.
func (g *Game) handlePointer(p platformcore.PointerSample) {
	world := g.camera.ScreenToWorld(p.X, p.Y)

	switch p.Kind {
	case platformcore.PointerPress:
		// A press without a release in between ends the old drag first.
		g.releaseDrag()
		if !g.camera.Contains(p.X, p.Y) {
			return
		}
		id, ok := g.board.TileAt(world)
		if !ok {
			return
		}
		res, err := g.board.PointerDown(id, world)
		if err != nil {
			g.log.Error("press rejected", "tile", id, "err", err)
			return
		}
		if res != core.ResultIgnored {
			g.active = id
			g.dragging = true
		}

	case platformcore.PointerMotion:
		if !g.dragging {
			return
		}
		res, err := g.board.PointerMove(g.active, world)
		if err != nil {
			g.log.Error("drag rejected", "tile", g.active, "err", err)
			g.dragging = false
			return
		}
		g.logResult(res)
		if res == core.ResultCommitted || res == core.ResultReverted {
			g.dragging = false
		}

	case platformcore.PointerRelease:
		g.releaseDrag()
	}
}

// releaseDrag ends the current drag, returning the tile to its cell unless
// it already committed.
func (g *Game) releaseDrag() {
	if !g.dragging {
		return
	}
	g.dragging = false
	res, err := g.board.PointerUp(g.active)
	if err != nil {
		g.log.Error("release rejected", "tile", g.active, "err", err)
		return
	}
	g.logResult(res)
}

func (g *Game) logResult(res core.Result) {
	if res == core.ResultReverted {
		g.log.Debug("drag reverted", "tile", g.active)
	}
}

// Elapsed returns the play time on the current stage.
func (g *Game) Elapsed() time.Duration {
	if g.tickRate <= 0 {
		return 0
	}
	return time.Duration(g.stageTicks) * time.Second / time.Duration(g.tickRate)
}

// Board returns the underlying board.
func (g *Game) Board() *core.Board {
	return g.board
}

// Camera returns the current screen projection.
func (g *Game) Camera() Camera {
	return g.camera
}

// Err returns the error that stopped the last stage from loading, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Ticks:    g.stageTicks,
		Solved:   g.solved,
		Finished: g.finished,
		Paused:   g.paused,
	}
	if g.board != nil {
		st.Moves = g.board.Moves()
		if stage, ok := g.board.Stage(); ok {
			st.StageID = stage.ID
			st.StageName = stage.Name
		}
	}
	return st
}

// StageInfo describes a playable stage for menus.
type StageInfo struct {
	ID      string
	Name    string
	Width   int
	Height  int
	HasGoal bool
}

// ListStages returns the stages a game with these options would play.
func ListStages(dir string) ([]StageInfo, error) {
	all, err := LoadStages(dir)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, core.ErrNoStage
	}
	out := make([]StageInfo, len(all))
	for i, s := range all {
		out[i] = StageInfo{
			ID:      s.ID,
			Name:    s.Name,
			Width:   s.Width,
			Height:  s.Height,
			HasGoal: len(s.Goal) > 0,
		}
	}
	return out, nil
}

// Resize adapts the layout to a new screen size without restarting the stage.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.board == nil || !g.board.Loaded() {
		return
	}
	// Screen positions of an ongoing drag no longer mean the same thing.
	g.releaseDrag()
	g.calculateLayout()
}
