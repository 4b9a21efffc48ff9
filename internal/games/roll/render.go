package roll

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/tui-roll/internal/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
)

const hudHeight = 2

const (
	glyphEmpty   = '·'
	glyphFixed   = '▒'
	glyphMovable = '█'
	glyphGoal    = '◦'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.board == nil || (g.loadErr != nil && !g.board.Loaded()):
		msg := "Nothing to play"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.renderOverlay(dst, "Cannot load stage", truncate(msg, dst.Width()-6))
		return
	case g.finished:
		g.renderOverlay(dst, "All stages cleared!", "R: play again  Q: quit")
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.solved && g.mode == ModeCampaign:
		g.renderOverlay(dst, "Stage clear!", fmt.Sprintf("%d moves in %s", g.board.Moves(), formatElapsed(g.Elapsed())))
	case g.solved:
		g.renderOverlay(dst, "Stage clear!", "R: again  N: next stage")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the stage title and counters.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	st := g.State()
	title := g.Title()
	if st.StageID != "" {
		title = fmt.Sprintf("%s  %d/%d  %s", g.Title(), g.index+1, len(g.stages), st.StageName)
	}
	dst.DrawTextColored(1, 0, title, platformcore.ColorBrightWhite)

	if st.StageID == "" {
		return
	}
	stats := fmt.Sprintf("Moves: %d  Time: %s", st.Moves, formatElapsed(g.Elapsed()))
	if !g.board.HasGoal() {
		stats = fmt.Sprintf("Moves: %d  Free play", st.Moves)
	}
	dst.DrawTextColored(dst.Width()-len(stats)-1, 0, stats, platformcore.ColorGray)
}

// renderBoard draws the frame, empty cells, goal markers and tiles.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	grid := g.board.Grid()
	cam := g.camera
	area := cam.Area

	frame := platformcore.NewRect(area.X-1, area.Y-1, area.W+2, area.H+2)
	dst.DrawBox(frame, platformcore.ColorGray)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			r := cam.CellRect(core.C(x, y))
			cx, cy := r.Center()
			dst.SetColored(cx, cy, glyphEmpty, platformcore.ColorGray)
		}
	}

	stage, _ := g.board.Stage()
	for id, cell := range stage.Goal {
		t, ok := grid.Tile(id)
		if !ok || t.Pos == cell {
			continue
		}
		cx, cy := cam.CellRect(cell).Center()
		dst.SetColored(cx, cy, glyphGoal, KindColor(t.Kind))
	}

	// The dragged tile is drawn last so it stays on top.
	var dragged *core.Tile
	for _, t := range grid.Tiles() {
		if g.dragging && t.ID == g.active {
			tile := t
			dragged = &tile
			continue
		}
		g.renderTile(dst, t)
	}
	if dragged != nil {
		g.renderTile(dst, *dragged)
	}
}

// renderTile draws one tile at its visual position.
func (g *Game) renderTile(dst *platformcore.Screen, t core.Tile) {
	pos, ok := g.board.Visual(t.ID)
	if !ok {
		return
	}
	x, y := g.camera.WorldToScreen(pos)
	r := platformcore.NewRect(x, y, g.camera.TileW, g.camera.TileH)
	color := KindColor(t.Kind)

	if !t.Movable {
		dst.DrawRect(r, glyphFixed, color)
		return
	}

	if r.W >= 3 && r.H >= 3 {
		dst.DrawBox(r, color)
		label := truncate(string(t.ID), r.W-2)
		_, cy := r.Center()
		dst.DrawTextColored(r.X+(r.W-len([]rune(label)))/2, cy, label, color)
		return
	}
	dst.DrawRect(r, glyphMovable, color)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := platformcore.Max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorDefault)
}

func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
