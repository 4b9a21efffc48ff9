package roll

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
)

// logListener reports board notifications to a logger.
// Visual position updates arrive on every drag sample and are not logged.
type logListener struct {
	core.NopListener
	log *log.Logger
}

func (l logListener) OnTileCommitted(id core.TileID, from, to core.Coord) {
	l.log.Debug("tile committed", "tile", id, "from", from, "to", to)
}

func (l logListener) OnStageCleared() {
	l.log.Debug("board cleared")
}

func (l logListener) OnStageLoaded(width, height int) {
	l.log.Debug("board ready", "width", width, "height", height)
}
