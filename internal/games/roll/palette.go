package roll

import (
	"strings"

	platformcore "github.com/vovakirdan/tui-roll/internal/core"
)

// Kinds that are not color names but still have a fixed look.
var kindColors = map[string]platformcore.Color{
	"wall":  platformcore.ColorGray,
	"rock":  platformcore.ColorGray,
	"stone": platformcore.ColorWhite,
	"gold":  platformcore.ColorBrightYellow,
}

// KindColor returns the color used to draw a tile kind.
// Kinds are either color names ("red", "bright_cyan") or one of the fixed
// kinds above; anything else is drawn in the default color.
func KindColor(kind string) platformcore.Color {
	if c, ok := kindColors[strings.ToLower(kind)]; ok {
		return c
	}
	c, _ := platformcore.ColorByName(kind)
	return c
}
