package lavamaze

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lavamaze/internal/core"
	"github.com/vovakirdan/lavamaze/internal/maze"
)

// Glyphs for the top-down view. Each maze cell spans two screen columns to
// compensate for terminal character aspect ratio.
const (
	wallGlyph   = '█'
	lavaGlyph   = '~'
	floorGlyph  = '·'
	keyGlyph    = '*'
	boxGlyph    = '▓'
	goalGlyph   = 'G'
	playerGlyph = '@'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX, offY := g.mapOffsets(dst)

	g.renderGrid(dst, offX, offY)
	g.renderEntities(dst, offX, offY)
	g.renderPlayer(dst, offX, offY)

	switch {
	case g.showHelp:
		g.renderHelp(dst)
	case g.status == StatusWon:
		g.renderOverlay(dst, "You escaped!", fmt.Sprintf("Score: %d - press R to restart", g.State().Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// mapOffsets centers the map below the HUD.
func (g *Game) mapOffsets(dst *core.Screen) (int, int) {
	return (dst.Width() - g.grid.Size*2) / 2, hudHeight
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Lava Maze | Keys: %d/%d  Health: %d  Deaths: %d  [F]push [H]help",
		g.player.Keys, g.cfg.Keys.Count, g.player.Health, g.deaths)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the static maze geometry.
func (g *Game) renderGrid(dst *core.Screen, offX, offY int) {
	for z := 0; z < g.grid.Size; z++ {
		for x := 0; x < g.grid.Size; x++ {
			sx := offX + x*2
			sy := offY + z
			switch g.grid.KindAt(x, z) {
			case maze.Wall:
				dst.SetColored(sx, sy, wallGlyph, core.ColorGray)
				dst.SetColored(sx+1, sy, wallGlyph, core.ColorGray)
			case maze.Lava:
				dst.SetColored(sx, sy, lavaGlyph, core.ColorBrightRed)
				dst.SetColored(sx+1, sy, lavaGlyph, core.ColorRed)
			case maze.Floor:
				dst.SetColored(sx, sy, floorGlyph, core.ColorGray)
			}
		}
	}
}

// renderEntities draws goal, keys, and boxes at their grid-quantized cells.
func (g *Game) renderEntities(dst *core.Screen, offX, offY int) {
	gx, gz := g.grid.GoalCell()
	dst.SetColored(offX+gx*2, offY+gz, goalGlyph, core.ColorBrightGreen)

	for _, k := range g.keys {
		x, z := g.grid.CellAt(k)
		dst.SetColored(offX+x*2, offY+z, keyGlyph, core.ColorBrightYellow)
	}
	for _, b := range g.boxes {
		x, z := g.grid.CellAt(b)
		dst.SetColored(offX+x*2, offY+z, boxGlyph, core.ColorOrange)
	}
}

// renderPlayer draws the player at its continuous world position.
func (g *Game) renderPlayer(dst *core.Screen, offX, offY int) {
	sx := offX + int(math.Round(g.player.Pos.X/g.grid.CellSize*2))
	sy := offY + int(math.Round(g.player.Pos.Z/g.grid.CellSize))
	dst.SetColored(sx, sy, playerGlyph, core.ColorBrightWhite)
}

// renderHelp draws the controls overlay.
func (g *Game) renderHelp(dst *core.Screen) {
	lines := []string{
		"Controls",
		"",
		"WASD / arrows  move",
		"F              push a nearby box",
		"R              restart (new keys and boxes)",
		"P              pause",
		"H              close this help",
		"Q              quit",
	}

	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	g.fillBox(dst, boxX, boxY, boxW, boxH)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+1+i, l)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	g.fillBox(dst, boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// fillBox blanks a region and draws its border.
func (g *Game) fillBox(dst *core.Screen, x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			dst.Set(i, j, ' ')
		}
	}
	dst.DrawBox(x, y, w, h)
}
