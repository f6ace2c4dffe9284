package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crouton-games/peanut-panic/internal/config"
	"github.com/crouton-games/peanut-panic/internal/core"
	"github.com/crouton-games/peanut-panic/internal/game"
	"github.com/crouton-games/peanut-panic/internal/skin"
)

// Glyphs for world entities
const (
	soupCrestChar = '~'
	soupBodyChar  = '≈'
	tineChar      = '█'
	tineCapTop    = '▄'
	tineCapBottom = '▀'
	bubbleSmall   = '°'
	bubbleMedium  = 'o'
	bubbleLarge   = 'O'
)

// viewport maps world coordinates onto the screen cell grid.
// The simulation runs in fixed world units regardless of terminal size;
// only this projection changes on resize.
type viewport struct {
	sx float64 // cells per world unit, horizontal
	sy float64 // cells per world unit, vertical
}

func newViewport(dst *core.Screen, cfg *config.Config) viewport {
	return viewport{
		sx: float64(dst.Width()) / cfg.World.Width,
		sy: float64(dst.Height()) / cfg.World.Height,
	}
}

func (v viewport) cellX(x float64) int { return int(x * v.sx) }
func (v viewport) cellY(y float64) int { return int(y * v.sy) }

// worldX returns the world coordinate at the center of a cell column.
func (v viewport) worldX(col int) float64 {
	return (float64(col) + 0.5) / v.sx
}

// DrawSnapshot renders one simulation snapshot into the screen buffer:
// soup first, then bubbles, forks, the peanut, the HUD, and finally any
// phase overlay.
func DrawSnapshot(dst *core.Screen, snap game.Snapshot, soup game.Soup, cfg *config.Config) {
	dst.Clear()

	if dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}

	v := newViewport(dst, cfg)

	drawSoup(dst, v, soup, snap.Frame)
	drawBubbles(dst, v, snap.Bubbles)
	for _, f := range snap.Forks {
		drawFork(dst, v, f)
	}
	drawPlayer(dst, v, snap)
	drawHUD(dst, snap)

	switch snap.Phase {
	case game.PhaseMenu:
		drawMenuOverlay(dst, snap)
	case game.PhaseGameOver:
		drawGameOverOverlay(dst, snap)
	}
}

// drawSoup samples the live surface at every screen column. The crest row
// gets a lighter wave glyph; everything below is filled as soup body.
func drawSoup(dst *core.Screen, v viewport, soup game.Soup, frame uint64) {
	for x := 0; x < dst.Width(); x++ {
		surface := v.cellY(soup.HeightAt(v.worldX(x), frame))
		if surface < 0 {
			surface = 0
		}
		dst.SetCell(x, surface, soupCrestChar, core.ColorBrightYellow)
		for y := surface + 1; y < dst.Height(); y++ {
			dst.SetCell(x, y, soupBodyChar, core.ColorOrange)
		}
	}
}

func drawBubbles(dst *core.Screen, v viewport, bubbles []game.Bubble) {
	for _, b := range bubbles {
		ch := bubbleSmall
		switch {
		case b.Radius >= 5.5:
			ch = bubbleLarge
		case b.Radius >= 3.5:
			ch = bubbleMedium
		}
		dst.SetCell(v.cellX(b.X), v.cellY(b.Y), ch, core.ColorBrightYellow)
	}
}

// drawFork fills both tines and marks the gap-facing tips with cap glyphs.
func drawFork(dst *core.Screen, v viewport, f game.ForkView) {
	drawTine(dst, v, f.Top, false)
	drawTine(dst, v, f.Bottom, true)
}

func drawTine(dst *core.Screen, v viewport, r core.Rect, isBottom bool) {
	x0, y0, x1, y1 := fillWorldRect(dst, v, r, tineChar, core.ColorGray)

	capY := y1 - 1
	capChar := tineCapTop
	if isBottom {
		capY = y0
		capChar = tineCapBottom
	}
	for x := x0; x < x1; x++ {
		dst.SetCell(x, capY, capChar, core.ColorWhite)
	}
}

// drawPlayer fills the peanut's box with the active skin glyph.
func drawPlayer(dst *core.Screen, v viewport, snap game.Snapshot) {
	sk := skin.Parse(snap.Skin)
	fillWorldRect(dst, v, snap.Player.Rect(), sk.Glyph, sk.Color)
}

// fillWorldRect projects a world rect onto cells and fills it. Rects with
// positive world size always cover at least one cell. Returns the projected
// cell bounds.
func fillWorldRect(dst *core.Screen, v viewport, r core.Rect, ch rune, c core.Color) (x0, y0, x1, y1 int) {
	x0 = v.cellX(r.X)
	x1 = v.cellX(r.Right())
	y0 = v.cellY(r.Y)
	y1 = v.cellY(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.FillRect(x0, y0, x1-x0, y1-y0, ch, c)
	return x0, y0, x1, y1
}

// drawHUD writes the score line along the top edge.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)

	best := fmt.Sprintf("Best: %d", snap.HighScore)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorGray)
}

func drawMenuOverlay(dst *core.Screen, snap game.Snapshot) {
	sk := skin.Parse(snap.Skin)
	drawOverlay(dst,
		"PEANUT PANIC",
		fmt.Sprintf("Skin: %s %c", sk.Title, sk.Glyph),
		"enter: start   c: skin   q: quit",
	)
}

func drawGameOverOverlay(dst *core.Screen, snap game.Snapshot) {
	drawOverlay(dst,
		"GAME OVER",
		fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.HighScore),
		"enter: again   esc: menu",
	)
}

// drawOverlay draws a boxed message in the center of the screen with a
// blank row between lines.
func drawOverlay(dst *core.Screen, lines ...string) {
	w, h := dst.Width(), dst.Height()

	boxW := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > boxW {
			boxW = n
		}
	}
	boxW += 4
	boxH := 2*len(lines) + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	for i, line := range lines {
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(x, boxY+1+2*i, line, core.ColorBrightWhite)
	}
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
