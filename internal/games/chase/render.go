package chase

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/catfish/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	FishChar   = '≈'
	GoldenChar = '★'
	DogChar    = '▓'
	MagnetChar = 'M'
	ShieldChar = 'S'
	ComboChar  = '━'
)

// hudRows is the number of rows above the field border.
const hudRows = 1

// Render draws the current state to dst: a HUD row, the bordered field and
// the pause or shop overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 8 {
		dst.DrawText(0, 0, "terminal too small")
		return
	}

	g.drawHUD(dst)

	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	dst.DrawBox(field)
	view := viewport{
		inner: core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2),
		w:     g.cfg.Field.Width,
		h:     g.cfg.Field.Height,
	}

	for _, c := range g.collectibles {
		if c.Golden {
			view.fill(dst, c.Box, GoldenChar, core.ColorBrightYellow)
		} else {
			view.fill(dst, c.Box, FishChar, core.ColorWhite)
		}
	}
	for _, p := range g.pickups {
		switch p.Kind {
		case PickupMagnet:
			view.fill(dst, p.Box, MagnetChar, core.ColorMagenta)
		case PickupShield:
			view.fill(dst, p.Box, ShieldChar, core.ColorBlue)
		}
	}
	for _, t := range g.threats {
		view.fill(dst, t.Box, DogChar, core.ColorRed)
	}
	view.fill(dst, g.player.Box, PlayerChar, g.playerColor())

	switch g.state {
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateEnded:
		g.drawShop(dst)
	}
}

func (g *Game) playerColor() core.Color {
	p := g.player
	switch {
	case p.Invulnerable > 0 && g.steps%6 < 3:
		return core.ColorGray
	case p.Shield > 0:
		return core.ColorBrightCyan
	case p.Magnet > 0:
		return core.ColorMagenta
	case p.Dashing > 0:
		return core.ColorWhite
	default:
		return core.ColorCyan
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	h := g.HUD()
	text := fmt.Sprintf(" Score %d  Lives %d  Coins %d  Best %d  x%s ",
		h.Score, h.Lives, h.Coins, h.Best, h.MultiplierText())
	dst.DrawTextColored(0, 0, text, core.ColorYellow)

	x := len([]rune(text))
	barW := dst.Width() - x - 1
	if barW > 20 {
		barW = 20
	}
	if barW <= 0 {
		return
	}
	filled := int(math.Round(h.ComboFill * float64(barW)))
	dst.DrawHLine(x, 0, barW, '─', core.ColorGray)
	dst.DrawHLine(x, 0, filled, ComboChar, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(x, y, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(x, y, boxW, boxH))
	for i, l := range lines {
		dst.DrawTextColored(x+2, y+1+i, l, core.ColorWhite)
	}
}

func (g *Game) drawShop(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score %d  |  Coins this run %d", g.score, g.coinsThisRun),
		fmt.Sprintf("Coins %d  |  Best %d", g.meta.Coins, g.meta.BestScore),
		"",
	}
	for i, o := range g.Shop() {
		mark := " "
		if o.Affordable {
			mark = "*"
		}
		lines = append(lines, fmt.Sprintf("%s[%d] %-6s Lv %-3d cost %d", mark, i+1, strings.ToUpper(o.Key), o.Level, o.Cost))
	}
	lines = append(lines, "", "ENTER play again  |  R hard reset")
	g.drawCenteredMessage(dst, lines...)
}

// viewport maps play-field units onto a rectangle of cells.
type viewport struct {
	inner core.Rect
	w, h  float64
}

// fill paints the cells covered by b, at least one cell.
func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	if v.inner.W <= 0 || v.inner.H <= 0 {
		return
	}
	sx := float64(v.inner.W) / v.w
	sy := float64(v.inner.H) / v.h

	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := core.Max(x0+1, int(math.Ceil(b.Right()*sx)))
	y1 := core.Max(y0+1, int(math.Ceil(b.Bottom()*sy)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x < 0 || y < 0 || x >= v.inner.W || y >= v.inner.H {
				continue
			}
			dst.SetColored(v.inner.X+x, v.inner.Y+y, r, c)
		}
	}
}
