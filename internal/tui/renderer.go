package tui

import (
	"fmt"
	"image/color"

	"cake-defense/internal/app"
	"cake-defense/internal/component"
	"cake-defense/internal/config"
	"cake-defense/internal/input"
	"cake-defense/internal/types"
	"cake-defense/pkg/render"

	"github.com/gdamore/tcell/v2"
)

var (
	antGlyphs   = [...]rune{'a', 'A', 'Q'}
	towerGlyphs = [...]rune{'C', 'G', 'H', 'S'}
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer draws a controller's game into a tcell screen.
type Renderer struct {
	screen tcell.Screen
	view   Viewport
}

func NewRenderer(screen tcell.Screen, width, height float64) *Renderer {
	cols, rows := screen.Size()
	return &Renderer{screen: screen, view: NewViewport(cols, rows, width, height)}
}

// Resize refits the viewport after a terminal resize.
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	r.view = NewViewport(cols, rows, r.view.Width, r.view.Height)
}

func (r *Renderer) Viewport() Viewport { return r.view }

func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	if r.view.Contains(col, row) {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

func (r *Renderer) setAt(x, y float64, ch rune, style tcell.Style) {
	col, row := r.view.ToCell(x, y)
	r.set(col, row, ch, style)
}

// Draw renders the field, the cursor and the two status rows.
func (r *Renderer) Draw(c *input.Controller, cursorCol, cursorRow int) {
	g := c.Game()
	snap := g.Snapshot()
	b := g.Balance
	r.screen.Clear()

	grass := tcell.StyleDefault.Background(rgb(config.GrassDark))
	for row := 0; row < r.view.Rows; row++ {
		for col := 0; col < r.view.Cols; col++ {
			r.set(col, row, ' ', grass)
		}
	}
	path := grass.Foreground(rgb(config.PathColor))
	for _, p := range render.WavyPath(b.Anthill.X, b.Anthill.Y, b.Cake.X, b.Cake.Y, config.PathSegments*4, config.PathWobble) {
		r.setAt(float64(p.X), float64(p.Y), '·', path)
	}
	r.setAt(b.Anthill.X, b.Anthill.Y, '▲', grass.Foreground(rgb(config.AnthillLight)).Bold(true))

	cakeStyle := grass.Foreground(rgb(config.FrostingCol)).Bold(true)
	cakeGlyph := '@'
	if snap.Cake.RemainingSlices == 0 {
		cakeGlyph = 'o'
	}
	r.setAt(snap.Cake.X, snap.Cake.Y, cakeGlyph, cakeStyle)

	for _, t := range snap.Towers {
		style := grass.Foreground(rgb(b.Towers.Get(t.Kind).Color)).Bold(true)
		if t.ID == c.Selected() {
			style = style.Reverse(true)
		}
		r.setAt(t.X, t.Y, towerGlyphs[t.Kind], style)
	}
	for _, a := range snap.Ants {
		ch := antGlyphs[a.Kind]
		fg := rgb(b.Ants.Get(a.Kind).Color)
		if a.Carrying {
			fg = rgb(config.FrostingCol)
		} else if a.Phase == component.PhaseReturning {
			fg = rgb(render.Shift(b.Ants.Get(a.Kind).Color, -30))
		}
		if a.HealthRatio <= 0.3 {
			fg = rgb(config.HealthLow)
		}
		r.setAt(a.X, a.Y, ch, grass.Foreground(fg))
	}
	for _, p := range snap.Projectiles {
		r.setAt(p.X, p.Y, '*', grass.Foreground(rgb(b.Towers.Get(p.Kind).Color)))
	}

	r.drawCursor(c, cursorCol, cursorRow)
	r.drawStatus(c)
	r.screen.Show()
}

func (r *Renderer) drawCursor(c *input.Controller, col, row int) {
	ch, fg := '+', tcell.ColorWhite
	x, y := r.view.ToField(col, row)
	if c.Mode() != input.ModeIdle {
		kind, legal := c.Preview(x, y)
		ch = towerGlyphs[kind]
		fg = rgb(config.GhostBad)
		if legal {
			fg = rgb(config.HealthHigh)
		}
	}
	mainc, _, style, _ := r.screen.GetContent(col, row)
	if mainc != ' ' && c.Mode() == input.ModeIdle {
		ch = mainc
	}
	r.set(col, row, ch, style.Foreground(fg).Reverse(true))
}

func (r *Renderer) drawStatus(c *input.Controller) {
	cols, _ := r.screen.Size()
	row := r.view.Rows
	r.line(row, c.StatusLine(), tcell.StyleDefault.Foreground(rgb(config.TextLight)).Bold(true), cols)

	hint := c.Hint()
	if sel := c.Selected(); sel != 0 && c.Mode() == input.ModeIdle {
		hint = towerSummary(c.Game(), sel) + "  " + hint
	}
	r.line(row+1, hint, tcell.StyleDefault.Foreground(rgb(config.TextLight)), cols)
}

func (r *Renderer) line(row int, s string, style tcell.Style, cols int) {
	col := 0
	for _, ch := range s {
		if col >= cols {
			break
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

// towerSummary stands in for the info panel: stats and prices of a tower.
func towerSummary(g *app.Game, id types.EntityID) string {
	t, ok := g.World.Towers.Get(id)
	if !ok {
		return ""
	}
	up := "max"
	if t.CanUpgrade() {
		price, _ := g.UpgradePrice(id)
		up = fmt.Sprintf("$%d", price)
	}
	refund, _ := g.SellValue(id)
	return fmt.Sprintf("%s L%d dmg %d rng %.0f up %s sell $%d",
		g.Balance.Towers.Get(t.Kind).Name, t.Level, t.Damage, t.Range, up, refund)
}
