// internal/ui/field.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"cake-defense/internal/app"
	"cake-defense/internal/assets"
	"cake-defense/internal/component"
	"cake-defense/internal/config"
	"cake-defense/internal/defs"
	"cake-defense/internal/types"
	"cake-defense/internal/utils"
	"cake-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gradientRings = 12

// Blade is one grass blade of the background texture.
type Blade struct {
	X, Y, W, H float64
}

// Speck is a dirt crumb around the anthill.
type Speck struct {
	X, Y, R float64
}

// GrassBlades lays out the background grass. The layout depends only on the
// seed, so the field looks the same in every session.
func GrassBlades(seed int64, width, height float64, n int) []Blade {
	rnd := utils.SeededRandom(seed)
	blades := make([]Blade, 0, n*3/2)
	for i := 0; i < n; i++ {
		x := rnd() * width
		y := rnd() * height
		h := 4 + rnd()*6
		w := 1 + rnd()
		blades = append(blades, Blade{X: x, Y: y, W: w, H: h})

		if rnd() > 0.5 {
			ox := x + 2 + rnd()*3
			oy := y + rnd()*3
			blades = append(blades, Blade{X: ox, Y: oy, W: w * 0.8, H: h * 0.7})
		}
	}
	return blades
}

// DirtSpecks places eight crumbs in a ring around (cx, cy).
func DirtSpecks(rnd func() float64, cx, cy float64) []Speck {
	specks := make([]Speck, 0, 8)
	for i := 0; i < 8; i++ {
		angle := float64(i) / 8 * 2 * math.Pi
		dist := 40 + rnd()*10
		specks = append(specks, Speck{
			X: cx + math.Cos(angle)*dist,
			Y: cy + math.Sin(angle)*dist,
			R: 2 + rnd()*2,
		})
	}
	return specks
}

// HealthColor picks the health bar color for a health ratio.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return config.HealthHigh
	case ratio > 0.3:
		return config.HealthMid
	default:
		return config.HealthLow
	}
}

// FieldRenderer draws the playfield: a pre-rendered background plus the
// entities of a snapshot.
type FieldRenderer struct {
	balance    *defs.Balance
	colors     render.FieldColors
	shapes     *render.ShapeRenderer
	fonts      *assets.Fonts
	background *ebiten.Image // предрендеренный фон
}

func NewFieldRenderer(b *defs.Balance, colors render.FieldColors, shapes *render.ShapeRenderer, fonts *assets.Fonts) *FieldRenderer {
	r := &FieldRenderer{
		balance:    b,
		colors:     colors,
		shapes:     shapes,
		fonts:      fonts,
		background: ebiten.NewImage(int(b.Canvas.Width), int(b.Canvas.Height)),
	}
	r.RenderBackground()
	return r
}

// DefaultFieldColors collects the field palette from config.
func DefaultFieldColors() render.FieldColors {
	return render.FieldColors{
		GrassLight:   config.GrassLight,
		GrassDark:    config.GrassDark,
		GrassBlade:   render.WithAlpha(config.GrassBlade, config.GrassAlpha),
		Path:         config.PathColor,
		AnthillLight: config.AnthillLight,
		AnthillDark:  config.AnthillDark,
		Entrance:     config.EntranceCol,
		Dirt:         config.DirtColor,
		PathWidth:    config.PathWidth,
		StrokeWidth:  1,
	}
}

// RenderBackground draws the static layers once: grass, path and anthill.
func (r *FieldRenderer) RenderBackground() {
	bg := r.background
	bg.Clear()
	w, h := r.balance.Canvas.Width, r.balance.Canvas.Height

	for y := 0; y < int(h); y += 2 {
		clr := render.Lerp(r.colors.GrassLight, r.colors.GrassDark, float64(y)/h)
		vector.DrawFilledRect(bg, 0, float32(y), float32(w), 2, clr, false)
	}

	for _, b := range GrassBlades(config.GrassSeed, w, h, config.GrassBlades) {
		vector.DrawFilledRect(bg, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), r.colors.GrassBlade, true)
	}

	ah, cake := r.balance.Anthill, r.balance.Cake
	path := render.WavyPath(ah.X, ah.Y, cake.X, cake.Y, config.PathSegments, config.PathWobble)
	r.shapes.StrokePolyline(bg, path, false, r.colors.PathWidth, r.colors.Path)

	// холм: радиальный градиент кольцами, центр смещён вверх
	for i := 0; i < gradientRings; i++ {
		t := float64(i) / gradientRings
		rad := config.AnthillRadius * (1 - t)
		cy := ah.Y - 10*t
		clr := render.Lerp(r.colors.AnthillDark, r.colors.AnthillLight, t)
		vector.DrawFilledCircle(bg, float32(ah.X), float32(cy), float32(rad), clr, true)
	}
	vector.DrawFilledCircle(bg, float32(ah.X), float32(ah.Y), config.AnthillEntranceRadius, r.colors.Entrance, true)

	rnd := utils.SeededRandom(config.GrassSeed + 1)
	for _, s := range DirtSpecks(rnd, ah.X, ah.Y) {
		vector.DrawFilledCircle(bg, float32(s.X), float32(s.Y), float32(s.R), r.colors.Dirt, true)
	}
}

// Draw draws the whole field for one frame. selected is highlighted with its
// range.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, selected types.EntityID) {
	screen.DrawImage(r.background, nil)
	r.drawCake(screen, snap.Cake)

	for i := range snap.Towers {
		r.drawTower(screen, &snap.Towers[i], snap.Towers[i].ID == selected)
	}
	for i := range snap.Ants {
		r.drawAnt(screen, &snap.Ants[i])
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(screen, p)
	}
	for _, p := range snap.Particles {
		alpha := p.Alpha
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(config.ParticleRadius*alpha), render.WithAlpha(config.ParticleTint, alpha*0.5), true)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(config.ParticleRadius/2*alpha), render.WithAlpha(config.ParticleTint, alpha), true)
	}
}

func (r *FieldRenderer) drawCake(screen *ebiten.Image, cake app.CakeView) {
	if cake.TotalSlices <= 0 {
		return
	}
	slice := 2 * math.Pi / float64(cake.TotalSlices)
	const rad = config.CakeRadius
	for _, start := range cake.SliceAngles {
		r.shapes.FillWedge(screen, cake.X, cake.Y, rad, start, start+slice, config.CakeDark)
		r.shapes.FillWedge(screen, cake.X, cake.Y, rad*0.6, start, start+slice, config.CakeLight)
		r.shapes.FillWedge(screen, cake.X, cake.Y-3, rad-3, start, start+slice, config.FrostingCol)
		x1 := cake.X + math.Cos(start)*rad
		y1 := cake.Y + math.Sin(start)*rad
		vector.StrokeLine(screen, float32(cake.X), float32(cake.Y), float32(x1), float32(y1), 1, config.CakeDark, true)
	}
}

func (r *FieldRenderer) drawAnt(screen *ebiten.Image, a *app.AntView) {
	body := r.balance.Ants.Get(a.Kind).Color
	if a.Phase == component.PhaseDelivering || a.Phase == component.PhaseReturning {
		body = render.Shift(body, -30)
	}
	head := render.Shift(body, 40)
	x, y, rad := float32(a.X), float32(a.Y), float32(a.Radius)
	cos, sin := float32(math.Cos(a.Heading)), float32(math.Sin(a.Heading))

	for i := 0; i < 3; i++ {
		for _, side := range []float64{1, -1} {
			leg := a.Heading + side*(math.Pi/2+float64(i)*0.5)
			vector.StrokeLine(screen, x, y, x+6*float32(math.Cos(leg)), y+6*float32(math.Sin(leg)), 1, config.LegColor, true)
		}
	}

	vector.DrawFilledCircle(screen, x, y, rad, body, true)
	vector.DrawFilledCircle(screen, x-cos*(rad-2), y-sin*(rad-2), max(rad-2, 1), body, true)
	hx, hy := x+cos*(rad-2), y+sin*(rad-2)
	vector.DrawFilledCircle(screen, hx, hy, max(rad-3, 1), head, true)

	for _, da := range []float64{0.3, -0.3} {
		ang := a.Heading + da
		vector.StrokeLine(screen, hx, hy, hx+8*float32(math.Cos(ang)), hy+8*float32(math.Sin(ang)), 1, config.LegColor, true)
	}

	if a.Carrying {
		cx, cy := x-cos*12, y-sin*12
		vector.DrawFilledCircle(screen, cx, cy, 4, config.CakeLight, true)
		vector.DrawFilledCircle(screen, cx, cy-1, 3, config.FrostingCol, true)
		vector.DrawFilledCircle(screen, cx, cy-3, 1, config.CherryColor, true)
	}

	if a.HealthRatio < 1 {
		const bw, bh = config.HealthBarWidth, config.HealthBarHeight
		vector.DrawFilledRect(screen, x-bw/2-1, y-rad-10, bw+2, bh+2, config.HealthBack, false)
		vector.DrawFilledRect(screen, x-bw/2, y-rad-9, bw*float32(a.HealthRatio), bh, HealthColor(a.HealthRatio), false)
	}
}

func (r *FieldRenderer) drawTower(screen *ebiten.Image, t *app.TowerView, selected bool) {
	clr := r.balance.Towers.Get(t.Kind).Color
	x, y := float32(t.X), float32(t.Y)

	if selected {
		vector.DrawFilledCircle(screen, x, y, float32(t.Range), render.WithAlpha(config.RangeColor, config.RangeAlpha/3), true)
		vector.StrokeCircle(screen, x, y, float32(t.Range), 2, render.WithAlpha(config.RangeColor, config.RangeAlpha), true)
	}

	vector.DrawFilledCircle(screen, x, y, config.TowerBodyRadius, clr, true)
	vector.StrokeCircle(screen, x, y, config.TowerBodyRadius, 2, render.Darken(clr, 30), true)
	r.drawTowerDetails(screen, t, clr)
	r.drawBarrel(screen, t)

	for i := 0; i < t.Level-1; i++ {
		ang := float64(i)*2*math.Pi/float64(t.Level-1) - math.Pi/2
		r.shapes.FillPolygon(screen, render.Star(t.X+math.Cos(ang)*25, t.Y+math.Sin(ang)*25, 3), config.StarColor)
	}
	DrawCentered(screen, fmt.Sprint(t.Level), r.fonts.Regular, int(t.X), int(t.Y), config.TextLight)

	if selected {
		vector.StrokeCircle(screen, x, y, config.TowerBodyRadius+4, 2, color.White, true)
	}
}

func (r *FieldRenderer) drawTowerDetails(screen *ebiten.Image, t *app.TowerView, clr color.RGBA) {
	x, y := float32(t.X), float32(t.Y)
	switch t.Kind {
	case defs.TowerLight:
		vector.StrokeCircle(screen, x, y, 12, 1, render.Darken(clr, 60), true)
	case defs.TowerRapid:
		for i := 0; i < 6; i++ {
			ang := float64(i) * math.Pi / 3
			c, s := float32(math.Cos(ang)), float32(math.Sin(ang))
			vector.StrokeLine(screen, x+c*10, y+s*10, x+c*15, y+s*15, 2, render.Darken(clr, 50), true)
		}
	case defs.TowerHeavy:
		for _, d := range [][2]float32{{-8, -8}, {8, -8}, {-8, 8}, {8, 8}} {
			vector.DrawFilledCircle(screen, x+d[0], y+d[1], 4, render.Lighten(clr, 30), true)
		}
	case defs.TowerArea:
		for i := 0; i < 4; i++ {
			for _, off := range []float64{-2, 2} {
				line := render.RotatedRect(t.X, t.Y, float64(i)*math.Pi/2, 5, off-0.5, 15, off+0.5)
				r.shapes.FillPolygon(screen, line, config.StarColor)
			}
		}
	}
}

func (r *FieldRenderer) drawBarrel(screen *ebiten.Image, t *app.TowerView) {
	switch t.Kind {
	case defs.TowerRapid:
		for _, off := range []float64{-4, 0, 4} {
			r.shapes.FillPolygon(screen, render.RotatedRect(t.X, t.Y, t.Heading, 15, off-1, 35, off+1), config.BarrelColor)
		}
	case defs.TowerHeavy:
		r.shapes.FillPolygon(screen, render.RotatedRect(t.X, t.Y, t.Heading, 15, -6, 40, 6), config.BarrelColor)
	case defs.TowerArea:
		r.shapes.FillPolygon(screen, render.RotatedRect(t.X, t.Y, t.Heading, 15, -4, 35, 4), render.Darken(config.ParticleTint, 20))
	default:
		r.shapes.FillPolygon(screen, render.RotatedRect(t.X, t.Y, t.Heading, 15, -5, 37, 5), config.BarrelColor)
	}
}

func (r *FieldRenderer) drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	clr := r.balance.Towers.Get(p.Kind).Color
	x, y := float32(p.X), float32(p.Y)
	if p.Kind.Splashes() {
		vector.DrawFilledCircle(screen, x, y, 8, render.WithAlpha(clr, 0.3), true)
	}
	vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius+1, clr, true)
	vector.DrawFilledCircle(screen, x-1, y-1, 1.5, render.WithAlpha(color.RGBA{255, 255, 255, 255}, 0.6), true)
}

// DrawGhost previews a placement or move at (x, y). from is the tower being
// moved, or nil.
func (r *FieldRenderer) DrawGhost(screen *ebiten.Image, x, y, rangeRadius float64, legal bool, from *app.TowerView) {
	base := config.GhostBad
	if legal {
		base = config.GhostOK
	}
	fx, fy := float32(x), float32(y)
	vector.DrawFilledCircle(screen, fx, fy, 20, render.WithAlpha(base, config.GhostAlpha), true)
	vector.StrokeCircle(screen, fx, fy, float32(rangeRadius), 2, render.WithAlpha(base, config.GhostAlpha/2), true)
	if from != nil {
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), fx, fy, 2, render.WithAlpha(config.RangeColor, 0.5), true)
	}
}
