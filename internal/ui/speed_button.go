// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"cake-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка множителя скорости, два треугольника
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, shapes *render.ShapeRenderer) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]
	height := size * 1.2
	width := size
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		tri := []render.Pt{
			{X: b.X - width + dx, Y: b.Y - height/2},
			{X: b.X + dx, Y: b.Y},
			{X: b.X - width + dx, Y: b.Y + height/2},
		}
		shapes.FillPolygon(screen, tri, clr)
		shapes.StrokePolyline(screen, tri, true, 1, color.White)
	}
}

// Contains uses a circle for hit testing since the shape is irregular.
func (b *SpeedButton) Contains(x, y float32) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

// SetState shows the speed at index state of the speed table.
func (b *SpeedButton) SetState(state int) {
	if state != b.CurrentState {
		b.CurrentState = state
		b.LastClickTime = time.Now()
	}
}

func insideCircle(x, y, cx, cy, r float32) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
