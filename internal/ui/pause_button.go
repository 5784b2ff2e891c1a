// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"cake-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует паузу (две полосы) или play (треугольник)
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image, shapes *render.ShapeRenderer) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		tri := []render.Pt{
			{X: b.X - size, Y: b.Y - size*1.2},
			{X: b.X - size, Y: b.Y + size*1.2},
			{X: b.X + size, Y: b.Y},
		}
		shapes.FillPolygon(screen, tri, b.PlayColor)
		shapes.StrokePolyline(screen, tri, true, 1, color.White)
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) Contains(x, y float32) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

// SetPaused syncs the icon with the session state.
func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.IsPaused = paused
		b.LastClickTime = time.Now()
	}
}
