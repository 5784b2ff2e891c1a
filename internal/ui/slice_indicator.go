// internal/ui/slice_indicator.go
package ui

import (
	"image/color"

	"cake-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	sliceRadius  = 5.0
	sliceSpacing = 3.0
)

// SliceIndicator отображает оставшиеся куски торта кружками в ряд.
type SliceIndicator struct {
	X, Y float32
}

func NewSliceIndicator(x, y float32) *SliceIndicator {
	return &SliceIndicator{X: x, Y: y}
}

// sliceColor: on the plate, carried away, or eaten.
func sliceColor(i, remaining, delivered, total int) color.RGBA {
	switch {
	case i < remaining:
		return config.FrostingCol
	case i < total-delivered:
		return config.HealthMid
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

// Draw рисует по кружку на кусок.
func (s *SliceIndicator) Draw(screen *ebiten.Image, remaining, delivered, total int) {
	for i := 0; i < total; i++ {
		cx := s.X + float32(i)*(sliceRadius*2+sliceSpacing) + sliceRadius
		vector.DrawFilledCircle(screen, cx, s.Y, sliceRadius, sliceColor(i, remaining, delivered, total), true)
		vector.StrokeCircle(screen, cx, s.Y, sliceRadius, 1, color.White, true)
	}
}
