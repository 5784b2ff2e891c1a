// internal/ui/level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	levelRectWidth  = 16
	levelRectHeight = 10
	levelRectGap    = 6
	borderWidth     = 1
)

// LevelIndicator отображает уровень башни квадратиками.
type LevelIndicator struct {
	X, Y float32
	Fill color.RGBA
}

func NewLevelIndicator(x, y float32, fill color.RGBA) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y, Fill: fill}
}

// Width is the drawn width for maxLevel boxes.
func (i *LevelIndicator) Width(maxLevel int) float32 {
	if maxLevel <= 0 {
		return 0
	}
	return float32(maxLevel)*levelRectWidth + float32(maxLevel-1)*levelRectGap
}

// Draw отрисовывает индикатор.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level, maxLevel int) {
	for j := 0; j < maxLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, i.Y, levelRectWidth, levelRectHeight, borderWidth, color.White, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, i.Y+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, i.Fill, true)
		}
	}
}
