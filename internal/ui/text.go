package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws s centered on (cx, cy).
func DrawCentered(dst *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2 - b.Min.X
	y := cy - b.Dy()/2 - b.Min.Y
	text.Draw(dst, s, face, x, y, clr)
}

// drawOutlined draws s with a 1px outline, centered horizontally on cx.
func drawOutlined(dst *ebiten.Image, s string, face font.Face, cx, y int, clr, outline color.Color, thickness int) {
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2 - b.Min.X
	for oy := -thickness; oy <= thickness; oy++ {
		for ox := -thickness; ox <= thickness; ox++ {
			if ox == 0 && oy == 0 {
				continue
			}
			text.Draw(dst, s, face, x+ox, y+oy, outline)
		}
	}
	text.Draw(dst, s, face, x, y, clr)
}
