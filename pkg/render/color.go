// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// FieldColors holds the colors needed to pre-render the static field.
type FieldColors struct {
	GrassLight   color.RGBA
	GrassDark    color.RGBA
	GrassBlade   color.RGBA
	Path         color.RGBA
	AnthillLight color.RGBA
	AnthillDark  color.RGBA
	Entrance     color.RGBA
	Dirt         color.RGBA
	PathWidth    float32
	StrokeWidth  float32
}

// Lighten raises every channel by percent of the full range, rounded and
// clamped. Alpha is kept.
func Lighten(c color.RGBA, percent float64) color.RGBA {
	return shift(c, int(math.Round(2.55*percent)))
}

// Darken lowers every channel by percent of the full range.
func Darken(c color.RGBA, percent float64) color.RGBA {
	return shift(c, -int(math.Round(2.55*percent)))
}

// Shift adds amt to every color channel, clamped to [0, 255].
func Shift(c color.RGBA, amt int) color.RGBA {
	return shift(c, amt)
}

func shift(c color.RGBA, amt int) color.RGBA {
	return color.RGBA{
		R: clampChannel(int(c.R) + amt),
		G: clampChannel(int(c.G) + amt),
		B: clampChannel(int(c.B) + amt),
		A: c.A,
	}
}

// DarkenColor halves the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha makes an opaque c translucent. The result is alpha-premultiplied,
// as color.RGBA requires.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	scale := func(v uint8) uint8 { return clampChannel(int(math.Round(float64(v) * a))) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: clampChannel(int(math.Round(a * 255)))}
}

// Lerp blends from a to b; t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return clampChannel(int(math.Round(float64(x) + (float64(y)-float64(x))*t)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
