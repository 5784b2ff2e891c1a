package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Pt is a point in screen space.
type Pt struct {
	X, Y float32
}

// ShapeRenderer draws filled and stroked polygons through vector.Path and
// DrawTriangles. The vertex buffers are reused between calls, so a renderer
// must not be shared between goroutines.
type ShapeRenderer struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewShapeRenderer() *ShapeRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &ShapeRenderer{
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 64),
		fillIs:   make([]uint16, 0, 64),
		strokeVs: make([]ebiten.Vertex, 0, 128),
		strokeIs: make([]uint16, 0, 128),
	}
}

func polygonPath(pts []Pt, closed bool) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	if closed {
		path.Close()
	}
	return path
}

// FillPolygon fills the closed polygon pts.
func (r *ShapeRenderer) FillPolygon(dst *ebiten.Image, pts []Pt, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	path := polygonPath(pts, true)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	colorVertices(r.fillVs, clr)
	dst.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// StrokePolyline strokes pts, closing the outline when closed is set.
func (r *ShapeRenderer) StrokePolyline(dst *ebiten.Image, pts []Pt, closed bool, width float32, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	path := polygonPath(pts, closed)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	colorVertices(r.strokeVs, clr)
	dst.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// FillWedge fills a pie slice of radius rad from angle from to angle to.
func (r *ShapeRenderer) FillWedge(dst *ebiten.Image, cx, cy, rad, from, to float64, clr color.Color) {
	r.FillPolygon(dst, Wedge(cx, cy, rad, from, to, 12), clr)
}

func colorVertices(vs []ebiten.Vertex, clr color.Color) {
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
}

// Wedge returns the outline of a pie slice: the center followed by steps+1
// points along the arc.
func Wedge(cx, cy, rad, from, to float64, steps int) []Pt {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Pt, 0, steps+2)
	pts = append(pts, Pt{float32(cx), float32(cy)})
	for i := 0; i <= steps; i++ {
		a := from + (to-from)*float64(i)/float64(steps)
		pts = append(pts, Pt{float32(cx + rad*math.Cos(a)), float32(cy + rad*math.Sin(a))})
	}
	return pts
}

// Star returns a five-pointed star with outer radius size, its first point
// straight up.
func Star(cx, cy, size float64) []Pt {
	pts := make([]Pt, 0, 10)
	for i := 0; i < 5; i++ {
		a := float64(i)*2*math.Pi/5 - math.Pi/2
		pts = append(pts,
			Pt{float32(cx + math.Cos(a)*size), float32(cy + math.Sin(a)*size)},
			Pt{float32(cx + math.Cos(a+math.Pi/5)*size/2), float32(cy + math.Sin(a+math.Pi/5)*size/2)},
		)
	}
	return pts
}

// RotatedRect returns the rectangle [x0, x1]×[y0, y1] given in a local frame
// rotated by angle around (cx, cy). Barrels are drawn this way.
func RotatedRect(cx, cy, angle, x0, y0, x1, y1 float64) []Pt {
	sin, cos := math.Sincos(angle)
	at := func(x, y float64) Pt {
		return Pt{float32(cx + x*cos - y*sin), float32(cy + x*sin + y*cos)}
	}
	return []Pt{at(x0, y0), at(x1, y0), at(x1, y1), at(x0, y1)}
}

// WavyPath returns segments+1 points from (x0, y0) to (x1, y1), pushed off
// the straight line by one period of a sine of amplitude amp.
func WavyPath(x0, y0, x1, y1 float64, segments int, amp float64) []Pt {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Pt, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t + math.Sin(t*2*math.Pi)*amp
		pts = append(pts, Pt{float32(x), float32(y)})
	}
	return pts
}
