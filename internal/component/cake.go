// internal/component/cake.go
package component

import (
	"math"
)

// Cake is the shared resource pool. RemainingSlices and SlicesDelivered are
// the logical state; SliceAngles only drives the drawing of the remaining
// wedges.
type Cake struct {
	X, Y            float64
	TotalSlices     int
	RemainingSlices int
	SlicesDelivered int
	SliceAngles     []float64
}

// NewCake creates a whole cake.
func NewCake(x, y float64, slices int) *Cake {
	c := &Cake{
		X:               x,
		Y:               y,
		TotalSlices:     slices,
		RemainingSlices: slices,
		SliceAngles:     make([]float64, 0, slices),
	}
	for i := 0; i < slices; i++ {
		c.SliceAngles = append(c.SliceAngles, c.sliceAngle(i))
	}
	return c
}

func (c *Cake) sliceAngle(i int) float64 {
	return float64(i) * 2 * math.Pi / float64(c.TotalSlices)
}

// TakeSlice removes one slice from the plate.
func (c *Cake) TakeSlice() bool {
	if c.RemainingSlices <= 0 {
		return false
	}
	c.RemainingSlices--
	if n := len(c.SliceAngles); n > 0 {
		c.SliceAngles = c.SliceAngles[:n-1]
	}
	return true
}

// ReturnSlice puts back a slice recovered from a killed carrier.
func (c *Cake) ReturnSlice() bool {
	if c.RemainingSlices >= c.TotalSlices {
		return false
	}
	c.RemainingSlices++
	c.SliceAngles = append(c.SliceAngles, c.sliceAngle(c.RemainingSlices-1))
	return true
}

// DeliverSlice records a slice reaching the anthill and reports whether the
// whole cake is now gone.
func (c *Cake) DeliverSlice() (allDelivered bool) {
	if c.SlicesDelivered < c.TotalSlices {
		c.SlicesDelivered++
	}
	return c.SlicesDelivered >= c.TotalSlices
}

// ProtectionRate is the share of the cake still on the plate.
func (c *Cake) ProtectionRate() float64 {
	if c.TotalSlices <= 0 {
		return 0
	}
	return math.Max(0, float64(c.RemainingSlices)/float64(c.TotalSlices))
}
