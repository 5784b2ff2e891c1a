package component

import "math"

func hypot(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}
