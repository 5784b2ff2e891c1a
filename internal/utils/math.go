// internal/utils/math.go
package utils

import "math"

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Angle returns the bearing from (x1, y1) to (x2, y2).
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// PointInCircle reports whether (px, py) lies inside or on the circle.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return Distance(px, py, cx, cy) <= radius
}

// NormalizeAngle нормализует угол в диапазон [0, 2π)
func NormalizeAngle(angle float64) float64 {
	for angle < 0 {
		angle += 2 * math.Pi
	}
	for angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// AngleDifference returns ((to-from+π) rem 2π) - π. The remainder keeps the
// sign of the dividend, so large negative differences are not folded back;
// the steering code relies on this exact easing curve.
func AngleDifference(from, to float64) float64 {
	return math.Mod(to-from+math.Pi, 2*math.Pi) - math.Pi
}

// ClampInt limits an integer to [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
