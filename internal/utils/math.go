// internal/utils/math.go
package utils

import "math"

// NormalizeDegrees нормализует угол в диапазон [0, 360)
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// SnapAngle pulls angle onto the nearest multiple of step when it is within
// threshold degrees of it. A non-positive step disables snapping.
func SnapAngle(angle, step, threshold float64) float64 {
	if step <= 0 {
		return angle
	}
	nearest := math.Round(angle/step) * step
	if math.Abs(angle-nearest) <= threshold {
		return nearest
	}
	return angle
}
