package utils

import "math"

// Point is a position on the campus plane.
type Point struct {
	X float64
	Y float64
}

// EuclideanDistance returns the straight-line distance between two points.
// Used as the A* heuristic: it never exceeds a real walking distance between the same points.
func EuclideanDistance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// Round2 rounds v to two decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
