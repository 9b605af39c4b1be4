package util

import "math"

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Wrap moves value around [0, n), used for month and day cursors.
func Wrap(value, n int) int {
	if n <= 0 {
		return 0
	}
	return ((value % n) + n) % n
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
