package domain

import "math"

// SafeDiv returns 0 instead of NaN or Inf when the denominator is zero.
func SafeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	v := numerator / denominator
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Percent is SafeDiv scaled to a percentage.
func Percent(numerator, denominator float64) float64 {
	return SafeDiv(numerator, denominator) * 100
}
