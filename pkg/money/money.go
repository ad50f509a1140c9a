package money

import "math"

// RoundHalfUp округляет до целой минорной единицы валюты по правилу
// "половина вверх": 0.5 -> 1, 1.5 -> 2, -0.5 -> 0.
func RoundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// Clamp зажимает v в границы [min, max].
func Clamp(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
