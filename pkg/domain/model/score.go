package model

import "math"

// RoundScore rounds a raw score to the nearest integer using half-to-even
// rounding (9.5 rounds to 10, 8.5 rounds to 8) and clamps it to [1, 10].
// Both the review engine and the report formatter use this rule, so the two
// score paths stay comparable.
func RoundScore(raw float64) int {
	return ClampScore(int(math.RoundToEven(raw)))
}

// ClampScore clamps an integer score into the [1, 10] range
func ClampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
