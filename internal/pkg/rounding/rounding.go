package rounding

import "math"

// Round2 rounds to two decimal places, half away from zero. Every
// monetary and hour value the domain packages produce goes through this
// one helper so field-by-field rounding stays consistent across them.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
