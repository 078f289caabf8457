package utils

import "math"

// Round2 rounds a currency amount to 2 decimal places. All total/amount
// comparisons in the system happen at this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
