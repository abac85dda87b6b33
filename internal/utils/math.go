package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// RandomInt returns a random integer between min and max (inclusive) drawn from src.
// An inverted range returns min.
func RandomInt(src RandomSource, min, max int) int {
	if min >= max {
		return min
	}
	return min + src.IntN(max-min+1)
}

// RandomFloat returns a random float64 in [0.0, 1.0) drawn from src
func RandomFloat(src RandomSource) float64 {
	return src.Float64()
}

// RandomDuration returns a duration uniformly distributed in [min, max].
// An inverted or empty range returns min.
func RandomDuration(src RandomSource, min, max time.Duration) time.Duration {
	if min >= max {
		return min
	}
	span := float64(max - min)
	return min + time.Duration(src.Float64()*span)
}

// RoundHalfUp rounds a non-negative value to the nearest integer, halves going up.
func RoundHalfUp(value float64) int64 {
	return decimal.NewFromFloat(value).Round(0).IntPart()
}

// ScaleAmount multiplies an integer amount by a multiplier and rounds half-up.
// The product is computed in decimal so 5 x 1.1 is exactly 5.5 before rounding.
func ScaleAmount(amount int, multiplier float64) int64 {
	return decimal.NewFromInt(int64(amount)).
		Mul(decimal.NewFromFloat(multiplier)).
		Round(0).
		IntPart()
}
