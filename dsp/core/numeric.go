package core

import (
	"fmt"
	"math"
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CheckFinite returns an error wrapping ErrInvalidInput for the first
// non-finite sample in buf.
func CheckFinite(buf []float64) error {
	for i, v := range buf {
		if !IsFinite(v) {
			return fmt.Errorf("%w: sample %d is %v", ErrInvalidInput, i, v)
		}
	}
	return nil
}
