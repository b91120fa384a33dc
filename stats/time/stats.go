// Package time computes time-domain statistics of sample buffers, used to
// compare oscillator output against its filtered counterpart.
package time

import "math"

// Stats holds time-domain buffer statistics.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Peak          float64 // max |x|
	Peak_dB       float64
	CrestFactor   float64 // peak / RMS (linear)
	ZeroCrossings int
	// MeanAbsDelta is the mean |x[i] - x[i-1]|, a cheap proxy for
	// high-frequency content.
	MeanAbsDelta float64
	// Clipped counts samples outside [-1, 1].
	Clipped int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{
			RMS_dB:  math.Inf(-1),
			Peak_dB: math.Inf(-1),
		}
	}

	var (
		sum, sumSq    float64
		sumDelta      float64
		peak          float64
		zeroCrossings int
		clipped       int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		a := math.Abs(x)
		if a > peak {
			peak = a
		}

		if a > 1 {
			clipped++
		}

		if i > 0 {
			sumDelta += math.Abs(x - signal[i-1])

			if signal[i-1]*x < 0 {
				zeroCrossings++
			}
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	var mad float64
	if n > 1 {
		mad = sumDelta / float64(n-1)
	}

	return Stats{
		Length:        n,
		DC:            sum / nf,
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		CrestFactor:   crest,
		ZeroCrossings: zeroCrossings,
		MeanAbsDelta:  mad,
		Clipped:       clipped,
	}
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// MeanAbsDelta returns the mean absolute sample-to-sample difference.
// Returns 0 for signals shorter than two samples.
func MeanAbsDelta(signal []float64) float64 {
	if len(signal) < 2 {
		return 0
	}

	var sum float64
	for i := 1; i < len(signal); i++ {
		sum += math.Abs(signal[i] - signal[i-1])
	}

	return sum / float64(len(signal)-1)
}
