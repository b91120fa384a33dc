// Package signal provides gain staging for buffers headed to a playback
// device. The filter leaves resonant overshoot unclamped; callers choose here
// whether to rescale (Normalize) or saturate (HardClip) before output.
package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 || !core.IsFinite(targetPeak) {
		return nil, fmt.Errorf("normalize target peak must be finite and >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := Peak(data)
	if !core.IsFinite(maxAbs) {
		return nil, fmt.Errorf("normalize: %w: peak is %v", core.ErrInvalidInput, maxAbs)
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

// HardClip returns a copy of data limited to [-limit, limit].
// A negative limit is treated as its magnitude.
func HardClip(data []float64, limit float64) []float64 {
	limit = math.Abs(limit)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = core.Clamp(v, -limit, limit)
	}
	return out
}

// Peak returns the maximum absolute sample value, or 0 for empty input.
// NaN samples propagate.
func Peak(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > peak || math.IsNaN(av) {
			peak = av
		}
	}
	return peak
}

// Stage prepares a buffer for playback: buffers whose peak exceeds 1 are
// normalized to headroom when normalize is set, and everything is finally
// hard-clipped to [-1, 1].
func Stage(data []float64, normalize bool, headroom float64) ([]float64, error) {
	if err := core.CheckFinite(data); err != nil {
		return nil, fmt.Errorf("stage: %w", err)
	}

	if normalize && len(data) > 0 && Peak(data) > 1 {
		scaled, err := Normalize(data, core.Clamp(headroom, 0, 1))
		if err != nil {
			return nil, err
		}
		data = scaled
	}

	return HardClip(data, 1), nil
}
