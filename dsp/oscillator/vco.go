package oscillator

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// MaxSamples is the largest buffer a VCO will generate.
const MaxSamples = math.MaxInt32

// VCO generates waveform buffers at a fixed sample rate.
type VCO struct {
	cfg core.Config
}

// New creates a VCO for the given sample rate in Hz.
func New(sampleRate int) (*VCO, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("oscillator: %w", err)
	}

	return &VCO{cfg: core.ApplyOptions(core.WithSampleRate(sampleRate))}, nil
}

// NewFromConfig creates a VCO using the sample rate of cfg.
func NewFromConfig(cfg core.Config) (*VCO, error) {
	return New(cfg.SampleRate)
}

// SampleRate returns the sample rate in Hz.
func (v *VCO) SampleRate() int {
	return v.cfg.SampleRate
}

// Len returns the number of samples produced for duration seconds:
// floor(sampleRate·duration), or 0 for non-positive or non-finite durations
// and for durations longer than MaxSamples allows.
func (v *VCO) Len(duration float64) int {
	if !v.fits(duration) {
		return 0
	}

	return int(math.Floor(float64(v.cfg.SampleRate) * duration))
}

// fits reports whether duration yields between 0 and MaxSamples samples.
func (v *VCO) fits(duration float64) bool {
	if !(duration > 0) || math.IsInf(duration, 1) {
		return false
	}

	return math.Floor(float64(v.cfg.SampleRate)*duration) <= MaxSamples
}

// MaxDuration returns the longest duration in seconds Generate accepts.
func (v *VCO) MaxDuration() float64 {
	return float64(MaxSamples) / float64(v.cfg.SampleRate)
}

// Sine returns sin(2π·f·t) sampled over [0, duration).
func (v *VCO) Sine(freqHz, duration float64) []float64 {
	return v.render(duration, func(t float64) float64 {
		return math.Sin(2 * math.Pi * freqHz * t)
	})
}

// Square returns sign(sin(2π·f·t)). The zero crossing at t=0 yields 0.
func (v *VCO) Square(freqHz, duration float64) []float64 {
	return v.render(duration, func(t float64) float64 {
		return sign(math.Sin(2 * math.Pi * freqHz * t))
	})
}

// Triangle returns a unit-amplitude triangle wave with period 1/f.
func (v *VCO) Triangle(freqHz, duration float64) []float64 {
	return v.render(duration, func(t float64) float64 {
		return 2*math.Abs(2*centeredFrac(t*freqHz)) - 1
	})
}

// Sawtooth returns a ramp in [-1, 1) with period 1/f.
func (v *VCO) Sawtooth(freqHz, duration float64) []float64 {
	return v.render(duration, func(t float64) float64 {
		return 2 * centeredFrac(t*freqHz)
	})
}

// Generate dispatches to the generator selected by w. Durations that would
// exceed MaxSamples return an error wrapping core.ErrInvalidInput.
func (v *VCO) Generate(w Waveform, freqHz, duration float64) ([]float64, error) {
	if duration > 0 && !math.IsInf(duration, 1) && !v.fits(duration) {
		return nil, fmt.Errorf("oscillator: %w: duration %v s exceeds %d samples",
			core.ErrInvalidInput, duration, MaxSamples)
	}

	switch w {
	case WaveformSine:
		return v.Sine(freqHz, duration), nil
	case WaveformSquare:
		return v.Square(freqHz, duration), nil
	case WaveformTriangle:
		return v.Triangle(freqHz, duration), nil
	case WaveformSawtooth:
		return v.Sawtooth(freqHz, duration), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownWaveform, int(w))
	}
}

// render evaluates fn on N evenly spaced points over [0, duration).
func (v *VCO) render(duration float64, fn func(t float64) float64) []float64 {
	n := v.Len(duration)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	step := duration / float64(n)
	for i := range out {
		out[i] = fn(float64(i) * step)
	}

	return out
}

// centeredFrac returns phase - round-half-up(phase), in [-0.5, 0.5).
func centeredFrac(phase float64) float64 {
	return phase - math.Floor(phase+0.5)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
