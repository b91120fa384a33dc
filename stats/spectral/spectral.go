// Package spectral measures how a buffer's energy is distributed over
// frequency. It is used to confirm that filtering removes high-frequency
// content without a full analysis harness.
package spectral

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptySignal is returned for zero-length input.
	ErrEmptySignal = errors.New("spectral: empty signal")
	// ErrInvalidBand is returned for non-positive sample rates or inverted bands.
	ErrInvalidBand = errors.New("spectral: invalid band")
)

// Spectrum is a one-sided power spectrum of a Hann-windowed signal.
type Spectrum struct {
	// Power holds |X[k]|² for bins 0..FFTSize/2.
	Power      []float64
	FFTSize    int
	SampleRate float64
}

// BinWidth returns the frequency spacing of adjacent bins in Hz.
func (s Spectrum) BinWidth() float64 {
	return s.SampleRate / float64(s.FFTSize)
}

// Analyze windows signal with a periodic Hann window, zero-pads it to the next
// power of two, and returns its one-sided power spectrum.
func Analyze(signal []float64, sampleRate float64) (Spectrum, error) {
	if len(signal) == 0 {
		return Spectrum{}, ErrEmptySignal
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return Spectrum{}, fmt.Errorf("%w: sample rate %v", ErrInvalidBand, sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))
	if fftSize < 2 {
		fftSize = 2
	}

	windowed := make([]float64, len(signal))
	copy(windowed, signal)
	vecmath.MulBlockInPlace(windowed, hann(len(signal)))

	in := make([]complex128, fftSize)
	for i, x := range windowed {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("spectral: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return Spectrum{
		Power:      power,
		FFTSize:    fftSize,
		SampleRate: sampleRate,
	}, nil
}

// BandEnergy sums power over bins whose centre frequency lies in [loHz, hiHz].
func (s Spectrum) BandEnergy(loHz, hiHz float64) (float64, error) {
	if loHz > hiHz || math.IsNaN(loHz) || math.IsNaN(hiHz) {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrInvalidBand, loHz, hiHz)
	}

	width := s.BinWidth()
	var sum float64
	for k, p := range s.Power {
		f := float64(k) * width
		if f >= loHz && f <= hiHz {
			sum += p
		}
	}

	return sum, nil
}

// Total returns the energy summed over all bins.
func (s Spectrum) Total() float64 {
	var sum float64
	for _, p := range s.Power {
		sum += p
	}

	return sum
}

// Centroid returns the power-weighted mean frequency in Hz, or 0 for silence.
func (s Spectrum) Centroid() float64 {
	width := s.BinWidth()
	var num, den float64
	for k, p := range s.Power {
		num += float64(k) * width * p
		den += p
	}

	if den == 0 {
		return 0
	}

	return num / den
}

// BandEnergy analyzes signal and returns its energy in [loHz, hiHz].
func BandEnergy(signal []float64, sampleRate, loHz, hiHz float64) (float64, error) {
	s, err := Analyze(signal, sampleRate)
	if err != nil {
		return 0, err
	}

	return s.BandEnergy(loHz, hiHz)
}

// HighFrequencyRatio returns the fraction of energy above splitHz, in [0, 1].
// Silence yields 0.
func HighFrequencyRatio(signal []float64, sampleRate, splitHz float64) (float64, error) {
	s, err := Analyze(signal, sampleRate)
	if err != nil {
		return 0, err
	}

	total := s.Total()
	if total == 0 {
		return 0, nil
	}

	high, err := s.BandEnergy(math.Nextafter(splitHz, math.Inf(1)), math.Inf(1))
	if err != nil {
		return 0, err
	}

	return high / total, nil
}

// hann returns a periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}

	return w
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
