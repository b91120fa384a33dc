package vcf

import (
	"math"
	"math/cmplx"
)

// Coefficients holds the derived recursion parameters for one Apply call.
type Coefficients struct {
	// Alpha is the feedback coefficient on the previous output.
	Alpha float64
	// K scales the input derivative (4·resonance).
	K float64
}

// NewCoefficients derives coefficients from already-clamped parameters.
func NewCoefficients(cutoffHz, resonance, sampleRate float64) Coefficients {
	alpha := math.Exp(-2 * math.Pi * cutoffHz / sampleRate)
	alpha *= 1 - 0.5*resonance

	return Coefficients{
		Alpha: alpha,
		K:     4 * resonance,
	}
}

// Response computes the complex frequency response H(e^jw):
//
//	H(z) = (1-α)·((1+K) - K·z⁻¹) / (1 - α·z⁻¹)
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))

	g := complex(1-c.Alpha, 0)
	num := g * (complex(1+c.K, 0) - complex(c.K, 0)*ejw)
	den := complex(1, 0) - complex(c.Alpha, 0)*ejw
	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// process runs the recursion over in, writing len(in) samples to out.
// Filter memory starts at zero.
func (c Coefficients) process(out, in []float64) {
	var prevIn, prevOut float64

	gain := 1 - c.Alpha
	for i, x := range in {
		boosted := x + c.K*(x-prevIn)
		y := c.Alpha*prevOut + gain*boosted
		out[i] = y
		prevIn = x
		prevOut = y
	}
}
