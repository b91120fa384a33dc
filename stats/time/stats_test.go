package time

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

// generateSine creates exactly numCycles full cycles of a sine wave.
func generateSine(amplitude, freq, sampleRate float64, numCycles int) []float64 {
	samplesPerCycle := int(sampleRate / freq)
	n := samplesPerCycle * numCycles
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || s.RMS != 0 || s.MeanAbsDelta != 0 {
		t.Fatalf("unexpected stats for empty signal: %+v", s)
	}
	if !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) {
		t.Fatalf("dB fields = (%v, %v), want -Inf", s.RMS_dB, s.Peak_dB)
	}
}

func TestCalculateSine(t *testing.T) {
	sig := generateSine(1, 1000, 48000, 10)
	s := Calculate(sig)

	if s.Length != 480 {
		t.Fatalf("Length = %d, want 480", s.Length)
	}
	if !almostEqual(s.RMS, 1/math.Sqrt2, tolerance) {
		t.Fatalf("RMS = %v, want %v", s.RMS, 1/math.Sqrt2)
	}
	if !almostEqual(s.DC, 0, tolerance) {
		t.Fatalf("DC = %v, want 0", s.DC)
	}
	if !almostEqual(s.Peak, 1, tolerance) {
		t.Fatalf("Peak = %v, want 1", s.Peak)
	}
	if !almostEqual(s.CrestFactor, math.Sqrt2, 1e-9) {
		t.Fatalf("CrestFactor = %v, want sqrt(2)", s.CrestFactor)
	}
	if s.Clipped != 0 {
		t.Fatalf("Clipped = %d, want 0", s.Clipped)
	}
	if s.RMS != RMS(sig) || s.Peak != Peak(sig) || s.ZeroCrossings != ZeroCrossings(sig) {
		t.Fatal("Calculate disagrees with single-metric helpers")
	}
	if !almostEqual(s.MeanAbsDelta, MeanAbsDelta(sig), 1e-15) {
		t.Fatalf("MeanAbsDelta = %v, want %v", s.MeanAbsDelta, MeanAbsDelta(sig))
	}
}

func TestMeanAbsDelta(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{name: "empty", in: nil, want: 0},
		{name: "single", in: []float64{3}, want: 0},
		{name: "ramp", in: []float64{0, 0.5, 1, 1.5}, want: 0.5},
		{name: "alternating", in: []float64{1, -1, 1, -1}, want: 2},
		{name: "constant", in: []float64{0.3, 0.3, 0.3}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeanAbsDelta(tt.in); !almostEqual(got, tt.want, tolerance) {
				t.Fatalf("MeanAbsDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClippedAndPeak(t *testing.T) {
	s := Calculate([]float64{0.5, -1.25, 1, 2})
	if s.Clipped != 2 {
		t.Fatalf("Clipped = %d, want 2", s.Clipped)
	}
	if s.Peak != 2 {
		t.Fatalf("Peak = %v, want 2", s.Peak)
	}
	if !almostEqual(s.Peak_dB, 20*math.Log10(2), tolerance) {
		t.Fatalf("Peak_dB = %v", s.Peak_dB)
	}
}

func TestZeroCrossings(t *testing.T) {
	if got := ZeroCrossings([]float64{1, -1, 1, -1}); got != 3 {
		t.Fatalf("ZeroCrossings = %d, want 3", got)
	}
	// Touching zero is not a sign change.
	if got := ZeroCrossings([]float64{0, 1, 0, -1}); got != 0 {
		t.Fatalf("ZeroCrossings = %d, want 0", got)
	}
}

func TestDC(t *testing.T) {
	if got := DC([]float64{0.25, 0.25, 0.25, 0.25}); got != 0.25 {
		t.Fatalf("DC = %v, want 0.25", got)
	}
	if DC(nil) != 0 || RMS(nil) != 0 || Peak(nil) != 0 {
		t.Fatal("empty helpers must return 0")
	}
}
