package vcf

import (
	"math"
	"testing"
)

func TestNewCoefficients(t *testing.T) {
	cutoff, sr := 1000.0, 44100.0
	c := NewCoefficients(cutoff, 0, sr)
	if want := math.Exp(-2 * math.Pi * cutoff / sr); c.Alpha != want {
		t.Fatalf("Alpha = %v, want %v", c.Alpha, want)
	}
	if c.K != 0 {
		t.Fatalf("K = %v, want 0", c.K)
	}

	r := NewCoefficients(1000, 0.5, 44100)
	if math.Abs(r.Alpha-c.Alpha*0.75) > 1e-15 {
		t.Fatalf("resonance de-rating: Alpha = %v, want %v", r.Alpha, c.Alpha*0.75)
	}
	if r.K != 2 {
		t.Fatalf("K = %v, want 2", r.K)
	}
}

func TestResponseUnityAtDC(t *testing.T) {
	for _, res := range []float64{0, 0.3, 0.99} {
		c := NewCoefficients(800, res, 44100)
		if db := c.MagnitudeDB(0, 44100); math.Abs(db) > 1e-9 {
			t.Fatalf("res=%v: DC gain %v dB, want 0", res, db)
		}
	}
}

func TestResponseAttenuatesAboveCutoff(t *testing.T) {
	c := NewCoefficients(500, 0, 44100)

	prev := c.MagnitudeDB(10, 44100)
	for _, f := range []float64{100, 500, 2000, 8000, 20000} {
		db := c.MagnitudeDB(f, 44100)
		if db >= prev {
			t.Fatalf("magnitude not decreasing at %v Hz: %v >= %v", f, db, prev)
		}
		prev = db
	}

	if db := c.MagnitudeDB(5000, 44100); db > -15 {
		t.Fatalf("magnitude at 5 kHz = %v dB, want < -15 dB", db)
	}
}

func TestResonanceRaisesHighBand(t *testing.T) {
	flat := NewCoefficients(1000, 0, 44100)
	peaked := NewCoefficients(1000, 0.9, 44100)

	if peaked.MagnitudeDB(2000, 44100) <= flat.MagnitudeDB(2000, 44100) {
		t.Fatal("resonance did not emphasize content above the cutoff")
	}
}
