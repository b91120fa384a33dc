package vcf_test

import (
	"testing"

	"github.com/cwbudde/algo-synth/dsp/filter/vcf"
	"github.com/cwbudde/algo-synth/dsp/oscillator"
	"github.com/cwbudde/algo-synth/stats/spectral"
	timestats "github.com/cwbudde/algo-synth/stats/time"
)

func TestSawtoothThroughLowPass(t *testing.T) {
	const sampleRate = 44100

	vco, err := oscillator.New(sampleRate)
	if err != nil {
		t.Fatalf("oscillator.New() error = %v", err)
	}
	f, err := vcf.New(sampleRate)
	if err != nil {
		t.Fatalf("vcf.New() error = %v", err)
	}

	raw := vco.Sawtooth(1000, 0.1)
	filtered, err := f.LowPass(raw, 200, 0.3)
	if err != nil {
		t.Fatalf("LowPass() error = %v", err)
	}

	if len(filtered) != len(raw) {
		t.Fatalf("len = %d, want %d", len(filtered), len(raw))
	}

	rawDelta := timestats.MeanAbsDelta(raw)
	filtDelta := timestats.MeanAbsDelta(filtered)
	if filtDelta >= 0.8*rawDelta {
		t.Fatalf("mean |Δx| filtered %v, raw %v: want at least 20%% reduction", filtDelta, rawDelta)
	}

	rawHigh, err := spectral.HighFrequencyRatio(raw, sampleRate, 5000)
	if err != nil {
		t.Fatalf("HighFrequencyRatio() error = %v", err)
	}
	filtHigh, err := spectral.HighFrequencyRatio(filtered, sampleRate, 5000)
	if err != nil {
		t.Fatalf("HighFrequencyRatio() error = %v", err)
	}
	if filtHigh >= rawHigh {
		t.Fatalf("energy above 5 kHz: filtered %v >= raw %v", filtHigh, rawHigh)
	}
}

func TestEveryWaveformKeepsLength(t *testing.T) {
	vco, err := oscillator.New(48000)
	if err != nil {
		t.Fatalf("oscillator.New() error = %v", err)
	}
	f, err := vcf.New(48000)
	if err != nil {
		t.Fatalf("vcf.New() error = %v", err)
	}

	for _, w := range []oscillator.Waveform{
		oscillator.WaveformSine, oscillator.WaveformSquare,
		oscillator.WaveformTriangle, oscillator.WaveformSawtooth,
	} {
		raw, err := vco.Generate(w, 330, 0.25)
		if err != nil {
			t.Fatalf("Generate(%v) error = %v", w, err)
		}
		for _, mode := range []vcf.Mode{vcf.ModeLowPass, vcf.ModeHighPass, vcf.ModeBandPass} {
			res, err := f.Apply(raw, 1500, vcf.DefaultResonance, mode)
			if err != nil {
				t.Fatalf("Apply(%v, %v) error = %v", w, mode, err)
			}
			if len(res.Samples) != 12000 {
				t.Fatalf("Apply(%v, %v) len = %d, want 12000", w, mode, len(res.Samples))
			}
		}
	}
}
