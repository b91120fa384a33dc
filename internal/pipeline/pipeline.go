// Package pipeline wires oscillator, filter, and gain staging into the
// VCO → VCF → output signal path used by the synth demo.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/filter/vcf"
	"github.com/cwbudde/algo-synth/dsp/oscillator"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/internal/config"
	"github.com/cwbudde/algo-synth/stats/spectral"
	timestats "github.com/cwbudde/algo-synth/stats/time"
)

// Output holds every stage of one rendered buffer.
type Output struct {
	SampleRate int
	Waveform   oscillator.Waveform
	Raw        []float64
	Filter     vcf.Result
	// Staged is the buffer handed to playback, limited to [-1, 1].
	Staged []float64

	RawStats      timestats.Stats
	FilteredStats timestats.Stats
	// Centroids are power-weighted mean frequencies in Hz; zero when the
	// buffer is empty.
	RawCentroid      float64
	FilteredCentroid float64
}

// Run renders one buffer according to cfg.
func Run(cfg *config.Config, logger *zap.Logger) (*Output, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	waveform, err := oscillator.ParseWaveform(cfg.Waveform)
	if err != nil {
		return nil, err
	}

	mode, err := vcf.ParseMode(cfg.FilterMode)
	if err != nil {
		return nil, err
	}

	// Both stages share one rate so pitch and cutoff line up.
	shared := core.ApplyOptions(core.WithSampleRate(cfg.SampleRate))

	vco, err := oscillator.NewFromConfig(shared)
	if err != nil {
		return nil, err
	}

	filter, err := vcf.New(vco.SampleRate(), vcf.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	raw, err := vco.Generate(waveform, cfg.FrequencyHz, cfg.DurationSec)
	if err != nil {
		return nil, err
	}

	res, err := filter.Apply(raw, cfg.CutoffHz, cfg.Resonance, mode)
	if err != nil {
		return nil, err
	}

	staged, err := signal.Stage(res.Samples, cfg.Normalize, cfg.Headroom)
	if err != nil {
		return nil, err
	}

	out := &Output{
		SampleRate:    cfg.SampleRate,
		Waveform:      waveform,
		Raw:           raw,
		Filter:        res,
		Staged:        staged,
		RawStats:      timestats.Calculate(raw),
		FilteredStats: timestats.Calculate(res.Samples),
	}

	if len(raw) > 0 {
		rawSpec, err := spectral.Analyze(raw, float64(cfg.SampleRate))
		if err != nil {
			return nil, fmt.Errorf("pipeline: analyze raw: %w", err)
		}

		filtSpec, err := spectral.Analyze(res.Samples, float64(cfg.SampleRate))
		if err != nil {
			return nil, fmt.Errorf("pipeline: analyze filtered: %w", err)
		}

		out.RawCentroid = rawSpec.Centroid()
		out.FilteredCentroid = filtSpec.Centroid()
	}

	logger.Debug("rendered buffer",
		zap.Stringer("waveform", waveform),
		zap.Int("samples", len(raw)),
		zap.Stringer("status", res.Status),
		zap.Float64("cutoff", res.CutoffHz),
		zap.Float64("resonance", res.Resonance),
		zap.Int("clipped", out.FilteredStats.Clipped),
	)

	return out, nil
}
