package vcf

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-synth/dsp/core"
)

const (
	// MinCutoffHz is the lowest cutoff Apply will use.
	MinCutoffHz = 20.0
	// MaxResonance is the highest resonance Apply will use.
	MaxResonance = 0.99
	// DefaultResonance is the resonance used by LowPassDefault.
	DefaultResonance = 0.5
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	logger *zap.Logger
}

func defaultConfig() config {
	return config{logger: zap.NewNop()}
}

// WithLogger sets the sink for pass-through diagnostics. A nil logger is
// rejected.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("vcf: logger must not be nil")
		}

		cfg.logger = logger

		return nil
	}
}

// Result is the outcome of Apply.
type Result struct {
	// Samples has the same length as the input.
	Samples []float64
	// Status reports whether the signal was filtered or passed through.
	Status Status
	// Mode is the mode that was requested.
	Mode Mode
	// CutoffHz and Resonance are the effective values after clamping.
	CutoffHz  float64
	Resonance float64
}

// Filtered reports whether the low-pass recursion produced Samples.
func (r Result) Filtered() bool {
	return r.Status == StatusFiltered
}

// Filter is a resonant low-pass filter bound to one sample rate.
// It holds no per-call state.
type Filter struct {
	cfg    core.Config
	logger *zap.Logger
}

// New creates a Filter for the given sample rate in Hz.
func New(sampleRate int, opts ...Option) (*Filter, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("vcf: %w", err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Filter{
		cfg:    core.ApplyOptions(core.WithSampleRate(sampleRate)),
		logger: cfg.logger,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() int {
	return f.cfg.SampleRate
}

// ClampParams limits cutoff to [MinCutoffHz, sampleRate/2] and resonance to
// [0, MaxResonance].
func (f *Filter) ClampParams(cutoffHz, resonance float64) (float64, float64) {
	return core.Clamp(cutoffHz, MinCutoffHz, f.cfg.Nyquist()), core.Clamp(resonance, 0, MaxResonance)
}

// Coefficients returns the recursion coefficients for the clamped parameters.
func (f *Filter) Coefficients(cutoffHz, resonance float64) Coefficients {
	cutoffHz, resonance = f.ClampParams(cutoffHz, resonance)
	return NewCoefficients(cutoffHz, resonance, float64(f.cfg.SampleRate))
}

// Apply filters input and returns a new buffer of the same length; input is
// never modified. Out-of-range cutoff and resonance are clamped. Non-finite
// parameters or samples yield an error wrapping core.ErrInvalidInput.
//
// ModeHighPass and ModeBandPass are not implemented: the result holds a copy of
// input with StatusPassThrough and a warning is logged. Any other unknown mode
// is processed as low-pass.
func (f *Filter) Apply(input []float64, cutoffHz, resonance float64, mode Mode) (Result, error) {
	if !core.IsFinite(cutoffHz) {
		return Result{}, fmt.Errorf("vcf: cutoff: %w: %v", core.ErrInvalidInput, cutoffHz)
	}

	if !core.IsFinite(resonance) {
		return Result{}, fmt.Errorf("vcf: resonance: %w: %v", core.ErrInvalidInput, resonance)
	}

	if err := core.CheckFinite(input); err != nil {
		return Result{}, fmt.Errorf("vcf: %w", err)
	}

	cutoffHz, resonance = f.ClampParams(cutoffHz, resonance)
	res := Result{
		Samples:   make([]float64, len(input)),
		Status:    StatusFiltered,
		Mode:      mode,
		CutoffHz:  cutoffHz,
		Resonance: resonance,
	}

	if !mode.Implemented() {
		f.logger.Warn("filter mode not implemented, passing input through",
			zap.Stringer("mode", mode),
			zap.Int("samples", len(input)),
		)

		copy(res.Samples, input)
		res.Status = StatusPassThrough

		return res, nil
	}

	NewCoefficients(cutoffHz, resonance, float64(f.cfg.SampleRate)).process(res.Samples, input)

	return res, nil
}

// LowPass is shorthand for Apply with ModeLowPass, returning only the samples.
func (f *Filter) LowPass(input []float64, cutoffHz, resonance float64) ([]float64, error) {
	res, err := f.Apply(input, cutoffHz, resonance, ModeLowPass)
	if err != nil {
		return nil, err
	}

	return res.Samples, nil
}

// LowPassDefault runs LowPass with DefaultResonance.
func (f *Filter) LowPassDefault(input []float64, cutoffHz float64) ([]float64, error) {
	return f.LowPass(input, cutoffHz, DefaultResonance)
}
