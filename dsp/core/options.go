package core

import "fmt"

// DefaultSampleRate is the CD-quality rate used when no rate is configured.
const DefaultSampleRate = 44100

// Config defines settings shared by the oscillator and filter.
// Wiring an oscillator into a filter requires both to use the same SampleRate.
type Config struct {
	SampleRate int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{SampleRate: DefaultSampleRate}
}

// WithSampleRate sets the sample rate in Hz. Non-positive values are ignored.
func WithSampleRate(sampleRate int) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ValidateSampleRate reports ErrInvalidSampleRate for non-positive rates.
func ValidateSampleRate(sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

// Nyquist returns half the sample rate.
func (c Config) Nyquist() float64 {
	return float64(c.SampleRate) / 2
}
