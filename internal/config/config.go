// Package config loads settings for the synth demo from an optional .env
// file, the environment, and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/filter/vcf"
	"github.com/cwbudde/algo-synth/dsp/oscillator"
)

// DefaultEnvFile is read when present in the working directory.
const DefaultEnvFile = ".env"

// Config holds the demo's synthesis and output settings.
type Config struct {
	SampleRate  int
	Waveform    string
	FrequencyHz float64
	DurationSec float64
	CutoffHz    float64
	Resonance   float64
	FilterMode  string
	Output      string
	Normalize   bool
	Headroom    float64
	LogMode     string
}

// Load reads envFile (ignored when it does not exist) and then SYNTH_*
// environment variables over the built-in defaults.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		SampleRate:  getEnvInt("SYNTH_SAMPLE_RATE", core.DefaultSampleRate),
		Waveform:    getEnv("SYNTH_WAVEFORM", "sawtooth"),
		FrequencyHz: getEnvFloat("SYNTH_FREQUENCY", 220),
		DurationSec: getEnvFloat("SYNTH_DURATION", 2),
		CutoffHz:    getEnvFloat("SYNTH_CUTOFF", 1000),
		Resonance:   getEnvFloat("SYNTH_RESONANCE", 0.3),
		FilterMode:  getEnv("SYNTH_FILTER", "low_pass"),
		Output:      getEnv("SYNTH_OUTPUT", ""),
		Normalize:   getEnvBool("SYNTH_NORMALIZE", true),
		Headroom:    getEnvFloat("SYNTH_HEADROOM", 0.9),
		LogMode:     getEnv("SYNTH_LOG", "development"),
	}

	return cfg, nil
}

// RegisterFlags binds every field to fs using the loaded values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.SampleRate, "rate", c.SampleRate, "sample rate in Hz")
	fs.StringVar(&c.Waveform, "wave", c.Waveform, "waveform: sine, square, triangle, sawtooth")
	fs.Float64Var(&c.FrequencyHz, "freq", c.FrequencyHz, "oscillator frequency in Hz")
	fs.Float64Var(&c.DurationSec, "dur", c.DurationSec, "buffer duration in seconds")
	fs.Float64Var(&c.CutoffHz, "cutoff", c.CutoffHz, "filter cutoff in Hz (clamped to [20, rate/2])")
	fs.Float64Var(&c.Resonance, "res", c.Resonance, "filter resonance (clamped to [0, 0.99])")
	fs.StringVar(&c.FilterMode, "filter", c.FilterMode, "filter mode: low_pass, high_pass, band_pass")
	fs.StringVar(&c.Output, "out", c.Output, "write the staged buffer to this WAV file")
	fs.BoolVar(&c.Normalize, "normalize", c.Normalize, "rescale resonant overshoot instead of clipping it")
	fs.Float64Var(&c.Headroom, "headroom", c.Headroom, "target peak when normalizing")
	fs.StringVar(&c.LogMode, "log", c.LogMode, "logger: development, production")
}

// Validate checks that the selectors parse and the sample rate is usable.
// Cutoff and resonance are not checked; the filter clamps them.
func (c *Config) Validate() error {
	if err := core.ValidateSampleRate(c.SampleRate); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if _, err := oscillator.ParseWaveform(c.Waveform); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if _, err := vcf.ParseMode(c.FilterMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if !(c.DurationSec >= 0) {
		return fmt.Errorf("config: duration must be >= 0: %v", c.DurationSec)
	}

	if c.DurationSec*float64(c.SampleRate) > oscillator.MaxSamples {
		return fmt.Errorf("config: %w: duration %v s exceeds %d samples",
			core.ErrInvalidInput, c.DurationSec, oscillator.MaxSamples)
	}

	switch c.LogMode {
	case "development", "production":
	default:
		return fmt.Errorf("config: unknown log mode %q", c.LogMode)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
