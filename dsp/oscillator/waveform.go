package oscillator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWaveform is returned for waveform names or values outside the
// supported set.
var ErrUnknownWaveform = errors.New("oscillator: unknown waveform")

// Waveform selects the periodic shape produced by a VCO.
type Waveform int

const (
	// WaveformSine is a pure sine tone.
	WaveformSine Waveform = iota
	// WaveformSquare is the sign of a sine tone.
	WaveformSquare
	// WaveformTriangle is a symmetric triangle wave.
	WaveformTriangle
	// WaveformSawtooth is a rising ramp that wraps once per period.
	WaveformSawtooth
)

func (w Waveform) String() string {
	switch w {
	case WaveformSine:
		return "sine"
	case WaveformSquare:
		return "square"
	case WaveformTriangle:
		return "triangle"
	case WaveformSawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Valid reports whether w is one of the supported waveforms.
func (w Waveform) Valid() bool {
	return w >= WaveformSine && w <= WaveformSawtooth
}

// ParseWaveform maps a case-insensitive name to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return WaveformSine, nil
	case "square", "sqr":
		return WaveformSquare, nil
	case "triangle", "tri":
		return WaveformTriangle, nil
	case "sawtooth", "saw":
		return WaveformSawtooth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWaveform, name)
	}
}
