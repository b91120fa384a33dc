package vcf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("vcf: unknown filter mode")

// Mode selects the filter response.
type Mode int

const (
	// ModeLowPass attenuates content above the cutoff.
	ModeLowPass Mode = iota
	// ModeHighPass is reserved; Apply passes the input through.
	ModeHighPass
	// ModeBandPass is reserved; Apply passes the input through.
	ModeBandPass
)

func (m Mode) String() string {
	switch m {
	case ModeLowPass:
		return "low_pass"
	case ModeHighPass:
		return "high_pass"
	case ModeBandPass:
		return "band_pass"
	default:
		return "unknown"
	}
}

// Implemented reports whether Apply actually filters in mode m.
// Values outside the known set are processed as low-pass.
func (m Mode) Implemented() bool {
	return m != ModeHighPass && m != ModeBandPass
}

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low_pass", "lowpass", "lp":
		return ModeLowPass, nil
	case "high_pass", "highpass", "hp":
		return ModeHighPass, nil
	case "band_pass", "bandpass", "bp":
		return ModeBandPass, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Status tells callers whether Apply changed the signal.
type Status int

const (
	// StatusFiltered means the low-pass recursion produced the output.
	StatusFiltered Status = iota
	// StatusPassThrough means the mode is not implemented and the output is a
	// copy of the input.
	StatusPassThrough
)

func (s Status) String() string {
	switch s {
	case StatusFiltered:
		return "filtered"
	case StatusPassThrough:
		return "pass_through"
	default:
		return "unknown"
	}
}
