package core

import "errors"

var (
	// ErrInvalidSampleRate is returned when a sample rate is not positive.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidInput is returned when a buffer or scalar parameter is not finite.
	ErrInvalidInput = errors.New("invalid input")
)
