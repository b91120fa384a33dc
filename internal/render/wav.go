// Package render hands finished sample buffers to a playback collaborator by
// encoding them as mono 16-bit PCM WAV.
package render

import (
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/cwbudde/algo-synth/dsp/core"
)

const (
	bitDepth   = 16
	fullScale  = 32767
	pcmFormat  = 1
	numChannel = 1
)

// WriteWAV encodes samples at sampleRate to w. Samples are hard-clipped to
// [-1, 1] and quantized to 16 bits.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return errors.Wrapf(err, "wav sample rate")
	}

	if err := core.CheckFinite(samples); err != nil {
		return errors.Wrapf(err, "wav samples")
	}

	format := &audio.Format{SampleRate: sampleRate, NumChannels: numChannel}
	buf := &audio.IntBuffer{
		Format:         format,
		Data:           Quantize(samples),
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, numChannel, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return errors.Wrapf(err, "write %v samples", len(samples))
	}

	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "close wav encoder")
	}

	return nil
}

// ReadWAV decodes a mono 16-bit WAV stream into samples in [-1, 1].
func ReadWAV(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("invalid wav stream")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, errors.Wrapf(err, "decode pcm")
	}

	if dec.BitDepth != bitDepth || dec.NumChans != numChannel {
		return nil, 0, errors.Errorf("unsupported wav layout: %v bit, %v channels", dec.BitDepth, dec.NumChans)
	}

	out := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = float64(v) / fullScale
	}

	return out, int(dec.SampleRate), nil
}

// Quantize converts samples to 16-bit integers, clamping to full scale.
func Quantize(samples []float64) []int {
	out := make([]int, len(samples))
	for i, x := range samples {
		out[i] = int(math.Round(core.Clamp(x, -1, 1) * fullScale))
	}

	return out
}
