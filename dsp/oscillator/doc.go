// Package oscillator generates whole buffers of periodic waveforms at a
// requested frequency.
//
// Supported waveforms:
//   - WaveformSine: sin(2π·f·t)
//   - WaveformSquare: sign(sin(2π·f·t)), with sign(0) = 0
//   - WaveformTriangle: unit-amplitude triangle peaking at +1 and -1
//   - WaveformSawtooth: rises linearly from -1 towards +1 and wraps
//
// Every generator samples an evenly spaced grid of floor(sampleRate·duration)
// points over [0, duration), starting at phase 0. A VCO holds only its
// immutable sample rate, so generation is pure, deterministic, and safe for
// concurrent use.
package oscillator
