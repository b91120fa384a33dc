package oscillator

import "testing"

func BenchmarkGenerate(b *testing.B) {
	v, err := New(44100)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	for _, w := range []Waveform{WaveformSine, WaveformSquare, WaveformTriangle, WaveformSawtooth} {
		b.Run(w.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(44100 * 8)
			for i := 0; i < b.N; i++ {
				_, _ = v.Generate(w, 440, 1)
			}
		})
	}
}
