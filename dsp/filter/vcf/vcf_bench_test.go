package vcf

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func BenchmarkLowPass(b *testing.B) {
	f, err := New(44100)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	for _, n := range []int{441, 44100, 88200} {
		in := testutil.Tone(220, 44100, 1, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			for i := 0; i < b.N; i++ {
				_, _ = f.LowPass(in, 1000, 0.3)
			}
		})
	}
}
