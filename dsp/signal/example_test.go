package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/signal"
)

func ExampleNormalize() {
	x, err := signal.Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])

	// Output:
	// -0.40 0.20 0.80
}

func ExampleHardClip() {
	fmt.Println(signal.HardClip([]float64{-1.5, 0.25, 3}, 1))

	// Output:
	// [-1 0.25 1]
}
