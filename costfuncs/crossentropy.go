package costfuncs

import (
	"math"
)

type crossEntropy int8

// CrossEntropy returns the cross-entropy cost function. Outputs are expected to be in (0, 1];
// outputs of zero with a non-zero target give an infinite cost.
func CrossEntropy() crossEntropy {
	return crossEntropy(0)
}

// NegativeLog is a proxy for CrossEntropy
func NegativeLog() crossEntropy {
	return CrossEntropy()
}

func (c crossEntropy) TypeString() string {
	return "cross-entropy"
}

func (c crossEntropy) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		if targets[i] != 0 {
			sum -= targets[i] * math.Log(outs[i])
		}
	}

	return sum / float64(len(outs))
}

func (c crossEntropy) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		if targets[i] != 0 {
			ds[i] = -targets[i] / outs[i]
		}
	}

	return ds
}
