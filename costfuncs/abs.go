package costfuncs

import (
	"math"
)

type abs int8

// Abs returns the Absolute Value cost function, which implements recurrent.CostFunction.
func Abs() abs {
	return abs(0)
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "abs"
}

func (a abs) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum += math.Abs(outs[i] - targets[i])
	}

	return sum / float64(len(outs))
}

func (a abs) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		if outs[i] != targets[i] {
			ds[i] = math.Copysign(1, outs[i]-targets[i])
		}
	}

	return ds
}
