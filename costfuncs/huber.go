package costfuncs

import (
	"math"
)

type huber float64

// Huber returns the Huber Loss Function, which implements recurrent.CostFunction. δ controls the
// bounds of the transition between MSE and Absolute Value.
func Huber(δ float64) huber {
	return huber(δ)
}

func (h huber) TypeString() string {
	return "huber"
}

func (h huber) Cost(outs, targets []float64) float64 {
	δ := float64(h)

	var sum float64
	for i := range outs {
		d := math.Abs(outs[i] - targets[i])
		if d <= δ {
			sum += 0.5 * d * d // faster than math.Pow
		} else {
			sum += δ*d - 0.5*δ*δ
		}
	}

	return sum / float64(len(outs))
}

func (h huber) Derivs(outs, targets []float64) []float64 {
	δ := float64(h)

	ds := make([]float64, len(outs))
	for i := range outs {
		d := outs[i] - targets[i]
		if !(d < -δ || d > δ) { // d >= -δ && d <= δ
			ds[i] = d
		} else {
			ds[i] = math.Copysign(δ, d)
		}
	}

	return ds
}
