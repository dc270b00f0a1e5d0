package costfuncs

type mse int8

// MSE returns the mean squared error cost function, which implements recurrent.CostFunction.
// Each output contributes half of its squared error, so that its derivative is simply the error.
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		d := outs[i] - targets[i]
		sum += 0.5 * d * d
	}

	return sum / float64(len(outs))
}

func (m mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = outs[i] - targets[i]
	}

	return ds
}
