package initializers

// The presets below are VarianceScaling with particular modes and factors. All of them provide
// Weights(fanIn, fanOut).

type leCun struct {
	*varianceScaling
}

// LeCun scales by the number of inputs, with a factor of 1. It suits tanh-like activations.
func LeCun() leCun {
	return leCun{VarianceScaling().In().Factor(1)}
}

type he struct {
	*varianceScaling
}

// He scales by the number of inputs, with a factor of 2. It suits ReLU-like activations.
func He() he {
	return he{VarianceScaling().In().Factor(2)}
}

type xavier struct {
	*varianceScaling
}

// Xavier scales by the average of the numbers of inputs and outputs.
func Xavier() xavier {
	return xavier{VarianceScaling().Avg().Factor(1)}
}

// Glorot is a proxy for Xavier
func Glorot() xavier {
	return Xavier()
}
