package initializers

type random struct {
	RNG
}

// Random returns an initializer that uses the provided RNG to generate the weights. There is no
// scaling beyond that of the RNG.
func Random(g RNG) random {
	return random{g}
}

// Weights returns the function that initializes each weight, for use as a recurrent.WeightInit
func (r random) Weights() func(neuron, input int) float64 {
	return func(neuron, input int) float64 {
		return r.Gen()
	}
}

// Biases returns the function that initializes each bias, for use as a recurrent.BiasInit
func (r random) Biases() func(neuron int) float64 {
	return func(neuron int) float64 {
		return r.Gen()
	}
}

type constant float64

// Constant returns an initializer that sets every weight or bias to the same value.
func Constant(value float64) constant {
	return constant(value)
}

// Weights returns the function that initializes each weight, for use as a recurrent.WeightInit
func (c constant) Weights() func(neuron, input int) float64 {
	return func(neuron, input int) float64 {
		return float64(c)
	}
}

// Biases returns the function that initializes each bias, for use as a recurrent.BiasInit
func (c constant) Biases() func(neuron int) float64 {
	return func(neuron int) float64 {
		return float64(c)
	}
}
