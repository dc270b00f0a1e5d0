package recurrent

// OutputLayer is the final DenseLayer of a Network, with a CostFunction to compare its outputs to
// their targets.
type OutputLayer struct {
	*DenseLayer

	// Cost is the total cost from the most recent call to ComputeCosts, summed (not averaged)
	// across the neurons of the layer.
	Cost float64

	cf CostFunction
}

// NewOutputLayer creates an OutputLayer, in the same manner as NewDenseLayer. NewOutputLayer
// panics with type NilArgError if the CostFunction is nil.
func NewOutputLayer(outputCount, inputCount int, initWeights WeightInit, initBiases BiasInit, act Activation, cf CostFunction) *OutputLayer {
	if cf == nil {
		panic(NilArgError{"CostFunction"})
	}

	return &OutputLayer{
		DenseLayer: NewDenseLayer(outputCount, inputCount, initWeights, initBiases, act),
		cf:         cf,
	}
}

// CostFunction returns the CostFunction of the layer.
func (l *OutputLayer) CostFunction() CostFunction {
	return l.cf
}

// ComputeCosts compares the current outputs of the layer to the given targets, storing and
// returning the total cost across all neurons.
func (l *OutputLayer) ComputeCosts(targets []float64) float64 {
	if len(targets) != len(l.Outputs) {
		panic(SizeMismatchError{len(l.Outputs), len(targets), "targets"})
	}

	l.Cost = l.cf.Cost(l.Outputs, targets) * float64(len(l.Outputs))
	return l.Cost
}

// ComputeGradients sets the gradient of each neuron from the given targets. This shadows
// DenseLayer.ComputeGradients; the output layer has no downstream layer.
func (l *OutputLayer) ComputeGradients(targets []float64) {
	if len(targets) != len(l.Outputs) {
		panic(SizeMismatchError{len(l.Outputs), len(targets), "targets"})
	}

	ds := l.cf.Derivs(l.Outputs, targets)
	for v := range l.NeuronGradients {
		l.NeuronGradients[v] = -ds[v] * l.act.Deriv(l.sums[v], l.Outputs[v])
	}
}

// UpdateWeights adjusts the weights of the layer using its current gradients and the given
// inputs. The biases of the output layer are not adjusted.
func (l *OutputLayer) UpdateWeights(inputs []float64, learningRate float64) {
	l.ApplyGradients(inputs, l.NeuronGradients, learningRate)
}
