package recurrent

import (
	"gonum.org/v1/gonum/floats"
)

// DenseLayer is a fully-connected layer of neurons: each output is the activation of a weighted
// sum of all of the inputs, plus a bias.
//
// The fields are exported so that weights can be inspected and adjusted in place. Their lengths
// must not be changed.
type DenseLayer struct {
	// Weights has one row per neuron; each row has one weight per input.
	Weights [][]float64
	Biases  []float64

	// Outputs are the values of the layer from the most recent call to Forward.
	Outputs []float64

	// NeuronGradients is only valid directly after ComputeGradients (or, for an OutputLayer,
	// its own ComputeGradients). Gradients point in the direction that decreases the cost.
	NeuronGradients []float64

	// the weighted sums from the most recent call to Forward, before activation
	sums []float64

	act Activation
}

// NewDenseLayer creates a DenseLayer with the given number of neurons and inputs. The
// initializers are called once for each weight and bias, neuron by neuron. NewDenseLayer panics
// with type NilArgError if any of its function arguments are nil.
func NewDenseLayer(outputCount, inputCount int, initWeights WeightInit, initBiases BiasInit, act Activation) *DenseLayer {
	if initWeights == nil {
		panic(NilArgError{"WeightInit"})
	} else if initBiases == nil {
		panic(NilArgError{"BiasInit"})
	} else if act == nil {
		panic(NilArgError{"Activation"})
	}

	l := &DenseLayer{
		Weights:         make([][]float64, outputCount),
		Biases:          make([]float64, outputCount),
		Outputs:         make([]float64, outputCount),
		NeuronGradients: make([]float64, outputCount),
		sums:            make([]float64, outputCount),
		act:             act,
	}

	for v := range l.Weights {
		l.Weights[v] = make([]float64, inputCount)
		for in := range l.Weights[v] {
			l.Weights[v][in] = initWeights(v, in)
		}
		l.Biases[v] = initBiases(v)
	}

	return l
}

// InputCount returns the number of input values the layer expects.
func (l *DenseLayer) InputCount() int {
	if len(l.Weights) == 0 {
		return 0
	}

	return len(l.Weights[0])
}

// OutputCount returns the number of neurons in the layer.
func (l *DenseLayer) OutputCount() int {
	return len(l.Biases)
}

// Activation returns the Activation shared by the neurons of the layer.
func (l *DenseLayer) Activation() Activation {
	return l.act
}

// Forward sets the outputs of the layer from the given inputs. It panics with type
// SizeMismatchError if the number of inputs is wrong.
func (l *DenseLayer) Forward(inputs []float64) {
	if len(inputs) != l.InputCount() {
		panic(SizeMismatchError{l.InputCount(), len(inputs), "dense layer inputs"})
	}

	for v := range l.Weights {
		l.sums[v] = floats.Dot(l.Weights[v], inputs) + l.Biases[v]
		l.Outputs[v] = l.act.Value(l.sums[v])
	}
}

// ComputeGradients sets the gradient of each neuron from the layer that receives its outputs,
// given by that layer's weights (one row per downstream neuron) and gradients. The derivative of
// the activation is taken at the values from the most recent call to Forward.
//
// A downstream row too short to reach a neuron contributes nothing to that neuron's gradient.
func (l *DenseLayer) ComputeGradients(nextWeights [][]float64, nextGradients []float64) {
	if len(nextWeights) != len(nextGradients) {
		panic(SizeMismatchError{len(nextWeights), len(nextGradients), "downstream gradients"})
	}

	for v := range l.NeuronGradients {
		var sum float64
		for k, row := range nextWeights {
			if v < len(row) {
				sum += row[v] * nextGradients[k]
			}
		}

		l.NeuronGradients[v] = sum * l.act.Deriv(l.sums[v], l.Outputs[v])
	}
}

// ApplyGradients adds learningRate * gradient * input to every weight. Biases are not changed.
// The inputs need not be those of the most recent call to Forward, which allows updates to be
// accumulated for each step of a sequence.
func (l *DenseLayer) ApplyGradients(inputs, gradients []float64, learningRate float64) {
	if len(gradients) != len(l.Weights) {
		panic(SizeMismatchError{len(l.Weights), len(gradients), "neuron gradients"})
	}

	for v := range l.Weights {
		floats.AddScaled(l.Weights[v], learningRate*gradients[v], inputs)
	}
}

// ApplyBiasGradients adds learningRate * gradient to each bias.
func (l *DenseLayer) ApplyBiasGradients(gradients []float64, learningRate float64) {
	floats.AddScaled(l.Biases, learningRate, gradients)
}
