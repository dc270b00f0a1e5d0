package recurrent

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Network is a recurrent Layer whose outputs are fed, at each step, into an OutputLayer. It is
// trained one sequence at a time.
//
// A Network is not safe for concurrent use. To train on several sequences at once, use separate
// Networks.
type Network struct {
	Layer  *Layer
	Output *OutputLayer

	// per step: the outputs of the OutputLayer, and the outputs of Layer that produced them.
	// Like the history in Layer, these are reused between sequences.
	outputs      [][]float64
	layerOutputs [][]float64

	// the length of the most recent sequence
	seqLen int

	log logrus.FieldLogger
}

// NewNetwork joins a Layer and an OutputLayer into a Network. NewNetwork returns type
// SizeMismatchError if the OutputLayer does not take the outputs of the Layer as input.
func NewNetwork(layer *Layer, out *OutputLayer) (*Network, error) {
	if layer == nil {
		return nil, NilArgError{"Layer"}
	} else if out == nil {
		return nil, NilArgError{"OutputLayer"}
	} else if out.InputCount() != layer.OutputCount() {
		return nil, SizeMismatchError{layer.OutputCount(), out.InputCount(), "output layer inputs"}
	}

	return &Network{
		Layer:  layer,
		Output: out,
		log:    defaultLogger(),
	}, nil
}

// defaultLogger discards everything; Networks are quiet unless given a logger with SetLogger.
func defaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger sets the logger that the Network reports training progress to. If log is nil,
// logging is disabled.
func (net *Network) SetLogger(log logrus.FieldLogger) *Network {
	if log == nil {
		log = defaultLogger()
	}

	net.log = log
	return net
}

// Forward resets the state of the Network and runs the entire sequence through it.
//
// If expected is nil, no costs or gradients are computed, and the returned gradients are nil.
// Otherwise, expected must have the same length as sequence; a nil entry marks a step without a
// target, which contributes no cost and receives all-zero gradients.
//
// Forward returns the total cost of the sequence (summed over both steps and output neurons) and
// the gradients of the OutputLayer's neurons at each step.
func (net *Network) Forward(sequence, expected [][]float64) (float64, [][]float64) {
	if expected != nil && len(expected) != len(sequence) {
		panic(SizeMismatchError{len(sequence), len(expected), "expected sequence"})
	}

	net.Layer.Reset()

	var gradients [][]float64
	if expected != nil {
		gradients = make([][]float64, len(sequence))
	}

	var totalCost float64
	for step, inputs := range sequence {
		net.Layer.Forward(inputs, step)
		net.Output.Forward(net.Layer.Outputs())

		net.outputs = record(net.outputs, step, net.Output.Outputs)
		net.layerOutputs = record(net.layerOutputs, step, net.Layer.Outputs())

		if expected == nil {
			continue
		}

		if expected[step] == nil {
			gradients[step] = make([]float64, net.Output.OutputCount())
			continue
		}

		totalCost += net.Output.ComputeCosts(expected[step])
		net.Output.ComputeGradients(expected[step])

		gradients[step] = make([]float64, net.Output.OutputCount())
		copy(gradients[step], net.Output.NeuronGradients)
	}

	net.seqLen = len(sequence)
	return totalCost, gradients
}

// TrainOneSequence runs the sequence through the Network, then adjusts all of its weights (and
// the biases of the Layer's OutputTree) to move its outputs towards expected. expected follows
// the same rules as for Forward, but may not be nil. TrainOneSequence panics with type
// SizeMismatchError if the lengths of sequence and expected are not equal.
//
// The returned cost is averaged over output neurons and steps, and is from before the weights
// were adjusted. Empty sequences panic with ErrEmptySequence.
func (net *Network) TrainOneSequence(sequence, expected [][]float64, learningRate float64) float64 {
	if len(sequence) != len(expected) || expected == nil {
		panic(SizeMismatchError{len(sequence), len(expected), "expected sequence"})
	} else if len(sequence) == 0 {
		panic(ErrEmptySequence)
	}

	totalCost, gradients := net.Forward(sequence, expected)

	net.Layer.ComputeGradients(net.Output.Weights, gradients, len(sequence))

	for step := range sequence {
		copy(net.Output.NeuronGradients, gradients[step])
		net.Output.UpdateWeights(net.layerOutputs[step], learningRate)
	}

	net.Layer.UpdateWeights(learningRate, len(sequence))
	net.Layer.UpdateBiases(learningRate, len(sequence))

	cost := totalCost / float64(net.Output.OutputCount()) / float64(len(sequence))

	net.log.WithFields(logrus.Fields{
		"steps":         len(sequence),
		"cost":          cost,
		"learning_rate": learningRate,
	}).Debug("Trained sequence")

	return cost
}

// Predict runs the sequence through the Network, returning the outputs at each step. The returned
// slices are not copies, and will be overwritten by the next sequence.
func (net *Network) Predict(sequence [][]float64) [][]float64 {
	net.Forward(sequence, nil)
	return net.outputs[:len(sequence)]
}

// Outputs returns the outputs of the OutputLayer at each step of the most recent sequence.
func (net *Network) Outputs() [][]float64 {
	return net.outputs[:net.seqLen]
}

// LayerOutputs returns the outputs of the recurrent Layer at each step of the most recent
// sequence; these were the inputs to the OutputLayer.
func (net *Network) LayerOutputs() [][]float64 {
	return net.layerOutputs[:net.seqLen]
}

// InputSize returns the number of input values expected at each step.
func (net *Network) InputSize() int {
	return net.Layer.InputCount()
}

// OutputSize returns the number of output values produced at each step.
func (net *Network) OutputSize() int {
	return net.Output.OutputCount()
}
