package recurrent

import (
	"gonum.org/v1/gonum/floats"
)

// SublayerArgs are the construction arguments for one of the two DenseLayers inside a Layer.
type SublayerArgs struct {
	Weights    WeightInit
	Biases     BiasInit
	Activation Activation
}

// Layer is a recurrent layer: at each step of a sequence, it takes its own state from the
// previous step alongside the new inputs, producing both its next state and the outputs that are
// passed on to the next layer.
//
// Both of those are computed by DenseLayers (RecurrentTree and OutputTree, respectively) whose
// inputs are the previous state followed by the current inputs. Layer records what it needs from
// each step so that gradients can be propagated backwards through time once the sequence has
// finished.
//
// A Layer is not safe for concurrent use, and a sequence must be fully processed (forwards,
// backwards and updated) before the next one is started.
type Layer struct {
	// State is the memory carried from one step to the next. It always has length equal to the
	// state size, and is set to zero by Reset.
	State []float64

	// RecurrentTree produces the next state.
	RecurrentTree *DenseLayer
	// OutputTree produces the outputs of the layer.
	OutputTree *DenseLayer

	inputCount int

	// the combined (state, inputs) for the current step
	combined []float64

	// History, indexed by step. These are reused between sequences, so their lengths are the
	// longest sequence seen so far; they must always be bounded by the length of the current
	// sequence.
	inputs     [][]float64
	prevStates [][]float64

	recurrentGradients [][]float64
	outputGradients    [][]float64

	// the sequence length given to the most recent call to ComputeGradients
	gradientsLen int
}

// NewLayer creates a new recurrent Layer, with its state initialized to zero.
func NewLayer(outputCount, inputCount, stateSize int, recurrent, output SublayerArgs) *Layer {
	return &Layer{
		State:         make([]float64, stateSize),
		RecurrentTree: NewDenseLayer(stateSize, inputCount+stateSize, recurrent.Weights, recurrent.Biases, recurrent.Activation),
		OutputTree:    NewDenseLayer(outputCount, inputCount+stateSize, output.Weights, output.Biases, output.Activation),
		inputCount:    inputCount,
		combined:      make([]float64, inputCount+stateSize),
	}
}

// StateSize returns the length of the state vector.
func (l *Layer) StateSize() int {
	return len(l.State)
}

// InputCount returns the number of input values expected at each step.
func (l *Layer) InputCount() int {
	return l.inputCount
}

// OutputCount returns the number of output values produced at each step.
func (l *Layer) OutputCount() int {
	return l.OutputTree.OutputCount()
}

// Reset sets the state to all zeros. It should be called before starting a new sequence. The
// recorded history is left as-is; it will be overwritten as the next sequence is processed.
func (l *Layer) Reset() {
	clear(l.State)
}

// Forward runs a single step of the sequence, where step is the (0-based) index of the step in
// the current sequence. Steps must be given in order, starting from 0.
//
// Forward panics with type SizeMismatchError if the number of inputs is wrong, or with
// ErrStepOutOfOrder if step would leave a gap in the recorded history.
func (l *Layer) Forward(inputs []float64, step int) {
	if len(inputs) != l.inputCount {
		panic(SizeMismatchError{l.inputCount, len(inputs), "recurrent layer inputs"})
	} else if step < 0 || step > len(l.prevStates) {
		panic(ErrStepOutOfOrder)
	}

	stateSize := len(l.State)
	copy(l.combined[:stateSize], l.State)
	copy(l.combined[stateSize:], inputs)

	l.OutputTree.Forward(l.combined)
	l.RecurrentTree.Forward(l.combined)

	l.prevStates = record(l.prevStates, step, l.State)
	l.inputs = record(l.inputs, step, inputs)

	copy(l.State, l.RecurrentTree.Outputs)
}

// Outputs returns the outputs from the most recent step. These are separate from the state. The
// returned slice is not a copy, and will change with the next call to Forward.
func (l *Layer) Outputs() []float64 {
	return l.OutputTree.Outputs
}

// ComputeGradients propagates gradients backwards through the first sequenceLen steps of the
// most recent sequence.
//
// outWeights are the weights of the layer that receives the outputs of this Layer, and
// outGradients hold that layer's neuron gradients for each step. Steps without a target should
// have all-zero gradients.
//
// The gradient of each recurrent neuron combines two paths: the same projection through
// outWeights used for the output neurons, and (for all but the final step) the gradient of the
// recurrent neurons at the following step, projected back through the part of RecurrentTree's
// weights that reads the state. Nothing depends on the state after the final step, so that step
// has no recurrent term.
func (l *Layer) ComputeGradients(outWeights [][]float64, outGradients [][]float64, sequenceLen int) {
	if sequenceLen > len(l.prevStates) {
		panic(ErrSequenceTooLong)
	} else if len(outGradients) < sequenceLen {
		panic(SizeMismatchError{sequenceLen, len(outGradients), "output gradients per step"})
	}

	stateSize := len(l.State)
	l.outputGradients = grow(l.outputGradients, sequenceLen, l.OutputCount())
	l.recurrentGradients = grow(l.recurrentGradients, sequenceLen, stateSize)
	l.gradientsLen = sequenceLen

	// the columns of each recurrent neuron's weights that connect to the previous state
	selfWeights := make([][]float64, stateSize)
	for v, row := range l.RecurrentTree.Weights {
		selfWeights[v] = row[:stateSize]
	}

	// Iterate backwards, carrying the recurrent gradients of the step after. Results are written
	// straight into their chronological slot.
	var next []float64
	for i := sequenceLen - 1; i >= 0; i-- {
		l.OutputTree.ComputeGradients(outWeights, outGradients[i])
		copy(l.outputGradients[i], l.OutputTree.NeuronGradients)

		grads := l.recurrentGradients[i]
		l.RecurrentTree.ComputeGradients(outWeights, outGradients[i])
		copy(grads, l.RecurrentTree.NeuronGradients)

		if next != nil {
			l.RecurrentTree.ComputeGradients(selfWeights, next)
			floats.Add(grads, l.RecurrentTree.NeuronGradients)
		}

		next = grads
	}
}

// UpdateWeights adjusts the weights of both trees, using the gradients from the most recent call
// to ComputeGradients. Because the same weights are used at every step, the changes from each
// step are added together.
func (l *Layer) UpdateWeights(learningRate float64, sequenceLen int) {
	if sequenceLen > l.gradientsLen {
		panic(ErrSequenceTooLong)
	}

	stateSize := len(l.State)

	// the state is always zero at the start of the sequence
	clear(l.combined)
	for step := 0; step < sequenceLen; step++ {
		if step != 0 {
			copy(l.combined[:stateSize], l.prevStates[step])
		}
		copy(l.combined[stateSize:], l.inputs[step])

		l.OutputTree.ApplyGradients(l.combined, l.outputGradients[step], learningRate)
		l.RecurrentTree.ApplyGradients(l.combined, l.recurrentGradients[step], learningRate)
	}
}

// UpdateBiases adjusts the biases of OutputTree, using the gradients from the most recent call to
// ComputeGradients. The biases of RecurrentTree are not changed.
func (l *Layer) UpdateBiases(learningRate float64, sequenceLen int) {
	if sequenceLen > l.gradientsLen {
		panic(ErrSequenceTooLong)
	}

	for step := 0; step < sequenceLen; step++ {
		l.OutputTree.ApplyBiasGradients(l.outputGradients[step], learningRate)
	}
}

// HistoryLen returns the number of steps currently held in the recorded history. This is the
// length of the longest sequence processed so far, not necessarily that of the most recent one.
func (l *Layer) HistoryLen() int {
	return len(l.prevStates)
}

// StepInputs returns the inputs recorded at the given step. The returned slice is not a copy.
func (l *Layer) StepInputs(step int) []float64 {
	return l.inputs[step]
}

// PrevState returns the state from before the given step. The returned slice is not a copy.
func (l *Layer) PrevState(step int) []float64 {
	return l.prevStates[step]
}

// RecurrentGradients returns the gradients of the recurrent neurons at each step, from the most
// recent call to ComputeGradients. The returned slices are not copies.
func (l *Layer) RecurrentGradients() [][]float64 {
	return l.recurrentGradients[:l.gradientsLen]
}

// OutputGradients returns the gradients of the output neurons at each step, from the most recent
// call to ComputeGradients. The returned slices are not copies.
func (l *Layer) OutputGradients() [][]float64 {
	return l.outputGradients[:l.gradientsLen]
}
