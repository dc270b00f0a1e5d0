package recurrent

// Activation is the element-wise function applied to the weighted sums of a DenseLayer.
// Implementations must be stateless: a single value is shared by every layer that uses it, and
// may be used by several Networks at once.
type Activation interface {
	// TypeString returns the string corresponding to the type of the Activation.
	// For example: the Activation "Identity" should return "identity".
	TypeString() string

	// Value returns the result of the function for the given pre-activation value.
	Value(float64) float64
	// Value(x float64) float64

	// Deriv returns the derivative of the function at the given point. Both the pre-activation
	// value and its result (from Value) are provided, so that functions whose derivative is
	// cheaper in terms of their output (e.g. tanh) don't need to recompute it.
	Deriv(float64, float64) float64
	// Deriv(x, y float64) float64
}

// CostFunction compares the outputs of a Network to their targets.
type CostFunction interface {
	// for all functions, can assume that length is the same and indexes are in range

	TypeString() string

	// Cost returns the cost of the outputs, averaged across them.
	// arguments: actual values, target values.
	Cost([]float64, []float64) float64
	// Cost(outs, targets []float64) float64

	// Derivs returns the derivative of the (un-averaged) cost w.r.t. each output value. The
	// returned slice is newly allocated.
	Derivs([]float64, []float64) []float64
	// Derivs(outs, targets []float64) []float64
}

// HyperParameter provides a value that may change over the course of training, typically the
// learning rate.
type HyperParameter interface {
	TypeString() string

	// Value returns the value of the HyperParameter at the given iteration
	Value(int) float64
}

// WeightInit gives the starting value of the weight connecting the given input to the given
// neuron. It is called exactly once per weight, when the layer is constructed.
type WeightInit func(neuron, input int) float64

// BiasInit gives the starting value of the bias of the given neuron. It is called exactly once
// per neuron, when the layer is constructed.
type BiasInit func(neuron int) float64
