package recurrent_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sharnoff/recurrent/initializers"
)

// The toy tasks below all start from the same small, fixed weights so that the results don't
// depend on the random source.
var convergenceWeights = initializers.Constant(0.01).Weights()

// lagged generates a random sequence of 2 to 9 steps where the target at each step is the input
// from lag steps before. The first lag steps have no target.
func lagged(r *rand.Rand, lag int) (seq, exp [][]float64) {
	n := 2 + r.Intn(8)

	seq = make([][]float64, n)
	exp = make([][]float64, n)
	for i := range seq {
		seq[i] = []float64{2*r.Float64() - 1}
		if i >= lag {
			exp[i] = seq[i-lag]
		}
	}

	return
}

func TestOutputZero(t *testing.T) {
	net := buildTestNetwork(t, 1, 1, 1, convergenceWeights)

	seq := [][]float64{{1}, {0.5}}
	exp := [][]float64{{0}, {0}}

	var cost float64
	for i := 0; i < 10; i++ {
		cost = net.TrainOneSequence(seq, exp, 0.25)
	}

	if cost >= 1e-4 {
		t.Errorf("Expected cost < 1e-4 after 10 iterations, got %v", cost)
	}
}

func TestOutputIdentity(t *testing.T) {
	net := buildTestNetwork(t, 1, 1, 1, convergenceWeights)

	seq := [][]float64{{1}, {0.5}, {1}, {0.5}}

	var cost float64
	for i := 0; i < 300; i++ {
		cost = net.TrainOneSequence(seq, seq, 0.05)
	}

	if cost >= 1e-4 {
		t.Errorf("Expected cost < 1e-4 after 300 iterations, got %v", cost)
	}
}

func TestOutputLastValue(t *testing.T) {
	net := buildTestNetwork(t, 1, 1, 1, convergenceWeights)
	r := rand.New(rand.NewSource(1))

	var cost float64
	for i := 0; i < 1000; i++ {
		seq, exp := lagged(r, 1)
		cost = net.TrainOneSequence(seq, exp, 0.05)
	}

	if cost >= 1e-3 {
		t.Errorf("Expected cost < 1e-3 after 1000 iterations, got %v", cost)
	}
}

// With two steps of lag, the only signal reaching the second state neuron comes through the
// first, because the gradient from the output layer is projected onto the state using the output
// layer's single weight. The task is not learned to any useful precision in 1000 iterations; this
// checks that training on it stays stable.
func TestOutputTwoStepsBack(t *testing.T) {
	net := buildTestNetwork(t, 1, 1, 2, convergenceWeights)
	r := rand.New(rand.NewSource(2))

	const iterations = 1000
	var recent float64
	for i := 0; i < iterations; i++ {
		seq, exp := lagged(r, 2)
		cost := net.TrainOneSequence(seq, exp, 0.01)
		if math.IsNaN(cost) || math.IsInf(cost, 0) {
			t.Fatalf("Iteration %d: cost is not finite (%v)", i, cost)
		}

		if i >= iterations-100 {
			recent += cost
		}
	}

	// always outputting zero would cost about 1/6 per supervised step
	if recent /= 100; recent >= 0.15 {
		t.Errorf("Expected average cost < 0.15 over the last 100 iterations, got %v", recent)
	}
}
