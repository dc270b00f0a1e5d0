package main

import (
	"math/rand"

	rc "github.com/sharnoff/recurrent"
)

// task describes one of the toy problems: the shape of the Network it needs, the default
// hyperparameters, and where its sequences come from.
type task struct {
	stateSize    int
	learningRate float64
	iterations   int

	// gen returns the sequence for the given iteration
	gen func(r *rand.Rand, iter int) rc.Sequence
}

var tasks = map[string]task{
	// optimize the outputs towards zero for all inputs
	"zero": {
		stateSize:    1,
		learningRate: 0.25,
		iterations:   10,
		gen: func(r *rand.Rand, iter int) rc.Sequence {
			return rc.Sequence{
				{Inputs: []float64{1}, Outputs: []float64{0}},
				{Inputs: []float64{0.5}, Outputs: []float64{0}},
			}
		},
	},
	// output the current value in the sequence
	"echo": {
		stateSize:    1,
		learningRate: 0.05,
		iterations:   300,
		gen: func(r *rand.Rand, iter int) rc.Sequence {
			seq := make(rc.Sequence, 4)
			for i := range seq {
				v := []float64{1}
				if i%2 == 1 {
					v = []float64{0.5}
				}
				seq[i] = rc.Datum{Inputs: v, Outputs: v}
			}
			return seq
		},
	},
	// output the value from the previous step
	"lag1": {
		stateSize:    1,
		learningRate: 0.05,
		iterations:   1000,
		gen:          lagged(1),
	},
	// output the value from two steps ago
	"lag2": {
		stateSize:    2,
		learningRate: 0.01,
		iterations:   1000,
		gen:          lagged(2),
	},
}

// lagged returns a generator of random sequences of length 2 to 9 whose targets are the inputs
// from 'lag' steps earlier. The first 'lag' steps have no targets.
func lagged(lag int) func(*rand.Rand, int) rc.Sequence {
	return func(r *rand.Rand, iter int) rc.Sequence {
		seq := make(rc.Sequence, 2+r.Intn(8))
		for i := range seq {
			seq[i].Inputs = []float64{2*r.Float64() - 1}
			if i >= lag {
				seq[i].Outputs = seq[i-lag].Inputs
			}
		}
		return seq
	}
}
