package recurrent

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Datum is a single step of a sequence: the inputs to the Network at that step, and the expected
// outputs.
type Datum struct {
	// Inputs must have the same size as that of the Network's inputs.
	Inputs []float64

	// Outputs is the expected output of the Network at this step. Providing nil (or length 0)
	// signifies that the outputs at this step are not significant.
	Outputs []float64
}

// Sequence is a series of steps that are run through the Network together, starting from a
// zeroed state.
type Sequence []Datum

// Split separates the sequence into its inputs and expected outputs, in the form taken by
// *Network.TrainOneSequence. Steps without expected outputs are given nil targets.
func (s Sequence) Split() (inputs, targets [][]float64) {
	inputs = make([][]float64, len(s))
	targets = make([][]float64, len(s))
	for i, d := range s {
		inputs[i] = d.Inputs
		if len(d.Outputs) != 0 {
			targets[i] = d.Outputs
		}
	}

	return
}

// Fits indicates whether or not the dimensions of every step in the Sequence match those of the
// Network, allowing it to be used for training or testing.
func (s Sequence) Fits(net *Network) bool {
	for _, d := range s {
		if len(d.Inputs) != net.InputSize() || (len(d.Outputs) != 0 && len(d.Outputs) != net.OutputSize()) {
			return false
		}
	}

	return len(s) != 0
}

// SequenceSupplier is the method of providing datasets to the Network, either for training or
// testing.
type SequenceSupplier interface {
	// Get returns the next sequence, given the current iteration.
	Get(int) (Sequence, error)

	// DoneTesting indicates whether or not the testing process has finished, given the number
	// of sequences tested so far. This will only be called if the SequenceSupplier is actually
	// used for providing testing data.
	DoneTesting(int) bool
}

// Result is how the progress of training or testing is sent back.
type Result struct {
	// The iteration the result is being sent before
	Iteration int

	// Average cost per output per step, from the Network's CostFunction
	Cost float64

	// The fraction of supervised steps correct, as per IsCorrect from TrainArgs
	// 0 → 1
	Correct float64

	// The result is either from a test or a status update
	IsTest bool
}

// TrainArgs holds the arguments to *Network.Train. Only TrainData, RunCondition and
// LearningRate are required.
type TrainArgs struct {
	TrainData SequenceSupplier

	// TestData is the source of cross-validation data while training. This can be nil if
	// ShouldTest is also nil.
	TestData SequenceSupplier

	// ShouldTest indicates whether or not testing should be done before the current iteration.
	ShouldTest func(int) bool

	// SendStatus indicates whether or not to send back general information about the status of
	// the training since the last time 'true' was returned. SendStatus can be left nil to
	// represent an unconditional false.
	//
	// 'true' will be ignored on iteration 0.
	SendStatus func(int) bool

	// RunCondition will be called at each successive iteration to determine if training should
	// continue. Training will stop if 'false' is returned.
	RunCondition func(int) bool

	// LearningRate gives the learning rate for each iteration.
	LearningRate HyperParameter

	// IsCorrect returns whether or not the network outputs are correct, given the target
	// outputs. In order, it is given: outputs; targets.
	//
	// The length of both provided slices is guaranteed to be equal.
	IsCorrect func([]float64, []float64) bool

	// Update is how testing and status updates are returned. If both ShouldTest and SendStatus
	// are nil, then Update can also be left nil.
	Update func(Result)
}

// Train trains the Network on one sequence per iteration, until args.RunCondition returns false.
//
// A cost that is not finite does not stop training; it is logged as a warning and reported like
// any other.
func (net *Network) Train(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if args.Update == nil {
			args.Update = func(r Result) {}
		}

		if args.TrainData == nil {
			return errors.Errorf("TrainData is nil")
		}

		if args.TestData == nil {
			if args.ShouldTest != nil {
				return errors.Errorf("TestData is nil but ShouldTest is not")
			}
			args.ShouldTest = func(i int) bool { return false }
		} else if args.ShouldTest == nil {
			args.ShouldTest = func(i int) bool { return false }
		}

		if args.SendStatus == nil {
			args.SendStatus = func(i int) bool { return false }
		}

		if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.LearningRate == nil {
			return errors.Errorf("LearningRate is nil")
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(a, b []float64) bool { return false }
		}
	}

	var statusCost, statusCorrect float64
	var statusSize, statusSteps int

	for iter := 0; ; iter++ {
		if args.SendStatus(iter) && iter != 0 {
			r := Result{Iteration: iter}
			if statusSize != 0 {
				r.Cost = statusCost / float64(statusSize)
			}
			if statusSteps != 0 {
				r.Correct = statusCorrect / float64(statusSteps)
			}

			net.log.WithFields(logrus.Fields{
				"iteration": iter,
				"cost":      r.Cost,
				"correct":   r.Correct,
			}).Info("Training status")

			args.Update(r)

			statusCost, statusCorrect = 0, 0
			statusSize, statusSteps = 0, 0
		}

		if args.ShouldTest(iter) {
			cost, correct, err := net.Test(args.TestData, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "Testing on iteration %d failed", iter)
			}

			net.log.WithFields(logrus.Fields{
				"iteration": iter,
				"cost":      cost,
				"correct":   correct,
			}).Info("Test results")

			args.Update(Result{
				Iteration: iter,
				Cost:      cost,
				Correct:   correct,
				IsTest:    true,
			})
		}

		if !args.RunCondition(iter) {
			return nil
		}

		seq, err := args.TrainData.Get(iter)
		if err != nil {
			return errors.Wrapf(err, "Failed to get training data on iteration %d", iter)
		} else if !seq.Fits(net) {
			return errors.Errorf("Training data for iteration %d does not fit Network", iter)
		}

		inputs, targets := seq.Split()
		cost := net.TrainOneSequence(inputs, targets, args.LearningRate.Value(iter))
		if math.IsNaN(cost) || math.IsInf(cost, 0) {
			net.log.WithField("iteration", iter).Warn("Cost is not finite")
		}

		// outputs are from before the update, alongside the cost
		for step, out := range net.Outputs() {
			if targets[step] == nil {
				continue
			}

			if args.IsCorrect(out, targets[step]) {
				statusCorrect++
			}
			statusSteps++
		}

		statusCost += cost
		statusSize++
	}
}

// Test runs each sequence from data through the Network without training, until
// data.DoneTesting returns true. It returns the average cost per output per step, and the
// fraction of supervised steps judged correct by isCorrect (which may be nil).
func (net *Network) Test(data SequenceSupplier, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if data == nil {
		return 0, 0, errors.Errorf("Test data is nil")
	}

	if isCorrect == nil {
		isCorrect = func(a, b []float64) bool { return false }
	}

	cf := net.Output.CostFunction()

	var totalCost, totalCorrect float64
	var testSize, steps int

	for ; !data.DoneTesting(testSize); testSize++ {
		seq, err := data.Get(testSize)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get test sequence %d", testSize)
		} else if !seq.Fits(net) {
			return 0, 0, errors.Errorf("Test sequence %d does not fit Network dimensions", testSize)
		}

		inputs, targets := seq.Split()
		outs := net.Predict(inputs)

		var seqCost float64
		for step := range outs {
			if targets[step] == nil {
				continue
			}

			seqCost += cf.Cost(outs[step], targets[step])
			if isCorrect(outs[step], targets[step]) {
				totalCorrect++
			}
			steps++
		}

		totalCost += seqCost / float64(len(seq))
	}

	var avgCost, avgCorrect float64
	if testSize != 0 {
		avgCost = totalCost / float64(testSize)
	}
	if steps != 0 {
		avgCorrect = totalCorrect / float64(steps)
	}

	return avgCost, avgCorrect, nil
}

type internalSupplier struct {
	get         func(int) (Sequence, error)
	doneTesting func(int) bool
}

func (s internalSupplier) Get(iter int) (Sequence, error) {
	return s.get(iter)
}

func (s internalSupplier) DoneTesting(n int) bool {
	return s.doneTesting(n)
}

// SeqData converts a set of sequences to a SequenceSupplier, which can be used for training or
// testing. Training cycles through the sequences in order; testing goes through each once.
//
// N.B.: SeqData does not check if the data fit a certain network; that will be done during
// training/testing
func SeqData(dataset []Sequence) (SequenceSupplier, error) {
	if len(dataset) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	}

	for i := range dataset {
		if len(dataset[i]) == 0 {
			return nil, errors.Errorf("sequence %d in dataset has no steps", i)
		}
	}

	return internalSupplier{
		get: func(iter int) (Sequence, error) {
			return dataset[iter%len(dataset)], nil
		},
		doneTesting: func(n int) bool {
			return n >= len(dataset)
		},
	}, nil
}

// Generator converts a function producing sequences into a SequenceSupplier. When used for
// testing, testSize sequences will be generated.
func Generator(gen func(iter int) Sequence, testSize int) (SequenceSupplier, error) {
	if gen == nil {
		return nil, NilArgError{"Generator function"}
	} else if testSize < 0 {
		return nil, errors.Errorf("testSize must be >= 0 (%d)", testSize)
	}

	return internalSupplier{
		get: func(iter int) (Sequence, error) {
			return gen(iter), nil
		},
		doneTesting: func(n int) bool {
			return n >= testSize
		},
	}, nil
}
