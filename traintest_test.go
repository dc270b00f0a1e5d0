package recurrent_test

import (
	"math"
	"testing"

	rc "github.com/sharnoff/recurrent"
	"github.com/sharnoff/recurrent/hyperparams"
)

func zeroTask() rc.Sequence {
	return rc.Sequence{
		{Inputs: []float64{1}, Outputs: []float64{0}},
		{Inputs: []float64{0.5}, Outputs: []float64{0}},
	}
}

func TestSequenceSplit(t *testing.T) {
	seq := rc.Sequence{
		{Inputs: []float64{1}},
		{Inputs: []float64{2}, Outputs: []float64{3}},
	}

	inputs, targets := seq.Split()
	if len(inputs) != 2 || len(targets) != 2 {
		t.Fatalf("Expected 2 steps, got %d inputs and %d targets", len(inputs), len(targets))
	}
	if targets[0] != nil {
		t.Errorf("Expected nil target for a step without outputs, got %v", targets[0])
	}
	if inputs[1][0] != 2 || targets[1][0] != 3 {
		t.Errorf("Expected step 1 to be (2, 3), got (%v, %v)", inputs[1], targets[1])
	}
}

func TestSequenceFits(t *testing.T) {
	net := buildTestNetwork(t, 1, 1, 1, convergenceWeights)

	tests := []struct {
		name string
		seq  rc.Sequence
		fits bool
	}{
		{"valid", zeroTask(), true},
		{"unsupervised step", rc.Sequence{{Inputs: []float64{1}}}, true},
		{"empty", rc.Sequence{}, false},
		{"wrong inputs", rc.Sequence{{Inputs: []float64{1, 2}, Outputs: []float64{0}}}, false},
		{"wrong outputs", rc.Sequence{{Inputs: []float64{1}, Outputs: []float64{0, 0}}}, false},
	}

	for _, test := range tests {
		if fits := test.seq.Fits(net); fits != test.fits {
			t.Errorf("%s: expected Fits to be %v, got %v", test.name, test.fits, fits)
		}
	}
}

func TestSuppliers(t *testing.T) {
	if _, err := rc.SeqData(nil); err == nil {
		t.Error("Expected error from SeqData with no sequences")
	}
	if _, err := rc.SeqData([]rc.Sequence{zeroTask(), {}}); err == nil {
		t.Error("Expected error from SeqData with an empty sequence")
	}
	if _, err := rc.Generator(nil, 1); err == nil {
		t.Error("Expected error from Generator with nil function")
	}

	data, err := rc.SeqData([]rc.Sequence{zeroTask(), zeroTask()[:1]})
	if err != nil {
		t.Fatal(err)
	}
	if seq, _ := data.Get(3); len(seq) != 1 {
		t.Errorf("Expected SeqData to cycle back to sequence 1, got %d steps", len(seq))
	}
	if data.DoneTesting(1) || !data.DoneTesting(2) {
		t.Error("Expected SeqData testing to finish after 2 sequences")
	}

	gen, err := rc.Generator(func(iter int) rc.Sequence { return zeroTask() }, 3)
	if err != nil {
		t.Fatal(err)
	}
	if gen.DoneTesting(2) || !gen.DoneTesting(3) {
		t.Error("Expected Generator testing to finish after 3 sequences")
	}
}

func TestTrainArgs(t *testing.T) {
	net := buildTestNetwork(t, 1, 1, 1, convergenceWeights)
	data, err := rc.SeqData([]rc.Sequence{zeroTask()})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args rc.TrainArgs
	}{
		{"no data", rc.TrainArgs{RunCondition: rc.TrainUntil(1), LearningRate: hyperparams.Constant(0.1)}},
		{"no run condition", rc.TrainArgs{TrainData: data, LearningRate: hyperparams.Constant(0.1)}},
		{"no learning rate", rc.TrainArgs{TrainData: data, RunCondition: rc.TrainUntil(1)}},
		{"testing without data", rc.TrainArgs{
			TrainData:    data,
			ShouldTest:   rc.TestEvery(1),
			RunCondition: rc.TrainUntil(1),
			LearningRate: hyperparams.Constant(0.1),
		}},
	}

	for _, test := range tests {
		if err := net.Train(test.args); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}

	misfit, err := rc.SeqData([]rc.Sequence{{{Inputs: []float64{1, 1}}}})
	if err != nil {
		t.Fatal(err)
	}
	err = net.Train(rc.TrainArgs{
		TrainData:    misfit,
		RunCondition: rc.TrainUntil(1),
		LearningRate: hyperparams.Constant(0.1),
	})
	if err == nil {
		t.Error("Expected error for training data that doesn't fit")
	}
}

func TestTrain(t *testing.T) {
	net := buildTestNetwork(t, 1, 1, 1, convergenceWeights)
	data, err := rc.SeqData([]rc.Sequence{zeroTask()})
	if err != nil {
		t.Fatal(err)
	}

	var status, tests []rc.Result
	err = net.Train(rc.TrainArgs{
		TrainData:    data,
		TestData:     data,
		ShouldTest:   rc.TestEvery(25),
		SendStatus:   rc.Every(10),
		RunCondition: rc.TrainUntil(50),
		LearningRate: hyperparams.Step(0.25).Add(40, 0.1),
		IsCorrect:    rc.Within(0.05),
		Update: func(r rc.Result) {
			if r.IsTest {
				tests = append(tests, r)
			} else {
				status = append(status, r)
			}
		},
	})
	if err != nil {
		t.Fatalf("Training failed: %v", err)
	}

	if len(status) != 5 {
		t.Errorf("Expected 5 status updates, got %d", len(status))
	}
	if len(tests) != 3 {
		t.Fatalf("Expected 3 tests, got %d", len(tests))
	}

	if tests[0].Iteration != 0 || tests[2].Iteration != 50 {
		t.Errorf("Expected tests on iterations 0 and 50, got %d and %d", tests[0].Iteration, tests[2].Iteration)
	}
	if tests[2].Cost >= tests[0].Cost {
		t.Errorf("Expected test cost to decrease: %v -> %v", tests[0].Cost, tests[2].Cost)
	}
	if tests[2].Correct != 1 {
		t.Errorf("Expected every output to be correct after training, got %v", tests[2].Correct)
	}
}

func TestTestMatchesForward(t *testing.T) {
	net := buildTestNetwork(t, 1, 1, 1, randomWeights(7))
	seq := zeroTask()

	data, err := rc.SeqData([]rc.Sequence{seq})
	if err != nil {
		t.Fatal(err)
	}

	cost, correct, err := net.Test(data, rc.Within(100))
	if err != nil {
		t.Fatal(err)
	}

	inputs, targets := seq.Split()
	total, _ := net.Forward(inputs, targets)
	if want := total / float64(len(seq)); math.Abs(cost-want) > 1e-12 {
		t.Errorf("Expected test cost %v, got %v", want, cost)
	}
	if correct != 1 {
		t.Errorf("Expected all outputs within 100 of their targets, got %v", correct)
	}

	if _, _, err := net.Test(nil, nil); err == nil {
		t.Error("Expected error from testing without data")
	}
}
