package hyperparams

import (
	"testing"

	rc "github.com/sharnoff/recurrent"
)

func TestStep(t *testing.T) {
	s := Step(0.5).Add(10, 0.1).Add(20, 0.01)

	tests := []struct {
		iter int
		want float64
	}{
		{0, 0.5},
		{9, 0.5},
		{10, 0.1},
		{19, 0.1},
		{20, 0.01},
		{1000, 0.01},
	}

	for _, test := range tests {
		if v := s.Value(test.iter); v != test.want {
			t.Errorf("Iteration %d: expected %v, got %v", test.iter, test.want, v)
		}
	}
}

func TestConstant(t *testing.T) {
	var hp rc.HyperParameter = Constant(0.25)
	if hp.Value(0) != 0.25 || hp.Value(500) != 0.25 {
		t.Error("Expected Constant(0.25) to stay at 0.25")
	}
}

func TestRegistered(t *testing.T) {
	hp, err := rc.GetHyperParameter("constant", 0.05)
	if err != nil {
		t.Fatal(err)
	}

	if hp.TypeString() != "constant" || hp.Value(3) != 0.05 {
		t.Errorf("Expected constant hyperparameter of 0.05, got %s with %v", hp.TypeString(), hp.Value(3))
	}
}
