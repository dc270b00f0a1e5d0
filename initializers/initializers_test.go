package initializers

import (
	"math"
	"testing"
)

func TestSeedRepeatable(t *testing.T) {
	gen := func() []float64 {
		w := Random(Uniform()).Weights()
		vs := make([]float64, 10)
		for i := range vs {
			vs[i] = w(i, 0)
		}
		return vs
	}

	Seed(42)
	first := gen()
	Seed(42)
	second := gen()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Value %d differs after reseeding: %v != %v", i, first[i], second[i])
		}
	}
}

func TestUniformBounds(t *testing.T) {
	Seed(1)

	// reversed bounds are swapped
	u := Uniform().Bounds(0.1, 0)
	for i := 0; i < 1000; i++ {
		if v := u.Gen(); v < 0 || v >= 0.1 {
			t.Fatalf("Value %v outside of [0, 0.1)", v)
		}
	}
}

func TestTruncNormal(t *testing.T) {
	Seed(2)

	g := TruncNormal().Trunc(1.5)
	g.Mean(1).SD(0.5)
	for i := 0; i < 1000; i++ {
		if v := g.Gen(); math.Abs(v-1) > 0.75 {
			t.Fatalf("Value %v more than 1.5 standard deviations from the mean", v)
		}
	}
}

func TestVarianceScaling(t *testing.T) {
	Seed(3)

	// sd = sqrt(2 / 8) = 0.5, truncated at 2 standard deviations
	w := He().Weights(8, 4)
	for i := 0; i < 1000; i++ {
		if v := w(i, 0); math.Abs(v) > 1 {
			t.Fatalf("Value %v outside of [-1, 1]", v)
		}
	}
}

func TestConstant(t *testing.T) {
	c := Constant(0.3)
	if c.Weights()(2, 5) != 0.3 || c.Biases()(1) != 0.3 {
		t.Error("Expected every value from Constant(0.3) to be 0.3")
	}
}

func TestSetDefault(t *testing.T) {
	defer SetDefault_Lazy("uniform-upper", 1)

	if err := SetDefault("not-a-value", 1); err == nil {
		t.Error("Expected error for unknown name")
	}
	if err := SetDefault("uniform-upper", math.NaN()); err == nil {
		t.Error("Expected error for NaN")
	}

	if err := SetDefault("uniform-upper", -0.5); err != nil {
		t.Fatal(err)
	}

	Seed(4)
	u := Uniform()
	for i := 0; i < 100; i++ {
		if v := u.Gen(); v < -1 || v >= -0.5 {
			t.Fatalf("Value %v outside of [-1, -0.5)", v)
		}
	}
}
