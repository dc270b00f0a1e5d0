package recurrent

import (
	"testing"
)

func TestRecordOverwriteOrAppend(t *testing.T) {
	var hist [][]float64

	hist = record(hist, 0, []float64{1, 2})
	hist = record(hist, 1, []float64{3, 4})
	if len(hist) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(hist))
	}

	src := []float64{5, 6}
	hist = record(hist, 0, src)
	if len(hist) != 2 {
		t.Errorf("Overwrite changed length to %d", len(hist))
	}
	if hist[0][0] != 5 || hist[0][1] != 6 {
		t.Errorf("Expected [5 6] at step 0, got %v", hist[0])
	}
	if hist[1][0] != 3 {
		t.Errorf("Step 1 was modified: %v", hist[1])
	}

	// recorded values are copies
	src[0] = 100
	if hist[0][0] != 5 {
		t.Errorf("Recorded slice aliases its source")
	}
}

func TestRecordOutOfOrder(t *testing.T) {
	hist := record(nil, 0, []float64{1})

	for _, step := range []int{2, -1} {
		func() {
			defer func() {
				if r := recover(); r != ErrStepOutOfOrder {
					t.Errorf("step %d: expected panic %v, got %v", step, ErrStepOutOfOrder, r)
				}
			}()
			record(hist, step, []float64{1})
		}()
	}
}

func TestGrow(t *testing.T) {
	hist := grow(nil, 3, 2)
	if len(hist) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(hist))
	}
	for i := range hist {
		if len(hist[i]) != 2 {
			t.Errorf("Entry %d has length %d, want 2", i, len(hist[i]))
		}
	}

	hist[0][0] = 7
	hist = grow(hist, 2, 2)
	if len(hist) != 3 || hist[0][0] != 7 {
		t.Errorf("grow to a smaller length modified the history")
	}
}
