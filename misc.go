package recurrent

import (
	"math"
	"sort"
)

// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		// rounds to 0 if a number is < 0.5, 1 if > 0.5. Tanh reduces the value to (0, 1)
		if math.Round(0.5*(1+math.Tanh(outs[i]-0.5))) != targets[i] {
			return false
		}
	}

	return true
}

// for use in CorrectHighest()
type sortable struct {
	values  []float64
	indexes []int
}

func (s sortable) Len() int {
	return len(s.values)
}
func (s sortable) Less(i, j int) bool {
	return s.values[i] > s.values[j]
}
func (s sortable) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.indexes[i], s.indexes[j] = s.indexes[j], s.indexes[i]
}

// just returns whether or not the largest value in each is the same
//
// neither slice is modified
func CorrectHighest(outs, targets []float64) bool {
	if len(outs) == 0 {
		return false
	}

	indexes := make([]int, len(outs))
	for i := range indexes {
		indexes[i] = i
	}

	copyOfIndexes := make([]int, len(outs))
	copy(copyOfIndexes, indexes)

	o := sortable{append([]float64(nil), outs...), indexes}
	t := sortable{append([]float64(nil), targets...), copyOfIndexes}

	sort.Stable(o)
	sort.Stable(t)

	return o.indexes[0] == t.indexes[0]
}

// Within returns a function that satisfies TrainArgs.IsCorrect, reporting outputs as correct if
// every one is within tolerance of its target.
func Within(tolerance float64) func([]float64, []float64) bool {
	return func(outs, targets []float64) bool {
		for i := range outs {
			if math.Abs(outs[i]-targets[i]) > tolerance {
				return false
			}
		}

		return true
	}
}

// returns a function that satisfies TrainArgs.RunCondition
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// returns a function that satisfies TrainArgs.SendStatus
// 'frequency' is in units of iterations
//
// this function is self-explanatory from viewing the source
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}

// returns a function that satisfies TrainArgs.ShouldTest. Testing is done every 'frequency'
// iterations, including the first.
func TestEvery(frequency int) func(int) bool {
	return Every(frequency)
}
