package recurrent

// record stores a copy of values at hist[step], overwriting if that step has already been seen
// and appending if step is exactly one past the end. Any other step panics with
// ErrStepOutOfOrder.
func record(hist [][]float64, step int, values []float64) [][]float64 {
	switch {
	case step >= 0 && step < len(hist):
		if len(hist[step]) != len(values) {
			hist[step] = make([]float64, len(values))
		}
		copy(hist[step], values)
		return hist
	case step == len(hist):
		v := make([]float64, len(values))
		copy(v, values)
		return append(hist, v)
	default:
		panic(ErrStepOutOfOrder)
	}
}

// grow extends hist with zeroed slices of the given size until it holds at least n of them.
func grow(hist [][]float64, n, size int) [][]float64 {
	for len(hist) < n {
		hist = append(hist, make([]float64, size))
	}

	return hist
}
