package hyperparams

type step struct {
	Iter int
	Val  float64
}

type stepper []step

// Step returns a HyperParameter that starts at the given value, changing to new values at
// iterations given by Add.
func Step(base float64) *stepper {
	s := make([]step, 1)

	s[0] = step{0, base}

	st := stepper(s)
	return &st
}

// Add adds a step to the HyperParameter, so that from the given iteration onwards (until the next
// step) it will have the given value. Steps must be added in increasing order of iteration.
func (s *stepper) Add(iter int, value float64) *stepper {
	*s = append(*s, step{iter, value})
	return s
}

func (s *stepper) TypeString() string {
	return "step"
}

func (s *stepper) Value(iter int) float64 {
	sl := []step(*s)
	for i := 1; i < len(sl); i++ {
		if sl[i].Iter > iter {
			return sl[i-1].Val
		}
	}

	return sl[len(sl)-1].Val
}
