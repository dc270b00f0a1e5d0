// Package hyperparams provides HyperParameters, values (such as the learning rate) that may change
// over the course of training.
package hyperparams

import (
	rc "github.com/sharnoff/recurrent"
)

func init() {
	list := map[string]func(float64) rc.HyperParameter{
		Constant(0).TypeString(): func(v float64) rc.HyperParameter { return Constant(v) },
		Step(0).TypeString():     func(v float64) rc.HyperParameter { return Step(v) },
	}

	for s, f := range list {
		err := rc.RegisterHyperParameter(s, f)
		if err != nil {
			panic(err.Error())
		}
	}
}
