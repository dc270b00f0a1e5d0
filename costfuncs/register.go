// Package costfuncs provides the CostFunctions used by recurrent.OutputLayer.
package costfuncs

import (
	rc "github.com/sharnoff/recurrent"
)

// DefaultHuberDelta is the δ of the "huber" CostFunction found through the registry.
const DefaultHuberDelta float64 = 1

func init() {
	list := map[string]func() rc.CostFunction{
		MSE().TypeString():          func() rc.CostFunction { return MSE() },
		Abs().TypeString():          func() rc.CostFunction { return Abs() },
		Huber(0).TypeString():       func() rc.CostFunction { return Huber(DefaultHuberDelta) },
		CrossEntropy().TypeString(): func() rc.CostFunction { return CrossEntropy() },
	}

	for s, f := range list {
		err := rc.RegisterCostFunction(s, f)
		if err != nil {
			panic(err.Error())
		}
	}
}
