// Package activations provides the element-wise functions applied by the layers of a
// recurrent.Network. All of them are stateless values and may be shared freely.
package activations

import (
	rc "github.com/sharnoff/recurrent"
)

// DefaultLeak is the leaky factor of the "leaky-relu" Activation found through the registry.
const DefaultLeak float64 = 0.01

func init() {
	list := []rc.Activation{
		LeakyReLU(DefaultLeak),
		Identity(),
		Logistic(),
		Softplus(),
		Softsign(),
		Tanh(),
		ReLU(),
		ELU(),
	}

	for _, a := range list {
		if err := rc.RegisterActivation(a); err != nil {
			panic(err)
		}
	}
}
