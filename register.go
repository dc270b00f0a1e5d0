package recurrent

import (
	"sync"

	"github.com/pkg/errors"
)

// The registry allows Activations, CostFunctions and HyperParameters to be referred to by name,
// e.g. from command-line flags. The subpackages register their types when they are imported.
var registry = struct {
	sync.RWMutex

	activations map[string]Activation
	costFuncs   map[string]func() CostFunction
	hyperParams map[string]func(float64) HyperParameter
}{
	activations: make(map[string]Activation),
	costFuncs:   make(map[string]func() CostFunction),
	hyperParams: make(map[string]func(float64) HyperParameter),
}

// RegisterActivation makes the Activation available under its TypeString. Because Activations
// are stateless, the same value is handed out by every call to GetActivation.
func RegisterActivation(a Activation) error {
	if a == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	name := a.TypeString()
	if _, ok := registry.activations[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register activation %q", name)
	}

	registry.activations[name] = a
	return nil
}

// RegisterCostFunction makes the CostFunction returned by f available under the given name.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if f == nil || f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.costFuncs[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register cost function %q", name)
	}

	registry.costFuncs[name] = f
	return nil
}

// RegisterHyperParameter makes the HyperParameter returned by f available under the given name.
// The argument to f is the base value of the HyperParameter.
func RegisterHyperParameter(name string, f func(float64) HyperParameter) error {
	if f == nil || f(0) == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.hyperParams[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register hyperparameter %q", name)
	}

	registry.hyperParams[name] = f
	return nil
}

// GetActivation returns the Activation registered under the given name.
func GetActivation(name string) (Activation, error) {
	registry.RLock()
	defer registry.RUnlock()

	a, ok := registry.activations[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "Activation %q", name)
	}

	return a, nil
}

// GetCostFunction returns a new CostFunction of the type registered under the given name.
func GetCostFunction(name string) (CostFunction, error) {
	registry.RLock()
	defer registry.RUnlock()

	f, ok := registry.costFuncs[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "Cost function %q", name)
	}

	return f(), nil
}

// GetHyperParameter returns a new HyperParameter of the type registered under the given name,
// starting from the given base value.
func GetHyperParameter(name string, base float64) (HyperParameter, error) {
	registry.RLock()
	defer registry.RUnlock()

	f, ok := registry.hyperParams[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "Hyperparameter %q", name)
	}

	return f(base), nil
}
