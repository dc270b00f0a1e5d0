package recurrent

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrRegisterNilReturn = Error{"Registered value is nil"}
	ErrRegisterDuplicate = Error{"Name is already registered"}
	ErrNotRegistered     = Error{"Name is not registered"}

	// ErrStepOutOfOrder is panicked by *Layer.Forward when given a step index that skips past
	// the end of the recorded history.
	ErrStepOutOfOrder = Error{"Step index is out of order"}

	// ErrSequenceTooLong is panicked when a backward or update pass is asked to cover more steps
	// than the forward pass recorded.
	ErrSequenceTooLong = Error{"Sequence length exceeds recorded history"}

	ErrEmptySequence = Error{"Sequence has no steps"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError results from a slice (or sequence) having a different length than the one
// required of it. Name describes what the slice was.
type SizeMismatchError struct {
	Expected, Got int
	Name          string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.Name, err.Expected, err.Got)
}
