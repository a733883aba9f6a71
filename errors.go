package orrery

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateGeometry is returned when two distinct bodies occupy the
	// same position and the force between them is undefined.
	ErrDegenerateGeometry = errors.New("orrery: bodies share a position")
	// ErrInvalidConfig is returned for negative step counts and non-finite
	// time steps.
	ErrInvalidConfig = errors.New("orrery: invalid step configuration")
	// ErrInvalidBody is returned by NewBody for negative or non-finite
	// inputs.
	ErrInvalidBody = errors.New("orrery: invalid body")
)

// StepError records which step and which pair of bodies caused a step to
// be aborted.
type StepError struct {
	Step int
	I, J int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf(
		"step %d aborted on bodies %d and %d: %s", e.Step, e.I, e.J, e.Err,
	)
}

func (e *StepError) Unwrap() error { return e.Err }
