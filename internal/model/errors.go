package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
)

// ValidationError reports an input field outside its allowed range.
// Values are never clamped: an out-of-range input aborts the calculation.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// UnknownNatureError is returned for a nature name missing from the nature table.
type UnknownNatureError struct {
	Name string
}

func (e *UnknownNatureError) Error() string {
	return fmt.Sprintf("unknown nature %q", e.Name)
}

// UnknownTypeError is returned for a type name outside the 18 known types.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q", e.Name)
}

// DomainError guards the formula against values that validation should
// already have excluded (non-positive stats, non-positive HP).
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// IsInputError reports whether err was caused by caller input
// (validation, unknown nature/type/species/move) rather than an internal fault.
func IsInputError(err error) bool {
	var (
		ve *ValidationError
		ne *UnknownNatureError
		te *UnknownTypeError
	)
	return errors.As(err, &ve) || errors.As(err, &ne) || errors.As(err, &te) ||
		errors.Is(err, ErrUnknownSpecies) || errors.Is(err, ErrUnknownMove)
}
