package diagram

import (
	"errors"
	"fmt"
)

// Domain errors for diagram configuration.
var (
	// ErrInvalidModulus indicates a modulus below 2.
	ErrInvalidModulus = errors.New("diagram: modulus must be at least 2")

	// ErrInvalidMultiplier indicates a negative multiplier.
	ErrInvalidMultiplier = errors.New("diagram: multiplier must be non-negative")

	// ErrEmptyPalette indicates a palette with no colours.
	ErrEmptyPalette = errors.New("diagram: palette has no colors")
)

type Kind int

const (
	InvalidModulus Kind = iota + 1
	InvalidMultiplier
	EmptyPalette
)

func (k Kind) String() string {
	switch k {
	case InvalidModulus:
		return "invalid modulus"
	case InvalidMultiplier:
		return "invalid multiplier"
	case EmptyPalette:
		return "empty palette"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidModulus:
		return ErrInvalidModulus
	case InvalidMultiplier:
		return ErrInvalidMultiplier
	case EmptyPalette:
		return ErrEmptyPalette
	default:
		return nil
	}
}

// Error reports a rejected Config along with the offending value.
type Error struct {
	Kind  Kind
	Value int
}

func newError(kind Kind, value int) *Error {
	return &Error{Kind: kind, Value: value}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (got %d)", e.Kind.sentinel(), e.Value)
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf returns the Kind of a diagram error, or 0 when err is not one.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
