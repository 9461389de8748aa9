package tmerrors

import (
	"errors"
	"fmt"
)

// Kind identifies one of the core's named error kinds.
type Kind int

const (
	// DuplicateResource: two descriptors share an id within a group.
	DuplicateResource Kind = iota
	// HeterogeneousGroup: a TileGroup/ObjectGroup mixes incompatible member kinds.
	HeterogeneousGroup
	// MissingResource: an element references a resource id not present in its
	// loaded resources.
	MissingResource
	// EmptyDistribution: weighted choice was attempted over a zero-total
	// distribution.
	EmptyDistribution
	// ShapeMismatch: assign was attempted across incompatible cache dimensions.
	ShapeMismatch
	// AssetLoadFailed: an image path could not be resolved.
	AssetLoadFailed
	// BuildAborted: an element signaled inability to complete.
	BuildAborted
	// InvariantViolated: an internal bug — an operation would have broken a
	// cache invariant after the guard checks already passed. Should never
	// surface outside of the core itself.
	InvariantViolated
)

// String returns the kind's name, used in error messages.
func (k Kind) String() string {
	switch k {
	case DuplicateResource:
		return "DuplicateResource"
	case HeterogeneousGroup:
		return "HeterogeneousGroup"
	case MissingResource:
		return "MissingResource"
	case EmptyDistribution:
		return "EmptyDistribution"
	case ShapeMismatch:
		return "ShapeMismatch"
	case AssetLoadFailed:
		return "AssetLoadFailed"
	case BuildAborted:
		return "BuildAborted"
	case InvariantViolated:
		return "InvariantViolated"
	default:
		return "Unknown"
	}
}

// Error is a typed, optionally-wrapped error tagged with one of the Kind
// values above.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an unwrapped error of the given kind.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an unwrapped error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind wrapping cause.
func Wrap(kind Kind, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is a *Error of the given kind, anywhere in its
// wrap chain.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}
