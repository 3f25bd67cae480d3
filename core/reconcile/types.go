package reconcile

import (
	"errors"
	"fmt"
)

// Discrepancy describes the comparison of one field between an authoritative
// entity and the value expected from its reference counterpart.
type Discrepancy struct {
	// Field is the checked field name (e.g. "materials").
	Field string `json:"field"`

	// Actual is the value currently held by the authoritative entity.
	Actual any `json:"actual"`

	// Expected is the reference-derived value after normalization.
	Expected any `json:"expected"`

	// Matched is true when both values are considered equal.
	Matched bool `json:"matched"`

	// Unresolved lists reference names that could not be converted to IDs.
	// They are left out of Expected.
	Unresolved []string `json:"unresolved,omitempty"`
}

var (
	// ErrNotFound is returned when an entity has no counterpart on the other side.
	ErrNotFound = errors.New("counterpart not found")

	// ErrDuplicateMatch is returned when more than one authoritative entity
	// points at the same reference entity.
	ErrDuplicateMatch = errors.New("duplicate counterpart match")
)

// TransportError is a retrieve or save failure that persisted after one retry.
// It aborts the remaining checks of the entity it was raised for.
type TransportError struct {
	Kind  string
	ID    int
	Field string
	Op    string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s #%d (field %s): %v", e.Op, e.Kind, e.ID, e.Field, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
