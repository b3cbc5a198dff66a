package gars

import (
	"fmt"
)

// ErrInvalidGridID indicates an identifier that does not match a
// variant's grammar or carries a field outside its valid range.
//
// Variant names the grid system ("GARS", "ED-GARS", "GED-GARS");
// Reason is empty for plain grammar mismatches.
type ErrInvalidGridID struct {
	Variant string
	ID      string
	Reason  string
}

func (e *ErrInvalidGridID) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%q is not a valid %s grid ID", e.ID, e.Variant)
	}
	return fmt.Sprintf("%q is not a valid %s grid ID: %s", e.ID, e.Variant, e.Reason)
}

// ErrInvalidResolution indicates a resolution outside a variant's
// enumerated valid set.
type ErrInvalidResolution struct {
	Resolution int
	Valid      []int
}

func (e *ErrInvalidResolution) Error() string {
	return fmt.Sprintf("invalid resolution %d: only %v are allowed", e.Resolution, e.Valid)
}
