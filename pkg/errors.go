package datamodel

import "fmt"

// ErrUnknownContainer represents a lookup of a container type that was
// never registered.
type ErrUnknownContainer struct {
	Name string
}

func (e *ErrUnknownContainer) Error() string {
	return fmt.Sprintf("unknown container type %q", e.Name)
}

// ErrNotStruct represents a field walk over a container that is not a
// struct record.
type ErrNotStruct struct {
	Container string
}

func (e *ErrNotStruct) Error() string {
	return fmt.Sprintf("container %q is not a struct record", e.Container)
}

// ErrUnknownUnit represents a unit tag with no corresponding Unit value.
type ErrUnknownUnit struct {
	Tag string
}

func (e *ErrUnknownUnit) Error() string {
	return fmt.Sprintf("unknown unit tag %q", e.Tag)
}

// ErrUnitMismatch represents an operation combining quantities with
// different units.
type ErrUnitMismatch struct {
	Left  Unit
	Right Unit
}

func (e *ErrUnitMismatch) Error() string {
	return fmt.Sprintf("unit mismatch: %q vs %q", e.Left.String(), e.Right.String())
}
