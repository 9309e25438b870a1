package ecs

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// InvalidTypeError is returned when a call references a component type that
// was not registered with the Manager's type list.
type InvalidTypeError struct {
	Type reflect.Type
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("ecs: type %v is not a registered component", e.Type)
}

// NotFoundError is returned when a lookup by (entity id, component type)
// has no match.
type NotFoundError struct {
	EntityID EntityID
	Type     reflect.Type
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("ecs: entity %d has no component of type %v", e.EntityID, e.Type)
}

// OutOfRangeError is returned when a dynamic type index exceeds the
// registered component count, or when capacity is exhausted.
type OutOfRangeError struct {
	Index int
	Bound int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("ecs: index %d out of range [0, %d)", e.Index, e.Bound)
}

// InvariantViolationError marks a state that should be structurally
// impossible (duplicate component insert, parallel-array length mismatch).
// Whether this is panicked or returned is governed by Config.DebugInvariants,
// except in NewTypeRegistry, which always panics on a duplicate type.
type InvariantViolationError struct {
	Reason string
}

func (e InvariantViolationError) Error() string {
	return fmt.Sprintf("ecs: invariant violated: %s", e.Reason)
}

// invariantViolation records reason as an InvariantViolationError. When
// Config.DebugInvariants is set it panics immediately, traced via bark, so
// the failure surfaces at the point it happened instead of surviving as a
// returned error; otherwise it returns the error for the caller to handle.
func invariantViolation(reason string) error {
	err := InvariantViolationError{Reason: reason}
	if Config.DebugInvariants {
		panic(bark.AddTrace(err))
	}
	return err
}
