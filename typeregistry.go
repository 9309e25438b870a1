package ecs

import "reflect"

// TypeRegistry is the Go stand-in for the compile-time type-list machinery
// of the system this package is modeled on (meta::TypeList / meta::IndexOf
// / meta::TypeAt). Go generics cannot enumerate a variadic type pack at
// compile time, so the list is built once, at Manager construction, from an
// ordered list of ComponentDefs, and every generic entry point resolves
// its type argument against it with a single map lookup.
type TypeRegistry struct {
	defs    []ComponentDef
	indexOf map[reflect.Type]int
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// NewTypeRegistry builds a registry from an ordered, duplicate-free list of
// ComponentDefs (see Def). It panics if N exceeds MaxComponentTypes: the
// component mask is a fixed 64 bits and this is the one constraint the spec
// asks implementations to reject outright rather than degrade gracefully.
func NewTypeRegistry(defs ...ComponentDef) *TypeRegistry {
	if len(defs) > MaxComponentTypes {
		panic(OutOfRangeError{Index: len(defs), Bound: MaxComponentTypes + 1})
	}
	idx := make(map[reflect.Type]int, len(defs))
	for i, d := range defs {
		if _, dup := idx[d.rtype]; dup {
			panic(InvariantViolationError{Reason: "duplicate type " + d.rtype.String() + " in component type list"})
		}
		idx[d.rtype] = i
	}
	return &TypeRegistry{defs: defs, indexOf: idx}
}

// Size returns N, the number of registered component types.
func (r *TypeRegistry) Size() int { return len(r.defs) }

// At returns the type registered at index i.
func (r *TypeRegistry) At(i int) reflect.Type { return r.defs[i].rtype }

// IndexOf returns the type index of t, or (-1, false) if t is not
// registered.
func (r *TypeRegistry) IndexOf(t reflect.Type) (int, bool) {
	i, ok := r.indexOf[t]
	if !ok {
		return -1, false
	}
	return i, true
}

// Contains reports whether t is registered.
func (r *TypeRegistry) Contains(t reflect.Type) bool {
	_, ok := r.indexOf[t]
	return ok
}

// indexOfT resolves T's type index, panicking with InvalidTypeError if T
// was never registered. Used internally by every generic accessor.
func indexOfT[T any](r *TypeRegistry) int {
	t := typeOf[T]()
	i, ok := r.indexOf[t]
	if !ok {
		panic(InvalidTypeError{Type: t})
	}
	return i
}
