package ecs

import "reflect"

// ComponentDef binds a concrete component type T into the type-erased
// machinery the component store uses for its dynamic-index ("ByIndex")
// operations. Go has no way to allocate a typed []wrapper[T] slice, or
// append a zero-valued wrapper[T] to one, from a bare reflect.Type without
// either code generation or unsafe tricks; ComponentDef instead captures
// those operations as closures at the one point where T is still known
// statically — the call to Def[T]() — which is the "type-id table plus a
// set of per-type vtable entries" alternative the spec's Design Notes
// describe for hosts without variadic generics.
type ComponentDef struct {
	rtype       reflect.Type
	newBucket   func(capacity int) any
	appendOwner func(bucket any, owner EntityID) any
	removeOwner func(bucket any, owner EntityID) (any, bool)
	existsOwner func(bucket any, owner EntityID) bool
	bucketLen   func(bucket any) int
	clearBucket func(bucket any) any
}

// Def builds the ComponentDef for component type T. Pass one per type, in
// the order they should be assigned type indices, to NewManager.
func Def[T any]() ComponentDef {
	return ComponentDef{
		rtype: typeOf[T](),
		newBucket: func(capacity int) any {
			b := make([]wrapper[T], 0, capacity)
			return &b
		},
		appendOwner: func(bucket any, owner EntityID) any {
			b := bucket.(*[]wrapper[T])
			*b = append(*b, wrapper[T]{owner: owner})
			return b
		},
		removeOwner: func(bucket any, owner EntityID) (any, bool) {
			b := bucket.(*[]wrapper[T])
			for i := range *b {
				if (*b)[i].owner == owner {
					last := len(*b) - 1
					(*b)[i] = (*b)[last]
					*b = (*b)[:last]
					return b, true
				}
			}
			return b, false
		},
		existsOwner: func(bucket any, owner EntityID) bool {
			b := bucket.(*[]wrapper[T])
			for i := range *b {
				if (*b)[i].owner == owner {
					return true
				}
			}
			return false
		},
		bucketLen: func(bucket any) int {
			b := bucket.(*[]wrapper[T])
			return len(*b)
		},
		clearBucket: func(bucket any) any {
			b := bucket.(*[]wrapper[T])
			*b = (*b)[:0]
			return b
		},
	}
}
