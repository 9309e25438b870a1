package ecs

// componentStore holds one bucket per registered component type. A bucket
// is a *[]wrapper[T] behind an any, created by the type's ComponentDef at
// construction time and reserved to the store's capacity, mirroring
// ComponentBuffer's per-type buckets in the system this package is modeled
// on.
type componentStore struct {
	registry *TypeRegistry
	buckets  []any
}

func newComponentStore(registry *TypeRegistry, capacity int) *componentStore {
	buckets := make([]any, registry.Size())
	for i, d := range registry.defs {
		buckets[i] = d.newBucket(capacity)
	}
	return &componentStore{registry: registry, buckets: buckets}
}

// bucketPtr resolves T's bucket. Panics with InvalidTypeError if T was
// never registered.
func bucketPtr[T any](s *componentStore) *[]wrapper[T] {
	i := indexOfT[T](s.registry)
	return s.buckets[i].(*[]wrapper[T])
}

// Bucket returns the raw backing slice for T, for callers that want to
// range over every wrapper directly.
func Bucket[T any](s *componentStore) []wrapper[T] {
	return *bucketPtr[T](s)
}

// TryFind returns a pointer to owner's T component and true, or (nil,
// false) if owner has none.
func TryFind[T any](s *componentStore, owner EntityID) (*T, bool) {
	b := bucketPtr[T](s)
	for i := range *b {
		if (*b)[i].owner == owner {
			return (*b)[i].Payload(), true
		}
	}
	return nil, false
}

// Find returns a pointer to owner's T component, panicking with
// NotFoundError if owner has none.
func Find[T any](s *componentStore, owner EntityID) *T {
	v, ok := TryFind[T](s, owner)
	if !ok {
		panic(NotFoundError{EntityID: owner, Type: typeOf[T]()})
	}
	return v
}

// FindOrCreate returns a pointer to owner's T component, appending a
// zero-valued one first if owner doesn't have one yet.
func FindOrCreate[T any](s *componentStore, owner EntityID) *T {
	if v, ok := TryFind[T](s, owner); ok {
		return v
	}
	return Add[T](s, owner, *new(T))
}

// Add appends a new T component owned by owner and returns a pointer to
// it. The caller is responsible for not adding a duplicate. The returned
// pointer is only valid until the bucket grows past its reserved capacity
// or a swap-remove reorders it; Managers reserve buckets to their entity
// capacity up front specifically so callers don't have to think about this
// during normal operation.
func Add[T any](s *componentStore, owner EntityID, value T) *T {
	b := bucketPtr[T](s)
	*b = append(*b, wrapper[T]{payload: value, owner: owner})
	return (*b)[len(*b)-1].Payload()
}

// AddByIndex appends a zero-valued component of the type at index idx,
// owned by owner. Used when an entity's initial mask is supplied as a
// runtime bitset rather than a list of static types.
func (s *componentStore) AddByIndex(idx int, owner EntityID) {
	d := s.registry.defs[idx]
	s.buckets[idx] = d.appendOwner(s.buckets[idx], owner)
}

// ExistsByIndex reports whether owner has a component of the type at index
// idx.
func (s *componentStore) ExistsByIndex(idx int, owner EntityID) bool {
	d := s.registry.defs[idx]
	return d.existsOwner(s.buckets[idx], owner)
}

// BucketSizeByIndex returns the number of components currently stored in
// the bucket at index idx.
func (s *componentStore) BucketSizeByIndex(idx int) int {
	d := s.registry.defs[idx]
	return d.bucketLen(s.buckets[idx])
}

// BucketSize returns the number of T components currently stored.
func BucketSize[T any](s *componentStore) int {
	return len(*bucketPtr[T](s))
}

// Remove deletes owner's T component via swap-remove, reporting whether one
// was found.
func Remove[T any](s *componentStore, owner EntityID) bool {
	b := bucketPtr[T](s)
	for i := range *b {
		if (*b)[i].owner == owner {
			last := len(*b) - 1
			(*b)[i] = (*b)[last]
			*b = (*b)[:last]
			return true
		}
	}
	return false
}

// RemoveByIndex deletes owner's component of the type at index idx via
// swap-remove, reporting whether one was found.
func (s *componentStore) RemoveByIndex(idx int, owner EntityID) bool {
	d := s.registry.defs[idx]
	bucket, found := d.removeOwner(s.buckets[idx], owner)
	s.buckets[idx] = bucket
	return found
}

// RemoveAllOwnedBy removes every component owned by owner, guided by mask
// (the entity's component mask) so only buckets the entity actually
// participates in are touched.
func (s *componentStore) RemoveAllOwnedBy(owner EntityID, mask uint64) {
	for i := 0; i < s.registry.Size(); i++ {
		if mask&(1<<uint(i)) != 0 {
			s.RemoveByIndex(i, owner)
		}
	}
}

// Size returns N, the number of registered component types (buckets).
func (s *componentStore) Size() int { return s.registry.Size() }

// Clear empties every bucket, retaining their underlying capacity.
func (s *componentStore) Clear() {
	for i, d := range s.registry.defs {
		s.buckets[i] = d.clearBucket(s.buckets[i])
	}
}

// Tuple2 assembles pointers to owner's T0 and T1 components. ok is false,
// and both pointers nil, if owner is missing either one.
func Tuple2[T0, T1 any](s *componentStore, owner EntityID) (p0 *T0, p1 *T1, ok bool) {
	p0, ok0 := TryFind[T0](s, owner)
	if !ok0 {
		return nil, nil, false
	}
	p1, ok1 := TryFind[T1](s, owner)
	if !ok1 {
		return nil, nil, false
	}
	return p0, p1, true
}

// Tuple3 assembles pointers to owner's T0, T1 and T2 components.
func Tuple3[T0, T1, T2 any](s *componentStore, owner EntityID) (p0 *T0, p1 *T1, p2 *T2, ok bool) {
	p0, p1, ok = Tuple2[T0, T1](s, owner)
	if !ok {
		return nil, nil, nil, false
	}
	p2, ok2 := TryFind[T2](s, owner)
	if !ok2 {
		return nil, nil, nil, false
	}
	return p0, p1, p2, true
}

// Tuple4 assembles pointers to owner's T0, T1, T2 and T3 components.
func Tuple4[T0, T1, T2, T3 any](s *componentStore, owner EntityID) (p0 *T0, p1 *T1, p2 *T2, p3 *T3, ok bool) {
	p0, p1, p2, ok = Tuple3[T0, T1, T2](s, owner)
	if !ok {
		return nil, nil, nil, nil, false
	}
	p3, ok3 := TryFind[T3](s, owner)
	if !ok3 {
		return nil, nil, nil, nil, false
	}
	return p0, p1, p2, p3, true
}
