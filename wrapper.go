package ecs

// wrapper binds one component payload to the entity that owns it. It is
// the unit actually stored in a bucket, mirroring ComponentWrapper<T> in
// the system this package is modeled on.
type wrapper[T any] struct {
	payload T
	owner   EntityID
}

// Payload returns a pointer to the wrapped value, allowing systems to
// mutate it in place.
func (w *wrapper[T]) Payload() *T { return &w.payload }

// Owner returns the entity id this wrapper belongs to.
func (w *wrapper[T]) Owner() EntityID { return w.owner }
