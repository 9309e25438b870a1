package ecs

// EntityView is a lightweight handle into a Manager's entity tables. It is
// the value systems receive when they ask for entity metadata (id, flags,
// mask) alongside components, instead of components alone. A view is only
// valid for the lifetime of the dispatch that produced it: Manager
// mutations that reorder the parallel arrays (DeleteEntity and friends)
// invalidate any view taken before the call.
type EntityView struct {
	mgr   *Manager
	index int
}

// ID returns the entity this view refers to.
func (v EntityView) ID() EntityID {
	return v.mgr.ids[v.index]
}

// Index returns the view's current slot in the Manager's parallel arrays.
func (v EntityView) Index() int {
	return v.index
}

// GetFlag reports whether behavior flag bit is set.
func (v EntityView) GetFlag(bit int) bool {
	return maskHasBit(v.mgr.flags[v.index], bit)
}

// SetFlag sets or clears behavior flag bit. Flags are metadata for systems
// (e.g. "asleep", "marked for respawn") and, unlike the component mask,
// carry no storage implication, so this never touches the component store.
func (v EntityView) SetFlag(bit int, val bool) {
	if val {
		v.mgr.flags[v.index] = maskSetBit(v.mgr.flags[v.index], bit)
	} else {
		v.mgr.flags[v.index] = maskClearBit(v.mgr.flags[v.index], bit)
	}
}

// Mask returns the entity's current component mask as the external uint64
// form (bit i set means the entity carries the component registered at
// type index i).
func (v EntityView) Mask() uint64 {
	return bitsFromMask(v.mgr.masks[v.index])
}
