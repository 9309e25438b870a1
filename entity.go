package ecs

import "strconv"

// EntityID is an opaque identifier. Ids are issued by a Manager's own
// monotonic counter and are never reused by that Manager, even after
// deletion; two Managers can issue the same id.
type EntityID uint64

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
