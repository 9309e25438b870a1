package ecs

// QueryMatching returns the ids of every live entity whose component mask
// contains every bit set in required (the external, lsb-first uint64
// form). Up to Config.ParallelThreshold entities it scans inline; above
// it, each chunk accumulates its matches in a local slice and appends them
// to a shared result queue in one locked call, avoiding a shared lock on
// the per-match append path.
func QueryMatching(m *Manager, required uint64) []EntityID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	req := maskFromBits(required)
	n := len(m.ids)

	if n <= Config.ParallelThreshold {
		out := make([]EntityID, 0, n)
		for i := 0; i < n; i++ {
			if maskMatches(m.masks[i], req) {
				out = append(out, m.ids[i])
			}
		}
		return out
	}

	result := newSafeQueue[EntityID]()
	dispatch(n, m.pool, func(start, end int) {
		local := make([]EntityID, 0, end-start)
		for i := start; i < end; i++ {
			if maskMatches(m.masks[i], req) {
				local = append(local, m.ids[i])
			}
		}
		if len(local) > 0 {
			result.appendSlice(local)
		}
	})
	return result.Drain()
}

// CountMatching returns the number of live entities whose component mask
// contains every bit set in required, without allocating a result slice.
func CountMatching(m *Manager, required uint64) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	req := maskFromBits(required)
	count := 0
	for i := range m.masks {
		if maskMatches(m.masks[i], req) {
			count++
		}
	}
	return count
}
