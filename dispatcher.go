package ecs

// chunkRange is a half-open [start, end) slice of entity-array indices
// assigned to one worker during a parallel dispatch.
type chunkRange struct{ start, end int }

// chunkRanges splits [0, n) into at most workers contiguous ranges.
func chunkRanges(n, workers int) []chunkRange {
	if workers <= 0 {
		workers = 1
	}
	if n == 0 {
		return nil
	}
	size := (n + workers - 1) / workers
	if size == 0 {
		size = 1
	}
	ranges := make([]chunkRange, 0, workers)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		ranges = append(ranges, chunkRange{start: start, end: end})
	}
	return ranges
}

// dispatch runs body over every index in [0, n), inline if n is at most
// Config.ParallelThreshold and fanned out across pool above it. It does
// not return until every chunk (inline or parallel) has completed, per the
// requirement that ApplySystem* never returns work still in flight.
func dispatch(n int, pool *ThreadPool, body func(start, end int)) {
	if n <= Config.ParallelThreshold {
		body(0, n)
		return
	}

	ranges := chunkRanges(n, pool.Size())
	futures := make([]*Future[struct{}], 0, len(ranges))
	for _, r := range ranges {
		r := r
		futures = append(futures, AddTaskSimple(pool, func() {
			body(r.start, r.end)
		}))
	}
	for _, f := range futures {
		f.Get()
	}
}

// ApplySystem1 runs fn over every entity carrying a T0 component.
func ApplySystem1[T0 any](m *Manager, fn func(*T0)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var req componentMask
	req = maskSetBit(req, indexOfT[T0](m.registry))
	dispatch(len(m.ids), m.pool, func(start, end int) {
		for i := start; i < end; i++ {
			if !maskMatches(m.masks[i], req) {
				continue
			}
			c0, ok := TryFind[T0](m.store, m.ids[i])
			if ok {
				fn(c0)
			}
		}
	})
}

// ApplySystem2 runs fn over every entity carrying both T0 and T1.
func ApplySystem2[T0, T1 any](m *Manager, fn func(*T0, *T1)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var req componentMask
	req = maskSetBit(req, indexOfT[T0](m.registry))
	req = maskSetBit(req, indexOfT[T1](m.registry))

	dispatch(len(m.ids), m.pool, func(start, end int) {
		for i := start; i < end; i++ {
			if !maskMatches(m.masks[i], req) {
				continue
			}
			c0, c1, ok := Tuple2[T0, T1](m.store, m.ids[i])
			if ok {
				fn(c0, c1)
			}
		}
	})
}

// ApplySystem3 runs fn over every entity carrying T0, T1 and T2.
func ApplySystem3[T0, T1, T2 any](m *Manager, fn func(*T0, *T1, *T2)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var req componentMask
	req = maskSetBit(req, indexOfT[T0](m.registry))
	req = maskSetBit(req, indexOfT[T1](m.registry))
	req = maskSetBit(req, indexOfT[T2](m.registry))

	dispatch(len(m.ids), m.pool, func(start, end int) {
		for i := start; i < end; i++ {
			if !maskMatches(m.masks[i], req) {
				continue
			}
			c0, c1, c2, ok := Tuple3[T0, T1, T2](m.store, m.ids[i])
			if ok {
				fn(c0, c1, c2)
			}
		}
	})
}

// ApplySystem4 runs fn over every entity carrying T0, T1, T2 and T3.
func ApplySystem4[T0, T1, T2, T3 any](m *Manager, fn func(*T0, *T1, *T2, *T3)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var req componentMask
	req = maskSetBit(req, indexOfT[T0](m.registry))
	req = maskSetBit(req, indexOfT[T1](m.registry))
	req = maskSetBit(req, indexOfT[T2](m.registry))
	req = maskSetBit(req, indexOfT[T3](m.registry))

	dispatch(len(m.ids), m.pool, func(start, end int) {
		for i := start; i < end; i++ {
			if !maskMatches(m.masks[i], req) {
				continue
			}
			c0, c1, c2, c3, ok := Tuple4[T0, T1, T2, T3](m.store, m.ids[i])
			if ok {
				fn(c0, c1, c2, c3)
			}
		}
	})
}

// ApplySystemView1 runs fn over every entity carrying a T0 component,
// passing the entity's view alongside its component for systems that also
// need the id, flags or mask.
func ApplySystemView1[T0 any](m *Manager, fn func(EntityView, *T0)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var req componentMask
	req = maskSetBit(req, indexOfT[T0](m.registry))
	dispatch(len(m.ids), m.pool, func(start, end int) {
		for i := start; i < end; i++ {
			if !maskMatches(m.masks[i], req) {
				continue
			}
			c0, ok := TryFind[T0](m.store, m.ids[i])
			if ok {
				fn(EntityView{mgr: m, index: i}, c0)
			}
		}
	})
}

// ApplySystemView2 runs fn over every entity carrying both T0 and T1,
// alongside its view.
func ApplySystemView2[T0, T1 any](m *Manager, fn func(EntityView, *T0, *T1)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var req componentMask
	req = maskSetBit(req, indexOfT[T0](m.registry))
	req = maskSetBit(req, indexOfT[T1](m.registry))

	dispatch(len(m.ids), m.pool, func(start, end int) {
		for i := start; i < end; i++ {
			if !maskMatches(m.masks[i], req) {
				continue
			}
			c0, c1, ok := Tuple2[T0, T1](m.store, m.ids[i])
			if ok {
				fn(EntityView{mgr: m, index: i}, c0, c1)
			}
		}
	})
}

// ApplySystemViewOnly runs fn over every live entity, passing only its
// view. Useful for systems that operate purely on flags (e.g. lifetime or
// despawn bookkeeping) with no component dependency.
func ApplySystemViewOnly(m *Manager, fn func(EntityView)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dispatch(len(m.ids), m.pool, func(start, end int) {
		for i := start; i < end; i++ {
			fn(EntityView{mgr: m, index: i})
		}
	})
}

// ApplySystem1With runs fn over every entity carrying a T0 component,
// passing extra through to every call. extra is typically a per-dispatch
// value such as a frame delta time that every system invocation needs but
// that isn't itself a component.
func ApplySystem1With[T0, E any](m *Manager, extra E, fn func(*T0, E)) {
	ApplySystem1[T0](m, func(c0 *T0) {
		fn(c0, extra)
	})
}

// ApplySystem2With is the two-component counterpart of ApplySystem1With.
func ApplySystem2With[T0, T1, E any](m *Manager, extra E, fn func(*T0, *T1, E)) {
	ApplySystem2[T0, T1](m, func(c0 *T0, c1 *T1) {
		fn(c0, c1, extra)
	})
}
