package ecs

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// poolTask is one unit of work. infinite tasks are re-enqueued after every
// run instead of being discarded, giving callers a way to schedule
// perpetual background work (e.g. a streaming ingest loop) on the same
// pool used for one-shot system dispatch.
type poolTask struct {
	run      func()
	infinite bool
}

// ThreadPool is a fixed-size goroutine pool pulling poolTasks off a single
// shared, mutex-guarded queue. It mirrors the ThreadPool/SafeQueue pair in
// the system this package is modeled on: a sync.Mutex plus sync.Cond
// stands in for the original's mutex/condition_variable wait-notify loop,
// and a sync.WaitGroup replaces the join-all-threads call on halt.
type ThreadPool struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []poolTask
	wg    sync.WaitGroup

	cancels []*atomic.Bool
	size    int
	idle    int
	pending int

	halted       atomic.Bool
	haltInfinite atomic.Bool
}

// NewThreadPool constructs and starts a pool with the given number of
// workers. workers <= 0 means runtime.GOMAXPROCS(0).
func NewThreadPool(workers int) *ThreadPool {
	p := &ThreadPool{}
	p.cond = sync.NewCond(&p.mu)
	p.Resize(workers)
	return p
}

// Resize halts the current worker set (draining whatever is already
// running) and relaunches with the new size.
func (p *ThreadPool) Resize(workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p.mu.Lock()
	if p.size > 0 {
		for _, c := range p.cancels {
			c.Store(true)
		}
		p.mu.Unlock()
		p.cond.Broadcast()
		p.wg.Wait()
		p.mu.Lock()
	}

	cancels := make([]*atomic.Bool, workers)
	for i := range cancels {
		cancels[i] = &atomic.Bool{}
	}
	p.cancels = cancels
	p.size = workers
	p.halted.Store(false)
	p.haltInfinite.Store(false)
	p.mu.Unlock()

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(cancels[i])
	}
}

func (p *ThreadPool) worker(cancel *atomic.Bool) {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !cancel.Load() {
			p.idle++
			p.cond.Wait()
			p.idle--
		}
		if len(p.queue) == 0 && cancel.Load() {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.pending--
		p.mu.Unlock()

		task.run()

		if task.infinite && !cancel.Load() && !p.haltInfinite.Load() {
			p.mu.Lock()
			p.queue = append(p.queue, task)
			p.pending++
			p.mu.Unlock()
			p.cond.Signal()
		}
	}
}

// Halt stops every worker. When drain is true, workers finish every task
// already queued before exiting; when false, the queue is discarded and
// workers stop as soon as their current task returns. Halt blocks until
// every worker has exited.
func (p *ThreadPool) Halt(drain bool) {
	p.mu.Lock()
	if !drain {
		p.queue = nil
		p.pending = 0
	}
	for _, c := range p.cancels {
		c.Store(true)
	}
	p.mu.Unlock()

	p.cond.Broadcast()
	p.wg.Wait()
	p.halted.Store(true)
}

// HaltInfinite stops perpetual tasks from being re-enqueued after their
// current run, without otherwise touching the pool. One-shot tasks keep
// being serviced normally.
func (p *ThreadPool) HaltInfinite() {
	p.haltInfinite.Store(true)
}

// Restart relaunches a halted pool with the given worker count.
func (p *ThreadPool) Restart(workers int) {
	p.Resize(workers)
}

// IdleCount returns the number of workers currently blocked waiting for
// work.
func (p *ThreadPool) IdleCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle
}

// PendingCount returns the number of tasks currently queued but not yet
// picked up by a worker.
func (p *ThreadPool) PendingCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

// Size returns the number of worker goroutines.
func (p *ThreadPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.size
}

// Halted reports whether the pool's workers have been stopped via Halt.
func (p *ThreadPool) Halted() bool {
	return p.halted.Load()
}

// enqueue appends t to the queue and wakes a worker, reporting whether the
// task was actually queued. Submission while the pool is halted is a no-op:
// it reports false instead of queuing for a Restart that may never come.
func (p *ThreadPool) enqueue(t poolTask) bool {
	p.mu.Lock()
	if p.halted.Load() {
		p.mu.Unlock()
		return false
	}
	p.queue = append(p.queue, t)
	p.pending++
	p.mu.Unlock()
	p.cond.Signal()
	return true
}

// AddTask schedules fn to run once on the pool and returns a Future for
// its result. Submission while the pool is halted is a no-op: the returned
// Future is an empty handle that never resolves.
func AddTask[R any](p *ThreadPool, fn func() R) *Future[R] {
	fut := newFuture[R]()
	p.enqueue(poolTask{run: func() {
		fut.resolve(fn())
	}})
	return fut
}

// AddTaskSimple schedules fn, which returns nothing, to run once on the
// pool. The returned Future resolves once fn has completed, for callers
// that only need to wait for completion. Submission while the pool is
// halted is a no-op; see AddTask.
func AddTaskSimple(p *ThreadPool, fn func()) *Future[struct{}] {
	return AddTask(p, func() struct{} {
		fn()
		return struct{}{}
	})
}

// AddInfiniteTask schedules fn to run repeatedly on the pool until
// HaltInfinite or Halt is called. Submission while the pool is already
// halted is a no-op.
func (p *ThreadPool) AddInfiniteTask(fn func()) {
	p.enqueue(poolTask{run: fn, infinite: true})
}
