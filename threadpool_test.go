package ecs

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAddTaskResult(t *testing.T) {
	pool := NewThreadPool(4)
	defer pool.Halt(true)

	fut := AddTask(pool, func() int { return 21 * 2 })
	if got := fut.Get(); got != 42 {
		t.Fatalf("Future.Get() = %d, want 42", got)
	}
}

func TestAddTaskSimpleRunsOnce(t *testing.T) {
	pool := NewThreadPool(2)
	defer pool.Halt(true)

	var count int64
	futs := make([]*Future[struct{}], 0, 10)
	for i := 0; i < 10; i++ {
		futs = append(futs, AddTaskSimple(pool, func() {
			atomic.AddInt64(&count, 1)
		}))
	}
	for _, f := range futs {
		f.Get()
	}
	if got := atomic.LoadInt64(&count); got != 10 {
		t.Fatalf("count = %d, want 10", got)
	}
}

func TestHaltDrainCompletesQueuedWork(t *testing.T) {
	pool := NewThreadPool(1)

	var count int64
	for i := 0; i < 20; i++ {
		AddTaskSimple(pool, func() {
			atomic.AddInt64(&count, 1)
		})
	}
	pool.Halt(true)

	if got := atomic.LoadInt64(&count); got != 20 {
		t.Fatalf("count after drain halt = %d, want 20", got)
	}
	if !pool.Halted() {
		t.Fatal("Halted() = false after Halt()")
	}
}

func TestHaltInfiniteStopsPerpetualTask(t *testing.T) {
	pool := NewThreadPool(1)
	defer pool.Halt(true)

	var runs int64
	pool.AddInfiniteTask(func() {
		atomic.AddInt64(&runs, 1)
		time.Sleep(time.Millisecond)
	})

	time.Sleep(20 * time.Millisecond)
	pool.HaltInfinite()
	after := atomic.LoadInt64(&runs)

	time.Sleep(20 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got > after+1 {
		t.Fatalf("infinite task kept running after HaltInfinite: %d runs before, %d after", after, got)
	}
}

func TestRestartAfterHalt(t *testing.T) {
	pool := NewThreadPool(2)
	pool.Halt(true)
	if !pool.Halted() {
		t.Fatal("Halted() = false after Halt()")
	}

	pool.Restart(2)
	if pool.Halted() {
		t.Fatal("Halted() = true after Restart()")
	}
	defer pool.Halt(true)

	fut := AddTask(pool, func() int { return 7 })
	if got := fut.Get(); got != 7 {
		t.Fatalf("Future.Get() after restart = %d, want 7", got)
	}
}

func TestAddTaskAfterHaltIsNoOp(t *testing.T) {
	pool := NewThreadPool(2)
	pool.Halt(true)

	var ran int64
	fut := AddTaskSimple(pool, func() {
		atomic.AddInt64(&ran, 1)
	})

	select {
	case <-fut.Done():
		t.Fatal("Future resolved for a task submitted after Halt")
	default:
	}
	if got := atomic.LoadInt64(&ran); got != 0 {
		t.Fatalf("ran = %d, want 0 for a task submitted after Halt", got)
	}
}

func TestSafeQueuePushAppendMerge(t *testing.T) {
	q := newSafeQueue[int]()
	q.Push(1)
	q.Push(2)

	other := newSafeQueue[int]()
	other.Push(3)
	other.Push(4)
	q.Append(other)

	if q.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", q.Len())
	}
	if !other.Empty() {
		t.Fatal("source queue not empty after Append")
	}

	zipped := newSafeQueue[int]()
	zipped.Push(100)
	zipped.Push(200)
	zipped.Push(300)
	q.Merge(zipped)

	if q.Len() != 7 {
		t.Fatalf("Len() after merge = %d, want 7", q.Len())
	}
	if !zipped.Empty() {
		t.Fatal("source queue not empty after Merge")
	}

	got := q.Drain()
	want := []int{1, 100, 2, 200, 3, 300, 4}
	if len(got) != len(want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}
	if !q.Empty() {
		t.Fatal("queue not empty after Drain")
	}
}
