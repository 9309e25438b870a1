package ecs

// Future is a one-shot, channel-backed handle to a task's result, returned
// by AddTask. It mirrors the promise/future pair the thread pool this
// package is modeled on returns from addTask, using a buffered channel
// instead of a condition variable since Go's channels already give us the
// wait/notify semantics for free.
type Future[T any] struct {
	ch chan T
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{ch: make(chan T, 1)}
}

func (f *Future[T]) resolve(v T) {
	f.ch <- v
}

// Get blocks until the task that produced f has run, then returns its
// result. Get may only be called once per Future.
func (f *Future[T]) Get() T {
	return <-f.ch
}

// Done returns a channel that is sent to exactly once, when the result is
// ready, for callers that want to select on several futures at once.
func (f *Future[T]) Done() <-chan T {
	return f.ch
}
