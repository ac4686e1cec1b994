package bsink

import (
	"context"
	"sync"
)

// A Locked wraps a [Buffered] sink in a mutex so that it is safe for
// concurrent use by multiple goroutines. Note that this changes the blocking
// behavior of the wrapped sink: while one goroutine is blocked inside the
// underlying Accept or Flush, all other callers wait on the lock, and a
// caller's ctx does not interrupt its wait for the lock, only the delegate
// call made once the lock is held.
type Locked[T any] struct {
	μ sync.Mutex
	b Buffered[T]
}

// Synchronized constructs a [Locked] wrapper around b.
// It panics if b == nil.
func Synchronized[T any](b Buffered[T]) *Locked[T] {
	if b == nil {
		panic("buffered sink is nil")
	}
	return &Locked[T]{b: b}
}

// Accept calls Accept on the underlying sink while holding the lock.
func (s *Locked[T]) Accept(ctx context.Context, v T) error {
	s.μ.Lock()
	defer s.μ.Unlock()
	return s.b.Accept(ctx, v)
}

// Flush calls Flush on the underlying sink while holding the lock.
func (s *Locked[T]) Flush(ctx context.Context, f func(T) T) error {
	s.μ.Lock()
	defer s.μ.Unlock()
	return s.b.Flush(ctx, f)
}
