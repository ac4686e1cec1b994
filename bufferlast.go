package bsink

import (
	"context"

	"github.com/creachadair/mds/value"
)

// A Last is a [Buffered] sink that retains only the most recently accepted
// value. Accepting a value displaces the previously-retained value (if any)
// to the delegate; the retained value itself is delivered only when a newer
// value arrives or the buffer is flushed. Values reach the delegate in accept
// order, each at most once.
//
// This makes bursts of updates cheap for callers that only care about the
// latest state, such as periodic offset or position commits: most Accept
// calls store the value and return, and the delegate is only invoked with
// values that have already been superseded, or on an explicit flush.
//
// A Last is not safe for concurrent use. The caller must ensure that Accept
// and Flush are serialized, either by confining the buffer to a single
// goroutine or with an external lock (see [Synchronized]). A value still
// buffered when the Last is abandoned is discarded, never delivered.
type Last[T any] struct {
	delegate Sink[T]
	pending  value.Maybe[T]
}

// BufferLast constructs a [Last] that buffers the single most recent value
// accepted and forwards superseded values to delegate.
// It panics if delegate == nil.
func BufferLast[T any](delegate Sink[T]) *Last[T] {
	if delegate == nil {
		panic("delegate is nil")
	}
	return &Last[T]{delegate: delegate}
}

// Accept buffers v. If a previous value was buffered, it is first delivered
// to the delegate, and Accept blocks until that delivery completes or ctx
// ends. Accept reports the error from the delegate, if any; v is buffered
// regardless, replacing the previous value, whose delivery is not retried.
func (b *Last[T]) Accept(ctx context.Context, v T) error {
	defer func() { b.pending = value.Just(v) }()
	if prev, ok := b.pending.GetOK(); ok {
		return b.delegate.Accept(ctx, prev)
	}
	return nil
}

// Flush delivers the buffered value, if there is one, to the delegate after
// applying f to it. The buffer is left empty whether or not delivery
// succeeds, so a value whose delivery fails is not delivered again.
// Flush implements the corresponding method of the [Buffered] interface.
func (b *Last[T]) Flush(ctx context.Context, f func(T) T) error {
	v, ok := b.pending.GetOK()
	if !ok {
		return nil
	}
	defer func() { b.pending = value.Absent[T]() }()
	return b.delegate.Accept(ctx, f(v))
}
