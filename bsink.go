// Package bsink defines sinks that accept values one at a time, possibly
// blocking the caller, and helpers for buffering values sent to a sink and
// flushing them on demand.
package bsink

import "context"

// A Sink accepts one value at a time. Accept may block the calling goroutine,
// for example to perform I/O or to wait for a receiver; blocking is governed
// by ctx, and if ctx ends while Accept is blocked it reports an error (for
// cancellation, the error from ctx). What else Accept does with the value is
// up to the implementation, as is any failure beyond cancellation.
type Sink[T any] interface {
	Accept(ctx context.Context, v T) error
}

// A Func is a function that implements the [Sink] interface by calling
// itself.
type Func[T any] func(context.Context, T) error

// Accept satisfies the [Sink] interface.
func (f Func[T]) Accept(ctx context.Context, v T) error { return f(ctx, v) }

// A Buffered is a [Sink] that may retain accepted values in a buffer before
// delivering them to an underlying sink. Buffered values must be flushed to
// ensure delivery.
type Buffered[T any] interface {
	Sink[T]

	// Flush delivers all currently-buffered values to the underlying sink in
	// the order they were accepted, applying f to each value as it is
	// delivered, and removes them from the buffer. Once a value has been
	// handed to the underlying sink it counts as flushed, even if delivery of
	// a later value in the same call fails. Flushing an empty buffer does
	// nothing without error. The transform f must be non-nil; use the
	// package-level [Flush] function to flush values unmodified.
	Flush(ctx context.Context, f func(T) T) error
}

// Flush flushes the values buffered in b without modifying them. It is
// shorthand for calling b.Flush with an identity transform.
func Flush[T any](ctx context.Context, b Buffered[T]) error {
	return b.Flush(ctx, func(v T) T { return v })
}
