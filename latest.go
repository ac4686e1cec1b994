package bsink

import "context"

// A Latest is a single-slot [Sink] shared by a producer and a consumer.
// The producer calls Accept to make a value available, and the consumer calls
// Ready to obtain a channel which delivers the most recently-accepted value.
//
// Accepting a value does not block: if a value is already buffered and not
// yet consumed, it is discarded and replaced by the new one, so the consumer
// always observes the latest value available at the time it reads.
//
// A Latest supports a single producer. Use a [Collector] instead when every
// value must be delivered, or a [Last] buffer when superseded values should
// still reach a downstream sink.
type Latest[T any] struct {
	ch chan T
}

// NewLatest constructs a new empty Latest.
func NewLatest[T any]() *Latest[T] { return &Latest[T]{ch: make(chan T, 1)} }

// Accept buffers v for the consumer, replacing any buffered value that has
// not yet been consumed. Accept does not block and always returns nil; the
// ctx is ignored.
func (l *Latest[T]) Accept(ctx context.Context, v T) error {
	for {
		select {
		case l.ch <- v:
			return nil
		default:
		}
		select {
		case <-l.ch: // discard the stale value
		default:
		}
	}
}

// Ready returns a channel that delivers a value when one is available. Once
// a value is received, further reads on the channel will block until another
// value is accepted.
func (l *Latest[T]) Ready() <-chan T { return l.ch }
