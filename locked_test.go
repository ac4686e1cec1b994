package bsink_test

import (
	"context"
	"sync"
	"testing"

	"github.com/creachadair/bsink"
	"github.com/creachadair/mds/mtest"
	"github.com/fortytw2/leaktest"
)

func TestLocked(t *testing.T) {
	defer leaktest.Check(t)()

	ctx := context.Background()

	// The delegate runs with the wrapper's lock held, so it may append to the
	// record without further synchronization.
	var got []int
	b := bsink.Synchronized(bsink.BufferLast(bsink.Func[int](func(_ context.Context, v int) error {
		got = append(got, v)
		return nil
	})))

	// Run several goroutines contending to accept values through the same
	// buffer. This gives the race detector something to push against.
	const numTasks = 8
	const numOps = 100

	var wg sync.WaitGroup
	for i := range numTasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range numOps {
				if err := b.Accept(ctx, i*numOps+j); err != nil {
					t.Errorf("Accept: unexpected error: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	if err := bsink.Flush(ctx, b); err != nil {
		t.Errorf("Flush: unexpected error: %v", err)
	}

	// Every accepted value must be delivered exactly once: one displacement
	// per accept after the first, plus the final flush.
	if len(got) != numTasks*numOps {
		t.Errorf("Delivered %d values, want %d", len(got), numTasks*numOps)
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if seen[v] {
			t.Errorf("Value %d delivered more than once", v)
		}
		seen[v] = true
	}
}

func TestLockedNil(t *testing.T) {
	mtest.MustPanicf(t, func() { bsink.Synchronized[int](nil) },
		"expected Synchronized(nil) to panic")
}
