// Package workerpool runs bounded concurrent work over a slice.
package workerpool

import (
	"context"
	"sync"
)

// Process calls process for every item using workerCount goroutines. The
// first error cancels the remaining work, invokes onCancel once and is
// returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	return run(ctx, workerCount, len(items), func(ctx context.Context, i int) error {
		return process(ctx, items[i])
	}, onCancel)
}

// Map is Process for functions with a result. Results keep the order of
// items. On error the slice is still returned: it holds whatever fn returned
// for the items that ran, including the failing one, and zero values for the
// items skipped after cancellation.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	out := make([]R, len(items))
	err := run(ctx, workerCount, len(items), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		out[i] = r
		return err
	}, nil)
	return out, err
}

func run(ctx context.Context, workerCount, n int, fn func(context.Context, int) error, onCancel func()) error {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					continue
				}
				if err := fn(ctx, i); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
