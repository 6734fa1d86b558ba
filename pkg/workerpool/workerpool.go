// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking process for each.
// The first error cancels the context and stops further work.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	return run(ctx, workerCount, items, process, true)
}

// ProcessAll runs process for every item even when some of them fail and
// returns the joined errors.
func ProcessAll[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	return run(ctx, workerCount, items, process, false)
}

func run[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	failFast bool,
) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) && len(items) > 0 {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						mu.Lock()
						errs = append(errs, err)
						mu.Unlock()
						if failFast {
							cancel()
							return
						}
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		if failFast {
			return errs[0]
		}
		return errors.Join(errs...)
	}
	// The parent context may have been canceled before every item was taken.
	return ctx.Err()
}
