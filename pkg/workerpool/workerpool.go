// Package workerpool runs bounded fan-out over a slice of work items.
package workerpool

import (
	"context"
	"sync"
)

// Map applies fn to every item on at most workerCount goroutines and returns
// the results in input order. The first error cancels the remaining work and
// is returned; items never started leave their zero value in the result.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	tasks := make(chan int)
	errs := make(chan error, 1)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				res, err := fn(ctx, items[idx])
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					cancel()
					return
				}
				results[idx] = res
			}
		}()
	}

feed:
	for idx := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- idx:
		}
	}
	close(tasks)

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
