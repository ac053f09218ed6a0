// Package workerpool provides bounded concurrent processing utilities.
package workerpool

import (
	"context"
	"fmt"
	"sync"
)

// Result pairs a work item with the outcome of processing it.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Map runs fn over items with at most workerCount concurrent calls and returns one
// Result per item, in input order. A failing item does not stop the others. Items
// not started before ctx is canceled report ctx.Err(). A panic in fn is recovered
// and reported as that item's error.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	if len(items) == 0 {
		return results
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				item := items[idx]
				if err := ctx.Err(); err != nil {
					results[idx] = Result[T, R]{Item: item, Err: err}
					continue
				}
				results[idx] = call(ctx, item, fn)
			}
		}()
	}

	for idx := range items {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[T, R]) {
	res.Item = item
	defer func() {
		if r := recover(); r != nil {
			var zero R
			res.Value = zero
			res.Err = fmt.Errorf("panic: %v", r)
		}
	}()
	res.Value, res.Err = fn(ctx, item)
	return res
}
