// Package fanout runs one function over a slice with a worker limit and
// keeps each item's outcome at the item's index.
package fanout

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result is one item's outcome.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item, at most limit at a time (a limit below 1
// means 1), and blocks until all are settled. Items not yet started when
// ctx ends get ctx.Err() without calling fn. A panic in fn becomes that
// item's error.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))
	for i, item := range items {
		g.Go(func() error {
			results[i] = call(ctx, item, fn)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", p)}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
