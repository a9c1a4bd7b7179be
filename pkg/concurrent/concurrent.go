package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every item with at most workers goroutines in
// flight. The context passed to action is cancelled as soon as one action
// fails; ForEach returns the first error.
func ForEach[T any](ctx context.Context, items []T, workers int, action func(context.Context, T) error) error {
	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}
	for _, item := range items {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return action(ctx, item)
		})
	}
	return group.Wait()
}
