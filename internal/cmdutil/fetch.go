package cmdutil

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds parallel requests for multi-ID commands.
const maxConcurrentFetches = 4

// FetchEach fetches every ID concurrently and returns the results in the
// order the IDs were given. Duplicate IDs are fetched once. The first
// failure cancels the remaining requests and is returned.
func FetchEach[T any](ctx context.Context, ids []string, fetch func(ctx context.Context, id string) (*T, error)) ([]*T, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	results := make([]*T, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, id := range unique {
		g.Go(func() error {
			item, err := fetch(gctx, id)
			if err != nil {
				return err
			}
			results[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
