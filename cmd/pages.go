package cmd

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/dnsimple/dnsimple"
)

// MaxConcurrentPages bounds the page requests --all keeps in flight
const MaxConcurrentPages = 4

// pageFetcher returns one page of a paginated listing
type pageFetcher[T any] func(ctx context.Context, page int) (*dnsimple.PaginatedResponse[T], error)

// fetchAllPages fetches page 1, then the remaining pages concurrently.
// Records are returned in page order.
func fetchAllPages[T any](ctx context.Context, fetch pageFetcher[T]) ([]T, error) {
	first, err := fetch(ctx, 1)
	if err != nil {
		return nil, err
	}

	total := first.Pagination.TotalPages
	if total <= 1 {
		return first.Data, nil
	}

	pages := make([][]T, total)
	pages[0] = first.Data

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentPages)

	for page := 2; page <= total; page++ {
		g.Go(func() error {
			resp, err := fetch(ctx, page)
			if err != nil {
				return fmt.Errorf("failed to fetch page %d: %w", page, err)
			}
			// each goroutine owns its slot
			pages[page-1] = resp.Data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]T, 0, first.Pagination.TotalEntries)
	for _, data := range pages {
		records = append(records, data...)
	}
	return records, nil
}

// listPages fetches a single page, or every page when all is set
func listPages[T any](ctx context.Context, all bool, page int, fetch pageFetcher[T]) ([]T, *dnsimple.PaginationData, error) {
	if all {
		records, err := fetchAllPages(ctx, fetch)
		return records, nil, err
	}

	resp, err := fetch(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return resp.Data, &resp.Pagination, nil
}
