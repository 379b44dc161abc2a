package route

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/search"
)

// MultiDestination runs one independent search per target over the shared,
// read-only graph g, at most limit at a time (limit < 1 means unbounded).
// Each search gets its own strategy from newStrategy and its own state.
//
// An unknown start is an error; unknown targets map to a no-path result. The
// first failing search cancels the rest.
func MultiDestination(
	ctx context.Context,
	g *core.Graph,
	start string,
	targets []string,
	newStrategy func() search.Strategy,
	limit int,
	opts ...search.Option,
) (map[string]search.Result, error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, translate(fmt.Errorf("%w: %q", core.ErrUnknownNode, start))
	}

	var (
		mu  sync.Mutex
		out = make(map[string]search.Result, len(targets))
	)
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for _, target := range targets {
		if !g.HasNode(target) {
			mu.Lock()
			out[target] = search.Result{Start: start, Goal: target, Path: search.NoPath()}
			mu.Unlock()
			continue
		}
		eg.Go(func() error {
			st, err := search.NewStepper(g, start, target, newStrategy(), opts...)
			if err != nil {
				return err
			}
			if _, err = st.Run(ctx); err != nil {
				return err
			}
			res, err := st.Result()
			if err != nil {
				return err
			}
			mu.Lock()
			out[target] = res
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// translate maps engine lookup failures onto route errors, keeping both in
// the chain.
func translate(err error) error {
	if errors.Is(err, core.ErrUnknownNode) && !errors.Is(err, ErrUnknownLocation) {
		return fmt.Errorf("%w: %w", ErrUnknownLocation, err)
	}

	return err
}
