package copybook

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Lookup is the outcome of one request of a batch.
type Lookup struct {
	Request    Request
	Resolution Resolution
	Found      bool
}

// ResolveAll resolves reqs concurrently with at most jobs lookups in flight
// (jobs <= 0 means one per request). Results keep the order of reqs. The
// only error is the context's.
func (r *Resolver) ResolveAll(ctx context.Context, reqs []Request, jobs int) ([]Lookup, error) {
	out := make([]Lookup, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, req := range reqs {
		i, req := i, req // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, ok := r.ResolveRequest(req)
			out[i] = Lookup{Request: req, Resolution: res, Found: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
