package chromepdf

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ConvertAll runs every request through conv with at most limit conversions
// in flight (no bound when limit <= 0). Outcomes are returned in request
// order. A failed request does not stop the others.
func ConvertAll(ctx context.Context, conv Converter, reqs []Request, limit int) []Outcome {
	outcomes := make([]Outcome, len(reqs))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for idx, req := range reqs {
		idx, req := idx, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[idx] = Outcome{Err: err}
				return nil
			}
			var o Outcome
			if req.Mode == Base64Mode {
				o.Value, o.Err = conv.ConvertToBase64(ctx, req.HTML)
			} else {
				o.Value, o.Err = conv.ConvertToFile(ctx, req.HTML, req.Output)
			}
			outcomes[idx] = o
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}
