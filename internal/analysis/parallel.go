package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AggregateParallel coerces records in contiguous shards across workers and
// then folds the parsed rows in input order, so the result is identical to
// Aggregate. workers <= 1 runs the sequential path.
func AggregateParallel(ctx context.Context, records []Record, opt Options, workers int) (*Aggregates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 1 || len(records) < 2 {
		return Aggregate(records, opt), nil
	}
	if workers > len(records) {
		workers = len(records)
	}
	rows := make([]parsedRow, len(records))
	size := (len(records) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(records); start += size {
		lo, hi := start, start+size
		if hi > len(records) {
			hi = len(records)
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				rows[i] = parseRow(records[i], opt.NumericColumns, opt.Fields)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := newAggregates(opt.NumericColumns)
	for _, row := range rows {
		agg.observe(row)
	}
	return agg, nil
}
