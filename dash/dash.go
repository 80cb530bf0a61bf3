// Package dash resolves datasets for the chart rendering core: local files
// and HTTP stats endpoints, fetched concurrently ahead of a render pass.
package dash

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/guardflow/charts"
)

// FetchAll resolves every source concurrently and returns the datasets in
// source order. The first failure cancels the remaining fetches.
func FetchAll(ctx context.Context, logger *zap.Logger, sources ...DataSource) ([]charts.Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var (
		out      = make([]charts.Dataset, len(sources))
		grp, gtx = errgroup.WithContext(ctx)
	)
	for i, src := range sources {
		i, src := i, src
		grp.Go(func() error {
			ds, err := src.Fetch(gtx)
			if err != nil {
				logger.Error("dataset fetch failed",
					zap.String("source", src.Name()),
					zap.Error(err))
				return errors.Wrap(err, src.Name())
			}
			logger.Info("dataset fetched",
				zap.String("source", src.Name()),
				zap.Int("categories", len(ds.Categories)),
				zap.Int("series", len(ds.Series)))
			out[i] = ds
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
