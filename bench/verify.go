package bench

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-e1/demux"
)

// VerifyAll checks every strategy against the reference before any timing
// starts. Verifications are independent and run concurrently, at most
// GOMAXPROCS at a time. Every failure is reported in the joined error.
//
// Options are applied once per strategy; do not pass demux.WithSource with
// a shared reader.
func VerifyAll(ctx context.Context, strategies []demux.Demuxer, opts ...demux.VerifyOption) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	errs := make([]error, len(strategies))
	for i, s := range strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			errs[i] = demux.Verify(s, opts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
