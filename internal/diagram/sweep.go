package diagram

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sweep builds one diagram per multiplier, sharing the rest of base.
// Results keep the order of multipliers. The first failure cancels the
// remaining builds.
func Sweep(ctx context.Context, base Config, multipliers []int) ([]*Diagram, error) {
	results := make([]*Diagram, len(multipliers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, k := range multipliers {
		i, k := i, k // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			cfg := base
			cfg.Multiplier = k
			d, err := Build(cfg)
			if err != nil {
				return err
			}

			slog.Debug("sweep diagram built", "multiplier", k, "modulus", cfg.Modulus, "orbits", len(d.Orbits))
			results[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
