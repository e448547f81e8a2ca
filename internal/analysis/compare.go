package analysis

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/tanlut/internal/config"
	"github.com/san-kum/tanlut/internal/lut"
	"github.com/san-kum/tanlut/internal/tan"
)

type Result struct {
	Name      string
	Meta      lut.Metadata
	Saturated int
	Summary   Summary
}

// Compare generates one table per config and sweeps each one from 0 to
// limitDeg in 1° steps. Every goroutine owns its own table; results are
// sorted by name.
func Compare(ctx context.Context, cfgs map[string]config.Config, limitDeg float64) ([]Result, error) {
	names := make([]string, 0, len(cfgs))
	for name := range cfgs {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)

	for i, name := range names {
		i, name := i, name
		cfg := cfgs[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			tab, err := lut.Generate(cfg)
			if err != nil {
				return err
			}
			f, err := tan.Build(tab)
			if err != nil {
				return err
			}

			results[i] = Result{
				Name:      name,
				Meta:      tab.Meta,
				Saturated: tab.Saturated(),
				Summary:   Summarize(Sweep(f, 0, limitDeg, 1)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
