package parser

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

// BatchItem pairs a package root with the outcome of parsing it.
type BatchItem struct {
	Path       string
	Result     Result
	ModuleType manifest.ModuleType
	Err        error
}

// ParseAll is the batch/parallel parsing entry point supplemented by
// SPEC_FULL.md: spec §5 states that "multiple parses may be executed
// in parallel on independent FileAccess instances" but names no
// orchestration surface for it. ParseAll runs parseAndValidate across
// paths with bounded concurrency, each on its own Factory-constructed
// FileAccess, and never fails the batch on one package's error — the
// corresponding BatchItem.Err carries it instead, mirroring
// ParseResult's "always return data" lenience at the batch level.
//
// concurrency <= 0 means unbounded (one goroutine per path).
func ParseAll(ctx context.Context, paths []string, options Options, concurrency int) ([]BatchItem, error) {
	items := make([]BatchItem, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	factory := NewFactory()
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				items[i] = BatchItem{Path: path, Err: ctx.Err()}
				return nil
			default:
			}

			p, fa, mt, err := factory.Open(path, options)
			if err != nil {
				items[i] = BatchItem{Path: path, Err: err}
				return nil
			}
			defer fa.Close()

			result, err := p.ParseAndValidate()
			items[i] = BatchItem{Path: path, Result: result, ModuleType: mt, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return items, err
	}
	return items, nil
}
