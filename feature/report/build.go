package report

import (
	"context"
	"io"

	"xwing-inventory/core/cards"
	"xwing-inventory/core/catalog"
	"xwing-inventory/core/reconcile"
	"xwing-inventory/core/source"
	"xwing-inventory/feature/yasb"

	"golang.org/x/sync/errgroup"
)

// Inputs names the documents a report is built from.
type Inputs struct {
	Source     source.Reader
	Expansions string
	Collection string
	XWingData  string
}

// Build loads every input, reconciles the collection and assembles the report.
// A load failure aborts the build; reference failures end up as diagnostics.
func Build(ctx context.Context, in Inputs, opts reconcile.Options) (*Report, error) {
	var (
		cat  *catalog.Catalog
		decl reconcile.Declaration
		data *cards.Data
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return source.Load(gctx, in.Source, in.Expansions, func(r io.Reader) error {
			var err error
			cat, err = catalog.Decode(r)
			return err
		})
	})
	g.Go(func() error {
		var err error
		decl, err = yasb.Load(gctx, in.Source, in.Collection)
		return err
	})
	g.Go(func() error {
		var err error
		data, err = cards.Load(gctx, in.Source, in.XWingData)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := reconcile.Run(decl, cat, opts)
	if err != nil {
		return nil, err
	}
	return Assemble(result, cat, data, opts.Logger), nil
}
