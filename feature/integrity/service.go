package integrity

import (
	"context"
	"errors"
	"io"

	"xwing-inventory/core/cards"
	"xwing-inventory/core/catalog"
	"xwing-inventory/core/source"
	"xwing-inventory/feature/integrity/checks"
	"xwing-inventory/feature/snapshot"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by the schema check when no database is configured.
var ErrNoDatabase = errors.New("no database configured")

// SourcesReport lists the required input documents that could not be found.
type SourcesReport struct {
	Required []string `json:"required"`
	Missing  []string `json:"missing"`
	Matched  bool     `json:"matched"`
}

// CardFilesReport lists xwing-data2 files named by the manifest but absent.
type CardFilesReport struct {
	Root    string   `json:"root"`
	Missing []string `json:"missing"`
	Matched bool     `json:"matched"`
}

// Service provides the integrity checks.
type Service struct {
	src    source.Reader
	cfg    source.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(src source.Reader, cfg source.Config, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, cfg: cfg, db: db, logger: logger}
}

// CheckSources checks that the expansion catalog, the collection and the
// xwing-data2 manifest exist.
func (s *Service) CheckSources(ctx context.Context) (*SourcesReport, error) {
	required := checks.RequiredSources(s.cfg)
	missing, err := checks.CheckSources(ctx, s.src, required)
	if err != nil {
		return nil, err
	}
	return &SourcesReport{Required: required, Missing: missing, Matched: len(missing) == 0}, nil
}

// CheckCardFiles checks every file listed in the xwing-data2 manifest.
func (s *Service) CheckCardFiles(ctx context.Context) (*CardFilesReport, error) {
	missing, err := checks.CheckCardFiles(ctx, s.src, s.cfg.XWingData)
	if err != nil {
		return nil, err
	}
	return &CardFilesReport{Root: s.cfg.XWingData, Missing: missing, Matched: len(missing) == 0}, nil
}

// CheckCatalog loads the expansion catalog and the card data and verifies
// that every listed card exists.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	var (
		cat  *catalog.Catalog
		data *cards.Data
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return source.Load(gctx, s.src, s.cfg.Expansions, func(r io.Reader) error {
			var err error
			cat, err = catalog.Decode(r)
			return err
		})
	})
	g.Go(func() error {
		var err error
		data, err = cards.Load(gctx, s.src, s.cfg.XWingData)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := checks.CheckCatalog(cat, data)
	for _, m := range report.Missing {
		s.logger.Warn("Catalog lists unknown card", zap.String("sku", m.SKU), zap.Stringer("item", m.Item))
	}
	return report, nil
}

// CheckSchema verifies the snapshot tables.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db.WithContext(ctx), snapshot.Models()...)
}
