package report

import (
	"context"
	"time"

	"xwing-inventory/core/reconcile"

	"go.uber.org/zap"
)

const cacheKey = "inventory"

// Service builds reports on demand and caches them between requests.
type Service struct {
	inputs Inputs
	opts   reconcile.Options
	cache  *reconcile.Cache[*Report]
	logger *zap.Logger
	build  func(ctx context.Context, in Inputs, opts reconcile.Options) (*Report, error)
}

// NewService creates a report service. A zero ttl rebuilds on every request.
func NewService(inputs Inputs, opts reconcile.Options, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	return &Service{
		inputs: inputs,
		opts:   opts,
		cache:  reconcile.NewCache[*Report](ttl),
		logger: logger,
		build:  Build,
	}
}

// Report returns the cached report, building it when missing or expired.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	return s.cache.GetOrBuild(ctx, cacheKey, func(ctx context.Context) (*Report, error) {
		start := time.Now()
		rep, err := s.build(ctx, s.inputs, s.opts)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Inventory report built", zap.Duration("took", time.Since(start)))
		return rep, nil
	})
}

// Refresh drops the cached report.
func (s *Service) Refresh() {
	s.cache.Invalidate(cacheKey)
}
