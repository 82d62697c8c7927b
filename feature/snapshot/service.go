package snapshot

import (
	"context"
	"fmt"

	"xwing-inventory/feature/report"

	"go.uber.org/zap"
)

// Reports supplies the current inventory report.
type Reports interface {
	Report(ctx context.Context) (*report.Report, error)
}

// Service stores snapshots of the current report and compares against them.
type Service struct {
	store   *Store
	reports Reports
	logger  *zap.Logger
}

// NewService creates a snapshot service.
func NewService(store *Store, reports Reports, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, reports: reports, logger: logger}
}

// Capture stores the current inventory under label.
func (s *Service) Capture(ctx context.Context, label string) (*Snapshot, error) {
	rep, err := s.reports.Report(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.Save(ctx, label, rep.Inventory, len(rep.Diagnostics))
}

// DiffLatest compares the latest snapshot with the current inventory.
func (s *Service) DiffLatest(ctx context.Context) (*Snapshot, []Change, error) {
	snap, err := s.store.Latest(ctx)
	if err != nil {
		return nil, nil, err
	}
	before, err := s.store.Inventory(ctx, snap.ID)
	if err != nil {
		return nil, nil, err
	}
	rep, err := s.reports.Report(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build current inventory: %w", err)
	}
	return snap, Compare(before, rep.Inventory), nil
}
