package snapshot

import (
	"context"
	"errors"
	"fmt"

	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoSnapshot is returned when no snapshot has been stored yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

const insertBatchSize = 500

// Store reads and writes snapshots.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
	newID  func() string
}

// NewStore creates a store on db.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger, newID: uuid.NewString}
}

// Migrate creates or updates the snapshot tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Snapshot{}, &Item{}); err != nil {
		return fmt.Errorf("failed to migrate snapshot tables: %w", err)
	}
	return nil
}

// Save stores inv as a new snapshot in a single transaction.
func (s *Store) Save(ctx context.Context, label string, inv inventory.Inventory, diagnostics int) (*Snapshot, error) {
	snap := &Snapshot{
		ID:          s.newID(),
		Label:       label,
		UniqueItems: len(inv),
		TotalItems:  inv.Total(),
		Diagnostics: diagnostics,
	}

	rows := make([]Item, 0, len(inv))
	for _, it := range inv.Items() {
		rows = append(rows, Item{
			SnapshotID: snap.ID,
			Kind:       it.Kind.String(),
			XWS:        it.ID,
			Count:      inv[it],
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(snap).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.logger.Info("Snapshot saved",
		zap.String("id", snap.ID),
		zap.String("label", label),
		zap.Int("unique_items", snap.UniqueItems))
	return snap, nil
}

// Latest returns the most recently created snapshot.
func (s *Store) Latest(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).Order("created_at desc").First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest snapshot: %w", err)
	}
	return &snap, nil
}

// List returns up to limit snapshots, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Snapshot, error) {
	var snaps []Snapshot
	if err := s.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&snaps).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}

// Inventory loads the items of snapshot id.
func (s *Store) Inventory(ctx context.Context, id string) (inventory.Inventory, error) {
	var rows []Item
	if err := s.db.WithContext(ctx).Where("snapshot_id = ?", id).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", id, err)
	}

	inv := make(inventory.Inventory, len(rows))
	for _, r := range rows {
		kind, err := item.ParseKind(r.Kind)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", id, err)
		}
		inv[item.New(kind, r.XWS)] = r.Count
	}
	return inv, nil
}
