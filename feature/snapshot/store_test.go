package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"xwing-inventory/core/database"
	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLite(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := NewStore(db, nil)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testInventory() inventory.Inventory {
	return inventory.Inventory{
		item.New(item.Ship, "t70xwing"):    2,
		item.New(item.Pilot, "poedameron"): 1,
	}
}

var snapshotColumns = []string{"id", "label", "created_at", "unique_items", "total_items", "diagnostics"}

func TestStore_Save(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, nil)
	store.newID = func() string { return "0b6c6f1e-5f1a-4a57-9d7b-0d3b1b3f0c11" }

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `inventory_snapshots`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `inventory_snapshot_items`").WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	snap, err := store.Save(context.Background(), "weekly", testInventory(), 3)
	require.NoError(t, err)
	assert.Equal(t, "0b6c6f1e-5f1a-4a57-9d7b-0d3b1b3f0c11", snap.ID)
	assert.Equal(t, 2, snap.UniqueItems)
	assert.Equal(t, uint64(3), snap.TotalItems)
	assert.Equal(t, 3, snap.Diagnostics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `inventory_snapshots`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `inventory_snapshot_items`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := store.Save(context.Background(), "weekly", testInventory(), 0)
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveEmpty(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `inventory_snapshots`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := store.Save(context.Background(), "", inventory.Inventory{}, 0)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Latest(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT \\* FROM `inventory_snapshots` ORDER BY created_at desc").
			WillReturnRows(sqlmock.NewRows(snapshotColumns).AddRow("id-1", "weekly", created, 2, 3, 0))

		snap, err := NewStore(db, nil).Latest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "id-1", snap.ID)
		assert.Equal(t, created, snap.CreatedAt)
	})

	t.Run("Empty", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `inventory_snapshots`").
			WillReturnRows(sqlmock.NewRows(snapshotColumns))

		_, err := NewStore(db, nil).Latest(context.Background())
		assert.ErrorIs(t, err, ErrNoSnapshot)
	})

	t.Run("QueryFails", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `inventory_snapshots`").WillReturnError(errors.New("gone away"))

		_, err := NewStore(db, nil).Latest(context.Background())
		assert.ErrorContains(t, err, "gone away")
		assert.NotErrorIs(t, err, ErrNoSnapshot)
	})
}

func TestStore_Inventory(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `inventory_snapshot_items` WHERE snapshot_id = ?").
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "snapshot_id", "kind", "xws", "count"}).
			AddRow(1, "id-1", "ship", "t70xwing", 2).
			AddRow(2, "id-1", "pilot", "poedameron", 1))

	inv, err := NewStore(db, nil).Inventory(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, testInventory(), inv)

	mock.ExpectQuery("SELECT \\* FROM `inventory_snapshot_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "snapshot_id", "kind", "xws", "count"}).
			AddRow(1, "id-2", "starship", "t70xwing", 2))
	_, err = NewStore(db, nil).Inventory(context.Background(), "id-2")
	assert.ErrorContains(t, err, "starship")
}

func TestStore_SQLiteRoundTrip(t *testing.T) {
	store := setupSQLite(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, "first", testInventory(), 1)
	require.NoError(t, err)

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, latest.ID)
	assert.Equal(t, "first", latest.Label)

	inv, err := store.Inventory(ctx, latest.ID)
	require.NoError(t, err)
	assert.Equal(t, testInventory(), inv)

	snaps, err := store.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}
