package snapshot

import "time"

// Snapshot is the header row of a stored inventory.
type Snapshot struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Label       string    `gorm:"column:label;type:varchar(255)" json:"label"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UniqueItems int       `gorm:"column:unique_items;type:int" json:"unique_items"`
	TotalItems  uint64    `gorm:"column:total_items;type:bigint" json:"total_items"`
	Diagnostics int       `gorm:"column:diagnostics;type:int" json:"diagnostics"`
}

func (Snapshot) TableName() string {
	return "inventory_snapshots"
}

// Item is one owned item of a snapshot.
type Item struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	SnapshotID string `gorm:"column:snapshot_id;type:varchar(36);index" json:"-"`
	Kind       string `gorm:"column:kind;type:varchar(16)" json:"type"`
	XWS        string `gorm:"column:xws;type:varchar(128)" json:"xws"`
	Count      uint32 `gorm:"column:count;type:int" json:"count"`
}

func (Item) TableName() string {
	return "inventory_snapshot_items"
}

// Models lists every table the store owns, for migrations and schema checks.
func Models() []any {
	return []any{Snapshot{}, Item{}}
}
