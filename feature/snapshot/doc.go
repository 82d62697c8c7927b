// Package snapshot persists aggregated inventories so that successive runs can
// be compared.
//
// A snapshot is one row in inventory_snapshots plus one row per owned item in
// inventory_snapshot_items. Ids are random UUIDs. Compare reports what changed
// between two inventories, which is how the CLI and the HTTP endpoint show the
// effect of a new collection export.
package snapshot
