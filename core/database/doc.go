// Package database opens the GORM connection used to persist inventory
// snapshots, and inspects table columns for the schema integrity check.
//
// Both MySQL and SQLite are supported. SQLite is the default so that a local
// run needs no server; a file name or ":memory:" goes in Name.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	columns, err := database.TableColumns(db, "inventory_snapshots")
package database
