package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Column describes one column as the database reports it.
type Column struct {
	Name string
	// Type is the lowercased declared type, e.g. "int(10) unsigned".
	Type     string
	Nullable bool
	Primary  bool
}

// TableColumns returns the columns of table keyed by lowercased name. A table
// that does not exist has no columns.
func TableColumns(db *gorm.DB, table string) (map[string]Column, error) {
	var (
		cols []Column
		err  error
	)
	if db.Dialector.Name() == DriverSQLite {
		cols, err = sqliteColumns(db, table)
	} else {
		cols, err = mysqlColumns(db, table)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}

	out := make(map[string]Column, len(cols))
	for _, c := range cols {
		c.Name = strings.ToLower(c.Name)
		c.Type = strings.ToLower(c.Type)
		out[c.Name] = c
	}
	return out, nil
}

type pragmaColumn struct {
	Cid       int
	Name      string
	Type      string
	Notnull   int
	DfltValue *string
	Pk        int
}

func sqliteColumns(db *gorm.DB, table string) ([]Column, error) {
	var rows []pragmaColumn
	if err := db.Raw("SELECT * FROM pragma_table_info(?)", table).Scan(&rows).Error; err != nil {
		return nil, err
	}
	cols := make([]Column, len(rows))
	for i, r := range rows {
		cols[i] = Column{Name: r.Name, Type: r.Type, Nullable: r.Notnull == 0, Primary: r.Pk > 0}
	}
	return cols, nil
}

// showColumn is one row of SHOW COLUMNS.
type showColumn struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

func mysqlColumns(db *gorm.DB, table string) ([]Column, error) {
	var rows []showColumn
	quoted := "`" + strings.ReplaceAll(table, "`", "``") + "`"
	if err := db.Raw("SHOW COLUMNS FROM " + quoted).Scan(&rows).Error; err != nil {
		return nil, err
	}
	cols := make([]Column, len(rows))
	for i, r := range rows {
		cols[i] = Column{Name: r.Field, Type: r.Type, Nullable: r.Null == "YES", Primary: r.Key == "PRI"}
	}
	return cols, nil
}
