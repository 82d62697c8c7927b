package checks

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type widget struct {
	ID    string `gorm:"column:id;type:varchar(36);primaryKey"`
	Count uint32 `gorm:"column:count;type:int"`
	Note  string
}

func (widget) TableName() string {
	return "widgets"
}

type untabled struct {
	ID string `gorm:"column:id"`
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func columns(rows ...[]string) *sqlmock.Rows {
	r := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, row := range rows {
		r.AddRow(row[0], row[1], "NO", "", nil, "")
	}
	return r
}

func TestCheckSchema(t *testing.T) {
	t.Run("Matched", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `widgets`").WillReturnRows(columns(
			[]string{"id", "varchar(36)"},
			[]string{"count", "int(10) unsigned"},
		))

		got, err := CheckSchema(db, widget{})
		require.NoError(t, err)
		assert.True(t, got.Matched)
		assert.Equal(t, "mysql", got.Driver)
		assert.Equal(t, "ok", got.Tables["widgets"].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingAndMismatched", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `widgets`").WillReturnRows(columns(
			[]string{"id", "bigint"},
		))

		got, err := CheckSchema(db, &widget{})
		require.NoError(t, err)
		assert.False(t, got.Matched)
		tbl := got.Tables["widgets"]
		assert.Equal(t, "error", tbl.Status)
		assert.Equal(t, []string{"count"}, tbl.MissingColumns)
		assert.Equal(t, []string{"id: expected varchar(36), got bigint"}, tbl.TypeMismatches)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `widgets`").WillReturnError(assert.AnError)

		got, err := CheckSchema(db, widget{})
		require.NoError(t, err)
		assert.False(t, got.Matched)
		require.Len(t, got.Errors, 1)
		assert.Contains(t, got.Errors[0], "widgets")
	})

	t.Run("NoTableName", func(t *testing.T) {
		db, _ := newMockDB(t)
		_, err := CheckSchema(db, untabled{})
		assert.Error(t, err)
	})

	t.Run("NilDB", func(t *testing.T) {
		_, err := CheckSchema(nil)
		assert.Error(t, err)
	})
}

func TestParseGormTag(t *testing.T) {
	tests := []struct {
		tag, column, typ string
	}{
		{"column:id;type:varchar(36);primaryKey", "id", "varchar(36)"},
		{"column:created_at", "created_at", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.column, parseGormColumn(tt.tag))
			assert.Equal(t, tt.typ, parseGormType(tt.tag))
		})
	}
}
