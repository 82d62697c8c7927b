package report

import (
	"bytes"
	"testing"

	"xwing-inventory/core/catalog"
	"xwing-inventory/core/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTotalFormula(t *testing.T) {
	assert.Equal(t, "C2", TotalFormula("C2", nil))
	assert.Equal(t,
		`F3+1*_xlfn.XLOOKUP("swz25",ExpansionLookup[SKU],ExpansionLookup[Owned],0,0)+2*_xlfn.XLOOKUP("swz68",ExpansionLookup[SKU],ExpansionLookup[Owned],0,0)`,
		TotalFormula("F3", []catalog.SourceRef{{SKU: "swz25", PerCopyCount: 1}, {SKU: "swz68", PerCopyCount: 2}}),
	)
}

func testReport(t *testing.T) *Report {
	cat := testCatalog(t)
	rep := Assemble(testResult(t, cat), cat, testCards(), nil)
	rep.SKUs["swz999"] = 1
	return rep
}

func TestNewWorkbook(t *testing.T) {
	rep := testReport(t)

	f, err := NewWorkbook(rep, WorkbookOptions{})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetExpansions, SheetShips, SheetPilots, SheetUpgrades}, f.GetSheetList())

	t.Run("Expansions", func(t *testing.T) {
		rows, err := f.GetRows(SheetExpansions)
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Owned", "Name", "Wave", "SKU"},
			{"2", "T-70 X-Wing Expansion Pack", "1", "swz25"},
			{"1", "notfound", "0", "error"},
		}, rows)
	})

	t.Run("Ships", func(t *testing.T) {
		name, err := f.GetCellValue(SheetShips, "A2")
		require.NoError(t, err)
		assert.Equal(t, "T-70 X-wing", name)

		formula, err := f.GetCellFormula(SheetShips, "B2")
		require.NoError(t, err)
		assert.Contains(t, formula, `C2+1*_xlfn.XLOOKUP("swz25"`)
		assert.Contains(t, formula, `+2*_xlfn.XLOOKUP("swz68"`)

		singles, err := f.GetCellValue(SheetShips, "C2")
		require.NoError(t, err)
		assert.Equal(t, "0", singles)
	})

	t.Run("Upgrades", func(t *testing.T) {
		singles, err := f.GetCellValue(SheetUpgrades, "J2")
		require.NoError(t, err)
		assert.Equal(t, "1", singles)

		formula, err := f.GetCellFormula(SheetUpgrades, "I2")
		require.NoError(t, err)
		assert.Contains(t, formula, "J2+")

		restriction, err := f.GetCellValue(SheetUpgrades, "C2")
		require.NoError(t, err)
		assert.Equal(t, "Resistance", restriction)
	})

	t.Run("EmptyPilotsHaveHeaderOnly", func(t *testing.T) {
		rows, err := f.GetRows(SheetPilots)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, pilotCols, rows[0])
	})
}

func TestNewWorkbookAllExpansions(t *testing.T) {
	rep := testReport(t)

	f, err := NewWorkbook(rep, WorkbookOptions{AllExpansions: true})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetExpansions)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"0", "Core Set", "0", "swz01"}, rows[1])
}

func TestWriteWorkbook(t *testing.T) {
	rep := testReport(t)
	rep.Singles[item.New(item.Ship, "t70xwing")] = 1

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, rep, WorkbookOptions{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	singles, err := f.GetCellValue(SheetShips, "C2")
	require.NoError(t, err)
	assert.Equal(t, "1", singles)
}

func TestNewWorkbookLookupTableWithoutExpansions(t *testing.T) {
	t.Run("CatalogAtZero", func(t *testing.T) {
		cat := testCatalog(t)
		rep := &Report{
			SKUs:    map[string]uint32{},
			Singles: map[item.Item]uint32{item.New(item.Ship, "t70xwing"): 1},
			Catalog: cat,
			Cards:   testCards(),
		}
		rep.Records.Ships = []ShipRecord{{XWS: "t70xwing", Name: "T-70 X-wing", Count: 1}}

		f, err := NewWorkbook(rep, WorkbookOptions{})
		require.NoError(t, err)
		defer f.Close()

		tables, err := f.GetTables(SheetExpansions)
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, LookupTable, tables[0].Name)

		rows, err := f.GetRows(SheetExpansions)
		require.NoError(t, err)
		require.Len(t, rows, 1+len(cat.SKUs()))
		for _, r := range rows[1:] {
			assert.Equal(t, "0", r[0])
		}

		formula, err := f.GetCellFormula(SheetShips, "B2")
		require.NoError(t, err)
		assert.Contains(t, formula, "ExpansionLookup[Owned]")
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		rep := &Report{SKUs: map[string]uint32{}, Singles: map[item.Item]uint32{}}

		f, err := NewWorkbook(rep, WorkbookOptions{})
		require.NoError(t, err)
		defer f.Close()

		tables, err := f.GetTables(SheetExpansions)
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, LookupTable, tables[0].Name)
	})
}
