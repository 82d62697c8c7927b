package report

import (
	"fmt"
	"io"
	"strings"

	"xwing-inventory/core/catalog"
	"xwing-inventory/core/item"

	"github.com/xuri/excelize/v2"
)

// Sheet names, in workbook order.
const (
	// SheetExpansions holds the expansion ownership lookup table.
	SheetExpansions = "Expansions"
	// SheetShips lists ship records.
	SheetShips = "Ships"
	// SheetPilots lists pilot records.
	SheetPilots = "Pilots"
	// SheetUpgrades lists upgrade records.
	SheetUpgrades = "Upgrades"

	// LookupTable is the name of the expansion ownership table the totals refer to.
	LookupTable = "ExpansionLookup"
)

var (
	expansionCols = []string{"Owned", "Name", "Wave", "SKU"}
	shipCols      = []string{"Name", "Total", "Singles", "XWS", "Sources"}
	pilotCols     = []string{"Name", "Ship", "Initiative", "Faction", "Total", "Singles", "XWS", "Sources"}
	upgradeCols   = []string{
		"Name", "Type",
		"Faction Restriction", "Ship Restriction", "Size Restriction",
		"Arc Restriction", "Force Side Restriction", "Keyword Restriction",
		"Total", "Singles", "XWS", "Sources",
	}
)

// WorkbookOptions tunes the spreadsheet.
type WorkbookOptions struct {
	// AllExpansions lists every catalog SKU in the lookup table, not only owned ones.
	AllExpansions bool
}

// TotalFormula returns the Total column formula: the singles cell plus, for every
// source, the per-copy count times the owned count looked up by SKU.
func TotalFormula(singlesCell string, refs []catalog.SourceRef) string {
	var b strings.Builder
	b.WriteString(singlesCell)
	for _, ref := range refs {
		fmt.Fprintf(&b, "+%d*_xlfn.XLOOKUP(\"%s\",%s[SKU],%s[Owned],0,0)", ref.PerCopyCount, ref.SKU, LookupTable, LookupTable)
	}
	return b.String()
}

// NewWorkbook renders the report as a spreadsheet. The caller closes the file.
func NewWorkbook(rep *Report, opts WorkbookOptions) (*excelize.File, error) {
	f := excelize.NewFile()
	w := &workbook{f: f, rep: rep}

	steps := []func() error{
		func() error { return w.expansions(opts.AllExpansions) },
		w.ships,
		w.pilots,
		w.upgrades,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook renders the report and writes the xlsx bytes to out.
func WriteWorkbook(out io.Writer, rep *Report, opts WorkbookOptions) error {
	f, err := NewWorkbook(rep, opts)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(out)
}

type workbook struct {
	f   *excelize.File
	rep *Report
}

func (w *workbook) sheet(name string, cols []string) error {
	if name == SheetExpansions {
		if err := w.f.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return err
	}
	return w.f.SetSheetRow(name, "A1", &cols)
}

func (w *workbook) row(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(sheet, cell, &values)
}

func (w *workbook) total(sheet string, row, totalCol, singlesCol int, it item.Item) error {
	singles, err := excelize.CoordinatesToCellName(singlesCol, row)
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(totalCol, row)
	if err != nil {
		return err
	}
	var refs []catalog.SourceRef
	if w.rep.Catalog != nil {
		refs = w.rep.Catalog.SourcesOf(it)
	}
	return w.f.SetCellFormula(sheet, cell, TotalFormula(singles, refs))
}

// table adds a styled table over the header and rows written so far. A sheet
// without data rows gets no table.
func (w *workbook) table(sheet, name, style string, cols, lastRow int) error {
	if lastRow < 2 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(cols, lastRow)
	if err != nil {
		return err
	}
	return w.f.AddTable(sheet, &excelize.Table{
		Range:     "A1:" + end,
		Name:      name,
		StyleName: style,
	})
}

// expansions writes the lookup table every Total formula refers to. The table
// always exists: with nothing owned it lists the catalog at Owned 0, and with
// an empty catalog it holds a single blank row.
func (w *workbook) expansions(all bool) error {
	if err := w.sheet(SheetExpansions, expansionCols); err != nil {
		return err
	}
	rows := w.rep.Expansions(all)
	if len(rows) == 0 {
		rows = w.rep.Expansions(true)
	}

	row := 2
	for _, e := range rows {
		name, wave, sku := e.Name, e.Wave, e.SKU
		if !e.Known {
			name, wave, sku = "notfound", 0, "error"
		}
		if err := w.row(SheetExpansions, row, []any{e.Owned, name, wave, sku}); err != nil {
			return err
		}
		row++
	}
	if row == 2 {
		if err := w.row(SheetExpansions, row, []any{0, "", 0, ""}); err != nil {
			return err
		}
		row++
	}
	return w.table(SheetExpansions, LookupTable, "TableStyleMedium2", len(expansionCols), row-1)
}

func (w *workbook) singles(kind item.Kind, xws string) uint32 {
	return w.rep.Singles[item.New(kind, xws)]
}

func (w *workbook) ships() error {
	if err := w.sheet(SheetShips, shipCols); err != nil {
		return err
	}
	row := 2
	for _, r := range w.rep.Records.Ships {
		it := item.New(item.Ship, r.XWS)
		if err := w.row(SheetShips, row, []any{r.Name, nil, w.singles(item.Ship, r.XWS), r.XWS, r.Sources}); err != nil {
			return err
		}
		if err := w.total(SheetShips, row, 2, 3, it); err != nil {
			return err
		}
		row++
	}
	return w.table(SheetShips, "ShipTable", "TableStyleMedium3", len(shipCols), row-1)
}

func (w *workbook) pilots() error {
	if err := w.sheet(SheetPilots, pilotCols); err != nil {
		return err
	}
	row := 2
	for _, r := range w.rep.Records.Pilots {
		it := item.New(item.Pilot, r.XWS)
		values := []any{r.Name, r.Ship, r.Initiative, r.Faction, nil, w.singles(item.Pilot, r.XWS), r.XWS, r.Sources}
		if err := w.row(SheetPilots, row, values); err != nil {
			return err
		}
		if err := w.total(SheetPilots, row, 5, 6, it); err != nil {
			return err
		}
		row++
	}
	return w.table(SheetPilots, "PilotTable", "TableStyleMedium4", len(pilotCols), row-1)
}

func (w *workbook) upgrades() error {
	if err := w.sheet(SheetUpgrades, upgradeCols); err != nil {
		return err
	}
	row := 2
	for _, r := range w.rep.Records.Upgrades {
		it := item.New(item.Upgrade, r.XWS)
		values := []any{
			r.Name, r.Type,
			r.FactionRestriction, r.ShipRestriction, r.SizeRestriction,
			r.ArcRestriction, r.ForceSideRestriction, r.KeywordRestriction,
			nil, w.singles(item.Upgrade, r.XWS), r.XWS, r.Sources,
		}
		if err := w.row(SheetUpgrades, row, values); err != nil {
			return err
		}
		if err := w.total(SheetUpgrades, row, 9, 10, it); err != nil {
			return err
		}
		row++
	}
	return w.table(SheetUpgrades, "UpgradeTable", "TableStyleMedium5", len(upgradeCols), row-1)
}
