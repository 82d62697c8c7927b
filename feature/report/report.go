package report

import (
	"encoding/json"
	"io"
	"slices"

	"xwing-inventory/core/cards"
	"xwing-inventory/core/catalog"
	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"
	"xwing-inventory/core/reconcile"

	"go.uber.org/zap"
)

// Report is the assembled outcome of one reconciliation run.
type Report struct {
	Records     Records                `json:"records"`
	Diagnostics []reconcile.Diagnostic `json:"diagnostics"`
	Summary     Summary                `json:"summary"`

	// Owned expansion counts by SKU, including SKUs the catalog does not know.
	SKUs map[string]uint32 `json:"-"`
	// Singles are the individually owned counts, used for the spreadsheet.
	Singles   map[item.Item]uint32 `json:"-"`
	Inventory inventory.Inventory  `json:"-"`

	Catalog *catalog.Catalog `json:"-"`
	Cards   Cards            `json:"-"`
}

// Summary extends the run summary with record counts.
type Summary struct {
	reconcile.Summary
	Ships         int `json:"ships"`
	Pilots        int `json:"pilots"`
	Upgrades      int `json:"upgrades"`
	CardsNotFound int `json:"cards_not_found"`
}

// Assemble builds the records for result and appends card misses to its
// diagnostics.
func Assemble(result *reconcile.Result, cat *catalog.Catalog, c Cards, logger *zap.Logger) *Report {
	if logger == nil {
		logger = zap.NewNop()
	}
	records, missing := BuildRecords(result.Inventory, c, cat, logger)

	diags := make([]reconcile.Diagnostic, 0, len(result.Diagnostics)+len(missing))
	diags = append(diags, result.Diagnostics...)
	diags = append(diags, missing...)

	rep := &Report{
		Records:     records,
		Diagnostics: diags,
		Summary: Summary{
			Summary:       result.Summary,
			Ships:         len(records.Ships),
			Pilots:        len(records.Pilots),
			Upgrades:      len(records.Upgrades),
			CardsNotFound: len(missing),
		},
		SKUs:      result.SKUs,
		Singles:   result.Singles,
		Inventory: result.Inventory,
		Catalog:   cat,
		Cards:     c,
	}

	logger.Info("Inventory assembled",
		zap.Int("ships", rep.Summary.Ships),
		zap.Int("pilots", rep.Summary.Pilots),
		zap.Int("upgrades", rep.Summary.Upgrades),
		zap.Uint64("total_items", rep.Summary.TotalItems),
		zap.Int("diagnostics", len(rep.Diagnostics)))

	return rep
}

// WriteJSON writes records as {"ships":[...],"pilots":[...],"upgrades":[...]}.
func WriteJSON(w io.Writer, records Records) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ExpansionRow is one line of the expansion ownership listing.
type ExpansionRow struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Wave  uint   `json:"wave"`
	Owned uint32 `json:"owned"`
	Known bool   `json:"known"`
}

// Expansions lists owned SKUs in SKU order. With all set, every catalog SKU is
// listed too, with zero owned when not in the collection.
func (r *Report) Expansions(all bool) []ExpansionRow {
	seen := make(map[string]bool, len(r.SKUs))
	var skus []string
	for sku := range r.SKUs {
		seen[sku] = true
		skus = append(skus, sku)
	}
	if all && r.Catalog != nil {
		for _, sku := range r.Catalog.SKUs() {
			if !seen[sku] {
				seen[sku] = true
				skus = append(skus, sku)
			}
		}
	}
	slices.Sort(skus)

	rows := make([]ExpansionRow, 0, len(skus))
	for _, sku := range skus {
		row := ExpansionRow{SKU: sku, Owned: r.SKUs[sku]}
		if r.Catalog != nil {
			if e, ok := r.Catalog.Lookup(sku); ok {
				row.Name, row.Wave, row.Known = e.Name, e.Wave, true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// SourceDetail is one expansion supplying an item.
type SourceDetail struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Wave         uint   `json:"wave"`
	PerCopyCount uint32 `json:"per_copy_count"`
	Owned        uint32 `json:"owned"`
}

// Sources describes which expansions supply it and how many of them are owned.
func (r *Report) Sources(it item.Item) []SourceDetail {
	if r.Catalog == nil {
		return nil
	}
	refs := r.Catalog.SourcesOf(it)
	out := make([]SourceDetail, 0, len(refs))
	for _, ref := range refs {
		d := SourceDetail{SKU: ref.SKU, PerCopyCount: ref.PerCopyCount, Owned: r.SKUs[ref.SKU]}
		if e, ok := r.Catalog.Lookup(ref.SKU); ok {
			d.Name, d.Wave = e.Name, e.Wave
		}
		out = append(out, d)
	}
	return out
}

var _ Cards = (*cards.Data)(nil)
