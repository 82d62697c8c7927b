package checks

import (
	"encoding/json"
	"io"

	"xwing-inventory/core/cards"
	"xwing-inventory/core/catalog"
	"xwing-inventory/core/item"
)

// Cards looks up card data by xws id.
type Cards interface {
	Ship(xws string) (cards.Ship, bool)
	Pilot(xws string) (cards.Ship, cards.Pilot, bool)
	Upgrade(xws string) (cards.Upgrade, bool)
}

// MissingCard is an expansion content entry without card data.
type MissingCard struct {
	SKU  string    `json:"sku"`
	Item item.Item `json:"item"`
}

// CatalogReport is the result of checking the expansion catalog against the
// card data.
type CatalogReport struct {
	Expansions int `json:"expansions"`
	Checked    int `json:"checked"`
	// Missing entries are real catalog errors: a typo or an outdated xws id.
	Missing []MissingCard `json:"missing"`
	// KnownMissing entries have no xwing-data2 id upstream.
	KnownMissing []MissingCard `json:"known_missing"`
	Matched      bool          `json:"matched"`
}

// CheckCatalog verifies that every ship, pilot and upgrade listed in an
// expansion exists in the card data. Obstacles and damage decks are not
// described by xwing-data2 and are skipped.
func CheckCatalog(cat *catalog.Catalog, c Cards) *CatalogReport {
	report := &CatalogReport{
		Missing:      []MissingCard{},
		KnownMissing: []MissingCard{},
	}

	for _, e := range cat.Expansions() {
		report.Expansions++
		for _, content := range e.Contents {
			var found bool
			switch content.Item.Kind {
			case item.Ship:
				_, found = c.Ship(content.Item.ID)
			case item.Pilot:
				_, _, found = c.Pilot(content.Item.ID)
			case item.Upgrade:
				_, found = c.Upgrade(content.Item.ID)
			default:
				continue
			}
			report.Checked++
			if found {
				continue
			}

			miss := MissingCard{SKU: e.SKU, Item: content.Item}
			if cards.KnownMissing(content.Item.ID) {
				report.KnownMissing = append(report.KnownMissing, miss)
			} else {
				report.Missing = append(report.Missing, miss)
			}
		}
	}

	report.Matched = len(report.Missing) == 0
	return report
}

func decodeJSON(v any) func(io.Reader) error {
	return func(r io.Reader) error {
		return json.NewDecoder(r).Decode(v)
	}
}
