package report

import (
	"fmt"
	"strings"

	"xwing-inventory/core/cards"
	"xwing-inventory/core/catalog"
	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"
	"xwing-inventory/core/reconcile"

	"go.uber.org/zap"
)

// Cards is the read-only card catalog used to enrich inventory items.
type Cards interface {
	Ship(xws string) (cards.Ship, bool)
	Pilot(xws string) (cards.Ship, cards.Pilot, bool)
	Upgrade(xws string) (cards.Upgrade, bool)
	Faction(xws string) (cards.Faction, bool)
}

// Provenance answers which expansions supply an item.
type Provenance interface {
	catalog.Lookup
	SourcesOf(it item.Item) []catalog.SourceRef
}

// ShipRecord is one owned ship chassis.
type ShipRecord struct {
	Name    string `json:"name"`
	XWS     string `json:"xws"`
	Count   uint32 `json:"count"`
	Sources string `json:"sources,omitempty"`
}

// PilotRecord carries the fields a collection is usually sorted by.
type PilotRecord struct {
	Faction    string `json:"faction"`
	Ship       string `json:"ship"`
	XWS        string `json:"xws"`
	Name       string `json:"name"`
	Initiative uint32 `json:"initiative"`
	Count      uint32 `json:"count"`
	Sources    string `json:"sources,omitempty"`
}

// UpgradeRecord is one owned upgrade with its slot type.
type UpgradeRecord struct {
	XWS                  string `json:"xws"`
	Type                 string `json:"type"`
	Name                 string `json:"name"`
	FactionRestriction   string `json:"faction_restriction"`
	SizeRestriction      string `json:"size_restriction"`
	ShipRestriction      string `json:"ship_restriction"`
	ArcRestriction       string `json:"arc_restriction"`
	KeywordRestriction   string `json:"keyword_restriction"`
	ForceSideRestriction string `json:"force_side_restriction"`
	Count                uint32 `json:"count"`
	Sources              string `json:"sources,omitempty"`
}

// Records groups the enriched inventory by kind, each in item order.
type Records struct {
	Ships    []ShipRecord    `json:"ships"`
	Pilots   []PilotRecord   `json:"pilots"`
	Upgrades []UpgradeRecord `json:"upgrades"`
}

// Restriction selects one restriction category of an upgrade.
type Restriction int

const (
	Factions Restriction = iota
	Sizes
	Ships
	Arcs
	Keywords
	ForceSide
)

// BuildRecords enriches every inventory item. Items missing from the card catalog
// are logged, dropped, and returned as diagnostics.
func BuildRecords(inv inventory.Inventory, c Cards, p Provenance, logger *zap.Logger) (Records, []reconcile.Diagnostic) {
	if logger == nil {
		logger = zap.NewNop()
	}
	records := Records{
		Ships:    []ShipRecord{},
		Pilots:   []PilotRecord{},
		Upgrades: []UpgradeRecord{},
	}
	var diags []reconcile.Diagnostic

	for _, it := range inv.Items() {
		count := inv[it]
		var found bool

		switch it.Kind {
		case item.Ship:
			var r ShipRecord
			if r, found = shipRecord(it, count, c, p); found {
				records.Ships = append(records.Ships, r)
			}
		case item.Pilot:
			var r PilotRecord
			if r, found = pilotRecord(it, count, c, p); found {
				records.Pilots = append(records.Pilots, r)
			}
		case item.Upgrade:
			var r UpgradeRecord
			if r, found = upgradeRecord(it, count, c, p); found {
				records.Upgrades = append(records.Upgrades, r)
			}
		default:
			continue
		}

		if !found {
			d := reconcile.Diagnostic{Kind: reconcile.CardNotFound, Name: it.String()}
			if cards.KnownMissing(it.ID) {
				d.Detail = "known missing"
			}
			logger.Warn("Card not found",
				zap.String("kind", it.Kind.String()),
				zap.String("xws", it.ID),
				zap.Uint32("count", count))
			diags = append(diags, d)
		}
	}

	return records, diags
}

func shipRecord(it item.Item, count uint32, c Cards, p Provenance) (ShipRecord, bool) {
	s, ok := c.Ship(it.ID)
	if !ok {
		return ShipRecord{}, false
	}
	return ShipRecord{
		Name:    s.Name,
		XWS:     s.XWS,
		Count:   count,
		Sources: FormatSources(p, p.SourcesOf(it)),
	}, true
}

func pilotRecord(it item.Item, count uint32, c Cards, p Provenance) (PilotRecord, bool) {
	s, pilot, ok := c.Pilot(it.ID)
	if !ok {
		return PilotRecord{}, false
	}
	faction := s.Faction
	if f, ok := c.Faction(s.Faction); ok {
		faction = f.Name
	}
	return PilotRecord{
		Faction:    faction,
		Ship:       s.Name,
		XWS:        pilot.XWS,
		Name:       pilot.Name,
		Initiative: pilot.Initiative,
		Count:      count,
		Sources:    FormatSources(p, p.SourcesOf(it)),
	}, true
}

func upgradeRecord(it item.Item, count uint32, c Cards, p Provenance) (UpgradeRecord, bool) {
	u, ok := c.Upgrade(it.ID)
	if !ok {
		return UpgradeRecord{}, false
	}
	return UpgradeRecord{
		XWS:                  u.XWS,
		Type:                 u.Type(),
		Name:                 u.Name,
		FactionRestriction:   FormatRestriction(c, u.Restrictions, Factions),
		SizeRestriction:      FormatRestriction(c, u.Restrictions, Sizes),
		ShipRestriction:      FormatRestriction(c, u.Restrictions, Ships),
		ArcRestriction:       FormatRestriction(c, u.Restrictions, Arcs),
		KeywordRestriction:   FormatRestriction(c, u.Restrictions, Keywords),
		ForceSideRestriction: FormatRestriction(c, u.Restrictions, ForceSide),
		Count:                count,
		Sources:              FormatSources(p, p.SourcesOf(it)),
	}, true
}

// FormatSources renders refs as name:sku:waveN:perCopy joined by commas. A SKU
// missing from the catalog renders as unknown with wave 99.
func FormatSources(lookup catalog.Lookup, refs []catalog.SourceRef) string {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		name, wave := "unknown", uint(99)
		if e, ok := lookup.Lookup(ref.SKU); ok {
			name, wave = e.Name, e.Wave
		}
		parts = append(parts, fmt.Sprintf("%s:%s:wave%d:%d", name, ref.SKU, wave, ref.PerCopyCount))
	}
	return strings.Join(parts, ",")
}

// FormatRestriction joins the values of one category across all clauses.
// Factions and ships are shown by display name when the card catalog knows them.
func FormatRestriction(c Cards, clauses []cards.Restrictions, category Restriction) string {
	var parts []string
	for _, clause := range clauses {
		switch category {
		case Factions:
			for _, xws := range clause.Factions {
				if f, ok := c.Faction(xws); ok {
					xws = f.Name
				}
				parts = append(parts, xws)
			}
		case Ships:
			for _, xws := range clause.Ships {
				if s, ok := c.Ship(xws); ok {
					xws = s.Name
				}
				parts = append(parts, xws)
			}
		case Sizes:
			parts = append(parts, clause.Sizes...)
		case Arcs:
			parts = append(parts, clause.Arcs...)
		case Keywords:
			parts = append(parts, clause.Keywords...)
		case ForceSide:
			parts = append(parts, clause.ForceSide...)
		}
	}
	return strings.Join(parts, ",")
}
