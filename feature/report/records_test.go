package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"xwing-inventory/core/cards"
	"xwing-inventory/core/catalog"
	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"
	"xwing-inventory/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormatSources(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name string
		refs []catalog.SourceRef
		want string
	}{
		{"None", nil, ""},
		{"One", []catalog.SourceRef{{SKU: "swz25", PerCopyCount: 1}}, "T-70 X-Wing Expansion Pack:swz25:wave1:1"},
		{
			"Many",
			[]catalog.SourceRef{{SKU: "swz25", PerCopyCount: 1}, {SKU: "swz68", PerCopyCount: 2}},
			"T-70 X-Wing Expansion Pack:swz25:wave1:1,Heralds of Hope Expansion Pack:swz68:wave8:2",
		},
		{"Unknown", []catalog.SourceRef{{SKU: "swz999", PerCopyCount: 3}}, "unknown:swz999:wave99:3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSources(cat, tt.refs))
		})
	}
}

func TestFormatRestriction(t *testing.T) {
	c := testCards()
	clauses := []cards.Restrictions{
		{Ships: []string{"t70xwing", "tiefighter"}},
		{},
		{Factions: []string{"resistance", "scumandvillainy"}},
		{Sizes: []string{"Small"}},
		{Sizes: []string{"Medium"}, Arcs: []string{"Rear Arc"}},
		{Keywords: []string{"X-wing"}, ForceSide: []string{"dark"}},
	}

	assert.Equal(t, "T-70 X-wing,tiefighter", FormatRestriction(c, clauses, Ships))
	assert.Equal(t, "Resistance,scumandvillainy", FormatRestriction(c, clauses, Factions))
	assert.Equal(t, "Small,Medium", FormatRestriction(c, clauses, Sizes))
	assert.Equal(t, "Rear Arc", FormatRestriction(c, clauses, Arcs))
	assert.Equal(t, "X-wing", FormatRestriction(c, clauses, Keywords))
	assert.Equal(t, "dark", FormatRestriction(c, clauses, ForceSide))
	assert.Equal(t, "", FormatRestriction(c, nil, Sizes))
}

func TestBuildRecords(t *testing.T) {
	cat := testCatalog(t)
	core, logs := observer.New(zap.WarnLevel)

	inv := inventory.Inventory{
		item.New(item.Ship, "t70xwing"):            3,
		item.New(item.Pilot, "poedameron"):         1,
		item.New(item.Upgrade, "heroic"):           3,
		item.New(item.Upgrade, "integratedsfoils"): 1,
		item.New(item.Pilot, "sabinewren-swz93"):   1,
		item.New(item.Upgrade, "nosuchcard"):       2,
		item.New(item.Obstacle, "asteroid1"):       6,
	}

	records, diags := BuildRecords(inv, testCards(), cat, zap.New(core))

	require.Len(t, records.Ships, 1)
	assert.Equal(t, ShipRecord{
		Name:    "T-70 X-wing",
		XWS:     "t70xwing",
		Count:   3,
		Sources: "T-70 X-Wing Expansion Pack:swz25:wave1:1,Heralds of Hope Expansion Pack:swz68:wave8:2",
	}, records.Ships[0])

	require.Len(t, records.Pilots, 1)
	assert.Equal(t, PilotRecord{
		Faction:    "Resistance",
		Ship:       "T-70 X-wing",
		XWS:        "poedameron",
		Name:       "Poe Dameron",
		Initiative: 6,
		Count:      1,
		Sources:    "T-70 X-Wing Expansion Pack:swz25:wave1:1",
	}, records.Pilots[0])

	require.Len(t, records.Upgrades, 2)
	assert.Equal(t, "heroic", records.Upgrades[0].XWS)
	assert.Equal(t, "Talent", records.Upgrades[0].Type)
	assert.Equal(t, "Resistance", records.Upgrades[0].FactionRestriction)
	sfoils := records.Upgrades[1]
	assert.Equal(t, "T-70 X-wing,T-65 X-wing", sfoils.ShipRestriction)
	assert.Equal(t, "Small", sfoils.SizeRestriction)
	assert.Equal(t, "light", sfoils.ForceSideRestriction)
	assert.Empty(t, sfoils.Sources)

	assert.Equal(t, []reconcile.Diagnostic{
		{Kind: reconcile.CardNotFound, Name: "pilot:sabinewren-swz93", Detail: "known missing"},
		{Kind: reconcile.CardNotFound, Name: "upgrade:nosuchcard"},
	}, diags)
	assert.Equal(t, 2, logs.FilterMessage("Card not found").Len())
}

func TestBuildRecordsEmpty(t *testing.T) {
	records, diags := BuildRecords(inventory.Inventory{}, testCards(), testCatalog(t), nil)
	assert.Empty(t, diags)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, records))
	assert.JSONEq(t, `{"ships":[],"pilots":[],"upgrades":[]}`, buf.String())
}

func TestWriteJSON(t *testing.T) {
	records := Records{
		Ships:    []ShipRecord{{Name: "T-70 X-wing", XWS: "t70xwing", Count: 2}},
		Pilots:   []PilotRecord{},
		Upgrades: []UpgradeRecord{},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, records))

	var got map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got["ships"], 1)
	_, hasSources := got["ships"][0]["sources"]
	assert.False(t, hasSources)
	assert.Contains(t, buf.String(), "\n  \"ships\"")
}
