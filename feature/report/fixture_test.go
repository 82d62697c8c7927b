package report

import (
	"testing"

	"xwing-inventory/core/cards"
	"xwing-inventory/core/catalog"
	"xwing-inventory/core/item"

	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load([]catalog.Expansion{
		{
			SKU: "swz25", Name: "T-70 X-Wing Expansion Pack", Wave: 1,
			Contents: []item.ItemCount{
				{Item: item.New(item.Ship, "t70xwing"), Count: 1},
				{Item: item.New(item.Pilot, "poedameron"), Count: 1},
				{Item: item.New(item.Upgrade, "heroic"), Count: 1},
			},
		},
		{
			SKU: "swz68", Name: "Heralds of Hope Expansion Pack", Wave: 8,
			Contents: []item.ItemCount{
				{Item: item.New(item.Ship, "t70xwing"), Count: 2},
				{Item: item.New(item.Upgrade, "heroic"), Count: 2},
			},
		},
		{SKU: "swz01", Name: "Core Set", Wave: 0},
	})
	require.NoError(t, err)
	return cat
}

func testCards() *cards.Data {
	return cards.New(
		[]cards.Ship{
			{
				Name: "T-70 X-wing", XWS: "t70xwing", Faction: "resistance", Size: "Small",
				Pilots: []cards.Pilot{{Name: "Poe Dameron", XWS: "poedameron", Initiative: 6}},
			},
			{Name: "T-65 X-wing", XWS: "t65xwing", Faction: "rebelalliance", Size: "Small"},
		},
		[]cards.Upgrade{
			{
				Name: "Heroic", XWS: "heroic", Sides: []cards.Side{{Type: "Talent"}},
				Restrictions: []cards.Restrictions{{Factions: []string{"resistance"}}},
			},
			{
				Name: "Integrated S-foils", XWS: "integratedsfoils", Sides: []cards.Side{{Type: "Configuration"}},
				Restrictions: []cards.Restrictions{
					{Ships: []string{"t70xwing", "t65xwing"}},
					{Sizes: []string{"Small"}},
					{ForceSide: []string{"light"}},
				},
			},
		},
		[]cards.Faction{{Name: "Resistance", XWS: "resistance"}},
	)
}
