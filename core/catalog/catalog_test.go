package catalog

import (
	"errors"
	"strings"
	"testing"

	"xwing-inventory/core/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expansionsJSON = `[
  {
    "name": "T-70 X-Wing Expansion Pack",
    "sku": "swz25",
    "wave": 1,
    "contents": [
      {"count": 1, "type": "ship", "xws": "t70xwing"},
      {"count": 1, "type": "pilot", "xws": "poedameron"},
      {"count": 1, "type": "upgrade", "xws": "blackone"},
      {"count": 1, "type": "upgrade", "xws": "bb8"}
    ]
  },
  {
    "name": "Resistance Conversion Kit",
    "sku": "swz18",
    "wave": 1,
    "contents": [
      {"count": 2, "type": "pilot", "xws": "poedameron"},
      {"count": 3, "type": "upgrade", "xws": "bb8"}
    ]
  },
  {
    "name": "Unreleased for 2nd Edition",
    "sku": "swzunreleased"
  }
]`

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Decode(strings.NewReader(expansionsJSON))
	require.NoError(t, err)
	return c
}

func TestDecode(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"swz25", "swz18", "swzunreleased"}, c.SKUs())

	e, ok := c.Lookup("swz25")
	require.True(t, ok)
	assert.Equal(t, "T-70 X-Wing Expansion Pack", e.Name)
	assert.Equal(t, uint(1), e.Wave)
	assert.Len(t, e.Contents, 4)

	empty, ok := c.Lookup("swzunreleased")
	require.True(t, ok)
	assert.Empty(t, empty.Contents)

	_, ok = c.Lookup("swz99")
	assert.False(t, ok)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"sku": "swz01"}`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`[{"sku": "swz01", "contents": [{"type": "crew", "xws": "x", "count": 1}]}]`))
	assert.Error(t, err)
}

func TestLoad_DuplicateSKU(t *testing.T) {
	c, err := Load([]Expansion{
		{SKU: "swz01", Name: "Core Set"},
		{SKU: "swz02", Name: "Something Else"},
		{SKU: "swz01", Name: "Core Set Reprint"},
	})

	assert.Nil(t, c)
	var dup *DuplicateSKUError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "swz01", dup.SKU)
	assert.Equal(t, "duplicate sku: swz01", err.Error())
}

func TestSourcesOf(t *testing.T) {
	c := loadTestCatalog(t)

	t.Run("PerCopyCounts", func(t *testing.T) {
		assert.Equal(t, []SourceRef{
			{SKU: "swz25", PerCopyCount: 1},
			{SKU: "swz18", PerCopyCount: 3},
		}, c.SourcesOf(item.New(item.Upgrade, "bb8")))
	})

	t.Run("SingleSource", func(t *testing.T) {
		assert.Equal(t, []SourceRef{{SKU: "swz25", PerCopyCount: 1}}, c.SourcesOf(item.New(item.Ship, "t70xwing")))
	})

	t.Run("KindMatters", func(t *testing.T) {
		assert.Empty(t, c.SourcesOf(item.New(item.Pilot, "bb8")))
		assert.False(t, c.HasItem(item.New(item.Pilot, "bb8")))
		assert.True(t, c.HasItem(item.New(item.Upgrade, "bb8")))
	})
}

func TestFindByName(t *testing.T) {
	c := loadTestCatalog(t)

	e, ok := c.FindByName("T-70 X-Wing Expansion Pack")
	require.True(t, ok)
	assert.Equal(t, "swz25", e.SKU)

	_, ok = c.FindByName("t-70 x-wing expansion pack")
	assert.False(t, ok)

	_, ok = c.FindByName("T-70 X-Wing Expansion Pack ")
	assert.False(t, ok)

	t.Run("FirstLoadedWins", func(t *testing.T) {
		c, err := Load([]Expansion{
			{SKU: "a", Name: "Same"},
			{SKU: "b", Name: "Same"},
		})
		require.NoError(t, err)
		e, ok := c.FindByName("Same")
		require.True(t, ok)
		assert.Equal(t, "a", e.SKU)
	})
}

func TestExpansions(t *testing.T) {
	c := loadTestCatalog(t)
	list := c.Expansions()
	require.Len(t, list, 3)
	assert.Equal(t, "swz18", list[1].SKU)
}
