package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"xwing-inventory/core/item"
)

// Expansion is a retail product and its contents.
type Expansion struct {
	SKU      string           `json:"sku"`
	Name     string           `json:"name"`
	Wave     uint             `json:"wave"`
	Contents []item.ItemCount `json:"contents"`
}

// SourceRef names an expansion that contains an item and how many copies of the
// item one copy of the expansion holds.
type SourceRef struct {
	SKU          string `json:"sku"`
	PerCopyCount uint32 `json:"per_copy_count"`
}

// DuplicateSKUError is returned by Load when two expansions share a SKU.
type DuplicateSKUError struct {
	SKU string
}

func (e *DuplicateSKUError) Error() string {
	return fmt.Sprintf("duplicate sku: %s", e.SKU)
}

// Catalog indexes expansions by SKU and items by the expansions that supply them.
type Catalog struct {
	bySKU         map[string]Expansion
	byName        map[string]string
	sourcesByItem map[item.Item][]SourceRef
	order         []string
}

// NameMatcher finds an expansion from a collection display name.
type NameMatcher interface {
	FindByName(name string) (Expansion, bool)
}

// Lookup finds an expansion by SKU.
type Lookup interface {
	Lookup(sku string) (Expansion, bool)
}

// Load builds a catalog from expansions in order. A repeated SKU fails the whole
// load and no catalog is returned.
func Load(expansions []Expansion) (*Catalog, error) {
	c := &Catalog{
		bySKU:         make(map[string]Expansion, len(expansions)),
		byName:        make(map[string]string, len(expansions)),
		sourcesByItem: make(map[item.Item][]SourceRef),
		order:         make([]string, 0, len(expansions)),
	}

	for _, e := range expansions {
		if _, exists := c.bySKU[e.SKU]; exists {
			return nil, &DuplicateSKUError{SKU: e.SKU}
		}
		c.bySKU[e.SKU] = e
		c.order = append(c.order, e.SKU)

		// First expansion with a given name wins, as a linear scan would.
		if _, exists := c.byName[e.Name]; !exists {
			c.byName[e.Name] = e.SKU
		}

		for _, content := range e.Contents {
			c.sourcesByItem[content.Item] = append(c.sourcesByItem[content.Item], SourceRef{
				SKU:          e.SKU,
				PerCopyCount: content.Count,
			})
		}
	}

	return c, nil
}

// Decode reads a JSON expansion list and loads it.
func Decode(r io.Reader) (*Catalog, error) {
	var list []Expansion
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode expansions: %w", err)
	}
	return Load(list)
}

// Lookup returns the expansion with the given SKU.
func (c *Catalog) Lookup(sku string) (Expansion, bool) {
	e, ok := c.bySKU[sku]
	return e, ok
}

// SourcesOf returns the expansions containing it, in catalog order, with per-copy
// quantities. The returned slice must not be modified.
func (c *Catalog) SourcesOf(it item.Item) []SourceRef {
	return c.sourcesByItem[it]
}

// FindByName returns the expansion whose name is exactly name.
func (c *Catalog) FindByName(name string) (Expansion, bool) {
	sku, ok := c.byName[name]
	if !ok {
		return Expansion{}, false
	}
	return c.bySKU[sku], true
}

// HasItem reports whether any expansion contains it.
func (c *Catalog) HasItem(it item.Item) bool {
	return len(c.sourcesByItem[it]) > 0
}

// SKUs returns every SKU in load order.
func (c *Catalog) SKUs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Expansions returns every expansion in load order.
func (c *Catalog) Expansions() []Expansion {
	out := make([]Expansion, 0, len(c.order))
	for _, sku := range c.order {
		out = append(out, c.bySKU[sku])
	}
	return out
}

// Len returns the number of expansions.
func (c *Catalog) Len() int {
	return len(c.order)
}
