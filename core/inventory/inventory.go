package inventory

import (
	"math"
	"slices"

	"xwing-inventory/core/catalog"
	"xwing-inventory/core/item"
)

// Inventory is the owned count per component.
type Inventory map[item.Item]uint32

// Aggregate starts from singles and adds, for every owned expansion, its contents
// multiplied by the number of copies owned. SKUs missing from lookup are returned,
// sorted, and contribute nothing.
func Aggregate(singles map[item.Item]uint32, skuCounts map[string]uint32, lookup catalog.Lookup) (Inventory, []string) {
	inv := make(Inventory, len(singles))
	for it, n := range singles {
		if n > 0 {
			inv[it] = n
		}
	}

	var unresolved []string
	for _, sku := range sortedKeys(skuCounts) {
		owned := skuCounts[sku]
		if owned == 0 {
			continue
		}
		expansion, ok := lookup.Lookup(sku)
		if !ok {
			unresolved = append(unresolved, sku)
			continue
		}
		for _, content := range expansion.Contents {
			add := mulSat(owned, content.Count)
			if add == 0 {
				continue
			}
			inv[content.Item] = addSat(inv[content.Item], add)
		}
	}

	return inv, unresolved
}

// ListAllSKUs returns every SKU known to the catalog, for reports that also show
// expansions that are not owned.
func ListAllSKUs(c *catalog.Catalog) []string {
	return c.SKUs()
}

// Items returns the inventory keys in item order.
func (inv Inventory) Items() []item.Item {
	items := make([]item.Item, 0, len(inv))
	for it := range inv {
		items = append(items, it)
	}
	slices.SortFunc(items, item.Compare)
	return items
}

// Total returns the sum of all counts.
func (inv Inventory) Total() uint64 {
	var total uint64
	for _, n := range inv {
		total += uint64(n)
	}
	return total
}

// CountByKind returns the number of distinct components per kind.
func (inv Inventory) CountByKind() map[item.Kind]int {
	out := make(map[item.Kind]int)
	for it := range inv {
		out[it.Kind]++
	}
	return out
}

func sortedKeys(m map[string]uint32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func mulSat(a, b uint32) uint32 {
	p := uint64(a) * uint64(b)
	if p > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(p)
}

func addSat(a, b uint32) uint32 {
	s := uint64(a) + uint64(b)
	if s > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(s)
}
