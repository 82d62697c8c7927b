package snapshot

import (
	"slices"

	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"
)

// Change is the difference in owned count for one item.
type Change struct {
	Item   item.Item `json:"item"`
	Before uint32    `json:"before"`
	After  uint32    `json:"after"`
}

// Delta is After minus Before.
func (c Change) Delta() int64 {
	return int64(c.After) - int64(c.Before)
}

// Compare lists every item whose count differs between before and after, in
// item order.
func Compare(before, after inventory.Inventory) []Change {
	var changes []Change
	for it, n := range after {
		if before[it] != n {
			changes = append(changes, Change{Item: it, Before: before[it], After: n})
		}
	}
	for it, n := range before {
		if _, ok := after[it]; !ok {
			changes = append(changes, Change{Item: it, Before: n})
		}
	}
	slices.SortFunc(changes, func(a, b Change) int {
		return item.Compare(a.Item, b.Item)
	})
	return changes
}
