package yasb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"xwing-inventory/core/item"
	"xwing-inventory/core/reconcile"
	"xwing-inventory/core/source"
	"xwing-inventory/core/utils"

	"github.com/iancoleman/orderedmap"
)

// Singletons holds the individually owned ships, pilots and upgrades.
type Singletons struct {
	Ship    *orderedmap.OrderedMap `json:"ship"`
	Pilot   *orderedmap.OrderedMap `json:"pilot"`
	Upgrade *orderedmap.OrderedMap `json:"upgrade"`
}

// Collection is the body of a YASB export.
type Collection struct {
	Expansions *orderedmap.OrderedMap `json:"expansions"`
	Singletons *Singletons            `json:"singletons"`
}

// File is the export envelope: an object with a single collection field.
type File struct {
	Collection *Collection `json:"collection"`
}

// Decode parses a YASB export into a declaration.
func Decode(r io.Reader) (reconcile.Declaration, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return reconcile.Declaration{}, fmt.Errorf("failed to parse yasb collection: %w", err)
	}
	if f.Collection == nil {
		return reconcile.Declaration{}, fmt.Errorf("failed to parse yasb collection: missing collection field")
	}
	return f.Collection.Declaration()
}

// Load reads and decodes the export stored under name.
func Load(ctx context.Context, src source.Reader, name string) (reconcile.Declaration, error) {
	var decl reconcile.Declaration
	err := source.Load(ctx, src, name, func(r io.Reader) error {
		var err error
		decl, err = Decode(r)
		return err
	})
	return decl, err
}

// Declaration flattens the collection in document order.
func (c *Collection) Declaration() (reconcile.Declaration, error) {
	var decl reconcile.Declaration

	expansions, err := entries(c.Expansions)
	if err != nil {
		return decl, fmt.Errorf("expansions: %w", err)
	}
	decl.Expansions = expansions

	if c.Singletons == nil {
		return decl, nil
	}

	groups := []struct {
		kind item.Kind
		m    *orderedmap.OrderedMap
	}{
		{item.Upgrade, c.Singletons.Upgrade},
		{item.Pilot, c.Singletons.Pilot},
		{item.Ship, c.Singletons.Ship},
	}
	for _, g := range groups {
		es, err := entries(g.m)
		if err != nil {
			return decl, fmt.Errorf("singletons.%s: %w", g.kind, err)
		}
		for _, e := range es {
			decl.Singles = append(decl.Singles, reconcile.SingleEntry{Kind: g.kind, Entry: e})
		}
	}
	return decl, nil
}

func entries(m *orderedmap.OrderedMap) ([]reconcile.Entry, error) {
	if m == nil {
		return nil, nil
	}
	keys := m.Keys()
	out := make([]reconcile.Entry, 0, len(keys))
	for _, k := range keys {
		v, _ := m.Get(k)
		switch v.(type) {
		case string, float64:
		default:
			return nil, fmt.Errorf("count for %q is not a string or number", k)
		}
		out = append(out, reconcile.Entry{Name: k, Count: utils.ToString(v)})
	}
	return out, nil
}
