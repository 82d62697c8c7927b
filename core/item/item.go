package item

import (
	"encoding/json"
	"fmt"
)

// Kind is the category of a component.
type Kind uint8

const (
	Ship Kind = iota
	Obstacle
	Pilot
	Upgrade
	Damage
)

var kindNames = [...]string{
	Ship:     "ship",
	Obstacle: "obstacle",
	Pilot:    "pilot",
	Upgrade:  "upgrade",
	Damage:   "damage",
}

// Kinds lists every kind in declaration order.
var Kinds = []Kind{Ship, Obstacle, Pilot, Upgrade, Damage}

// String returns the serialized name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind converts a serialized kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown item type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown item kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Item identifies a component by kind and xws id.
type Item struct {
	Kind Kind   `json:"type"`
	ID   string `json:"xws"`
}

// New returns an Item.
func New(kind Kind, id string) Item {
	return Item{Kind: kind, ID: id}
}

// String renders the item as kind:id.
func (i Item) String() string {
	return i.Kind.String() + ":" + i.ID
}

// Less orders items by kind, then id.
func Less(a, b Item) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.ID < b.ID
}

// Compare is the three-way form of Less, for slices.SortFunc.
func Compare(a, b Item) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

// ItemCount associates an item with a quantity.
type ItemCount struct {
	Item  Item
	Count uint32
}

type itemCountJSON struct {
	Type  Kind   `json:"type"`
	XWS   string `json:"xws"`
	Count uint32 `json:"count"`
}

// MarshalJSON writes the flat {type, xws, count} form.
func (c ItemCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemCountJSON{Type: c.Item.Kind, XWS: c.Item.ID, Count: c.Count})
}

// UnmarshalJSON reads the flat {type, xws, count} form.
func (c *ItemCount) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  *Kind  `json:"type"`
		XWS   string `json:"xws"`
		Count uint32 `json:"count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type == nil {
		return fmt.Errorf("item %q has no type", raw.XWS)
	}
	if raw.XWS == "" {
		return fmt.Errorf("item of type %s has no xws id", *raw.Type)
	}
	c.Item = Item{Kind: *raw.Type, ID: raw.XWS}
	c.Count = raw.Count
	return nil
}
