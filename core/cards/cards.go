package cards

import (
	"context"
	"encoding/json"
	"io"
	"path"

	"xwing-inventory/core/source"

	"golang.org/x/sync/errgroup"
)

// ManifestPath is the location of the manifest relative to the checkout root.
const ManifestPath = "data/manifest.json"

// loadConcurrency bounds the number of data files fetched at once.
const loadConcurrency = 8

// Pilot is one pilot card of a ship.
type Pilot struct {
	Name       string `json:"name"`
	XWS        string `json:"xws"`
	Initiative uint32 `json:"initiative"`
}

// Ship is a ship chassis with the pilots that fly it.
type Ship struct {
	Name    string  `json:"name"`
	XWS     string  `json:"xws"`
	Faction string  `json:"faction"`
	Size    string  `json:"size"`
	Pilots  []Pilot `json:"pilots"`
}

// Side is one face of an upgrade card.
type Side struct {
	Type string `json:"type"`
}

// Restrictions is one clause of an upgrade's restrictions. Within a clause any
// listed value satisfies it.
type Restrictions struct {
	Factions  []string `json:"factions"`
	Sizes     []string `json:"sizes"`
	Ships     []string `json:"ships"`
	Arcs      []string `json:"arcs"`
	Keywords  []string `json:"keywords"`
	ForceSide []string `json:"force_side"`
	Equipped  []string `json:"equipped"`
}

// Upgrade is an upgrade card.
type Upgrade struct {
	Name         string         `json:"name"`
	XWS          string         `json:"xws"`
	Sides        []Side         `json:"sides"`
	Restrictions []Restrictions `json:"restrictions"`
}

// Type returns the slot type printed on the first side.
func (u Upgrade) Type() string {
	if len(u.Sides) == 0 {
		return ""
	}
	return u.Sides[0].Type
}

// Faction maps a faction xws id to its display name.
type Faction struct {
	Name string `json:"name"`
	XWS  string `json:"xws"`
}

// Manifest lists the data files of a checkout.
type Manifest struct {
	Pilots []struct {
		Faction string   `json:"faction"`
		Ships   []string `json:"ships"`
	} `json:"pilots"`
	Upgrades []string `json:"upgrades"`
	Factions []string `json:"factions"`
}

type pilotRef struct {
	ship  int
	pilot int
}

// Data is a loaded xwing-data2 checkout.
type Data struct {
	ships    []Ship
	upgrades []Upgrade
	factions []Faction

	shipIdx    map[string]int
	pilotIdx   map[string]pilotRef
	upgradeIdx map[string]int
	factionIdx map[string]int
}

// New indexes already decoded data.
func New(ships []Ship, upgrades []Upgrade, factions []Faction) *Data {
	d := &Data{
		ships:      ships,
		upgrades:   upgrades,
		factions:   factions,
		shipIdx:    make(map[string]int, len(ships)),
		pilotIdx:   make(map[string]pilotRef),
		upgradeIdx: make(map[string]int, len(upgrades)),
		factionIdx: make(map[string]int, len(factions)),
	}
	for i, s := range ships {
		if _, ok := d.shipIdx[s.XWS]; !ok {
			d.shipIdx[s.XWS] = i
		}
		for j, p := range s.Pilots {
			if _, ok := d.pilotIdx[p.XWS]; !ok {
				d.pilotIdx[p.XWS] = pilotRef{ship: i, pilot: j}
			}
		}
	}
	for i, u := range upgrades {
		if _, ok := d.upgradeIdx[u.XWS]; !ok {
			d.upgradeIdx[u.XWS] = i
		}
	}
	for i, f := range factions {
		if _, ok := d.factionIdx[f.XWS]; !ok {
			d.factionIdx[f.XWS] = i
		}
	}
	return d
}

// Load reads the manifest under root and every file it references. Any missing
// or malformed file fails the load with a *source.LoadError.
func Load(ctx context.Context, src source.Reader, root string) (*Data, error) {
	var m Manifest
	if err := source.Load(ctx, src, path.Join(root, ManifestPath), decodeInto(&m)); err != nil {
		return nil, err
	}

	var shipPaths []string
	for _, f := range m.Pilots {
		shipPaths = append(shipPaths, f.Ships...)
	}

	// Results land in per-file slots so the merged order follows the manifest.
	ships := make([]Ship, len(shipPaths))
	upgrades := make([][]Upgrade, len(m.Upgrades))
	factions := make([][]Faction, len(m.Factions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, p := range shipPaths {
		g.Go(func() error {
			return source.Load(gctx, src, path.Join(root, p), decodeInto(&ships[i]))
		})
	}
	for i, p := range m.Upgrades {
		g.Go(func() error {
			return source.Load(gctx, src, path.Join(root, p), decodeInto(&upgrades[i]))
		})
	}
	for i, p := range m.Factions {
		g.Go(func() error {
			return source.Load(gctx, src, path.Join(root, p), decodeInto(&factions[i]))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(ships, flatten(upgrades), flatten(factions)), nil
}

func decodeInto(v any) func(io.Reader) error {
	return func(r io.Reader) error {
		return json.NewDecoder(r).Decode(v)
	}
}

func flatten[T any](parts [][]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Ship finds a ship by xws id.
func (d *Data) Ship(xws string) (Ship, bool) {
	i, ok := d.shipIdx[xws]
	if !ok {
		return Ship{}, false
	}
	return d.ships[i], true
}

// Pilot finds a pilot and the ship it flies.
func (d *Data) Pilot(xws string) (Ship, Pilot, bool) {
	ref, ok := d.pilotIdx[xws]
	if !ok {
		return Ship{}, Pilot{}, false
	}
	s := d.ships[ref.ship]
	return s, s.Pilots[ref.pilot], true
}

// Upgrade finds an upgrade by xws id.
func (d *Data) Upgrade(xws string) (Upgrade, bool) {
	i, ok := d.upgradeIdx[xws]
	if !ok {
		return Upgrade{}, false
	}
	return d.upgrades[i], true
}

// Faction finds a faction by xws id.
func (d *Data) Faction(xws string) (Faction, bool) {
	i, ok := d.factionIdx[xws]
	if !ok {
		return Faction{}, false
	}
	return d.factions[i], true
}

// Ships returns every loaded ship in manifest order.
func (d *Data) Ships() []Ship {
	return d.ships
}

// Upgrades returns every loaded upgrade in manifest order.
func (d *Data) Upgrades() []Upgrade {
	return d.upgrades
}

// KnownMissing reports ids that are used by products but have no xwing-data2
// entry, mostly epic-only cards.
func KnownMissing(xws string) bool {
	switch xws {
	case "sabinewren-swz93":
		return true
	default:
		return false
	}
}
