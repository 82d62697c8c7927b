// Package cards loads the subset of xwing-data2 needed to describe an inventory:
// ships with their pilots, upgrades with their restrictions, and factions.
//
// Load reads data/manifest.json under the checkout root and then every file the
// manifest lists. Lookups by xws id are index backed; when an id appears more
// than once (a ship flown by several factions), the first file listed wins.
package cards
