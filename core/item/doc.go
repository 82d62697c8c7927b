// Package item defines the identity of a collectible component.
//
// An Item is the pair (Kind, ID) where ID is the community xws identifier of the
// component. Items carry no display data; ships, pilots and upgrades are looked up
// in the card catalog (core/cards) when a report is assembled.
//
// # Serialized Form
//
// Expansion contents use a flat object per entry:
//
//	{"type": "pilot", "xws": "poedameron", "count": 1}
//
// Kind values are the lowercase words ship, obstacle, pilot, upgrade and damage.
package item
