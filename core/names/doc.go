// Package names turns vendor display names into xws ids.
//
// Collection exports from yasb.app key cards and ships by their display name
// ("Poe Dameron (YT-1300)"). Canonicalize strips those names down to the xws
// alphabet, and Resolve applies the hand-maintained exceptions: literal names that
// collide with a current component, renamed pilots and upgrades, and first-edition
// ship names that yasb still reports.
//
// The exception data lives in overrides.yaml, embedded at build time and parsed once.
// Resolve never checks that the returned id exists; unknown ids surface later as
// card catalog misses.
//
// # Usage
//
//	id := names.Resolve("Poe Dameron (YT-1300)", item.Pilot) // "poedameron-scavengedyt1300"
package names
