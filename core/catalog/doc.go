// Package catalog holds the list of known retail expansions.
//
// Expansions are identified by their (US) SKU. Names are free text and are only
// used to match the display names found in yasb collections, which is why
// FindByName is an exact, case-sensitive comparison.
//
// # Indices
//
// Load builds, once, a SKU index and a reverse provenance index from each item to
// the expansions that contain it (SourcesOf). Both are read-only afterwards and safe
// to share between goroutines.
//
// # Source Format
//
//	[
//	  {
//	    "name": "T-70 X-Wing Expansion Pack",
//	    "sku": "swz25",
//	    "wave": 1,
//	    "contents": [
//	      {"count": 1, "type": "ship", "xws": "t70xwing"},
//	      {"count": 1, "type": "pilot", "xws": "poedameron"}
//	    ]
//	  },
//	  {"name": "Unreleased for 2nd Edition", "sku": "swzunreleased"}
//	]
//
// Keeping the catalog as a list rather than an object keyed by SKU keeps the source
// file easy to sort by hand.
package catalog
