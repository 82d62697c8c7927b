// Package yasb reads collection exports from yasb.app.
//
// A YASB collection names expansions and cards by their display names and stores
// counts as strings:
//
//	{
//	  "collection": {
//	    "expansions": {"T-70 X-Wing Expansion Pack": "2"},
//	    "singletons": {
//	      "ship":    {"T-70 X-Wing": "1"},
//	      "pilot":   {"Poe Dameron": "1"},
//	      "upgrade": {"Heroic": "3"}
//	    }
//	  }
//	}
//
// Decode turns the export into a reconcile.Declaration without interpreting any
// name. Object key order is preserved so that duplicate handling downstream is
// deterministic. Singles are declared upgrades first, then pilots, then ships.
package yasb
