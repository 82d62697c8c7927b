// Package reconcile turns a raw ownership declaration into a canonical inventory.
//
// A declaration lists expansions by display name and single items by kind and
// display name, each with a string count. Reconciliation runs in two stages:
//
//  1. Resolve: expansion names are matched against the expansion catalog to obtain
//     SKUs (ResolveSKUs) and single item names are resolved to xws ids
//     (ResolveSingles).
//  2. Aggregate: SKU counts are expanded into their contents and merged with the
//     singles (core/inventory).
//
// # Failure Model
//
// Only structural problems are fatal: an unparseable count aborts the run with a
// CountError. Everything that fails to resolve (an unknown expansion name, a SKU
// missing from the catalog, a repeated single) becomes a Diagnostic on the Result
// and contributes nothing to the inventory.
//
// # Duplicate Singles
//
// Two display names can resolve to the same item. DuplicatePolicy decides what
// happens: KeepFirst (the default) keeps the entry that appears first in the
// declaration, Sum adds both counts. Either way a DuplicateSingleName diagnostic
// is recorded.
//
// # Caching
//
// Cache keeps built values for a TTL and collapses concurrent rebuilds with
// singleflight, so the HTTP server can serve repeated requests without reloading
// every source.
//
// # Usage Example
//
//	result, err := reconcile.Run(decl, expansions, reconcile.Options{
//	    Resolver: names.NewResolver(nil),
//	    Policy:   reconcile.KeepFirst,
//	    Logger:   logger,
//	})
//	if err != nil {
//	    return err
//	}
//	for _, d := range result.Diagnostics {
//	    fmt.Println(d)
//	}
package reconcile
