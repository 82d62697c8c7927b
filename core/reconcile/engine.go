package reconcile

import (
	"math"

	"xwing-inventory/core/catalog"
	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"
	"xwing-inventory/core/names"
	"xwing-inventory/core/utils"

	"go.uber.org/zap"
)

// ItemResolver maps a display name of a given kind to an item.
type ItemResolver interface {
	Item(name string, kind item.Kind) item.Item
}

// Options controls a reconciliation run.
type Options struct {
	// Resolver resolves single item names. Nil selects the default name table.
	Resolver ItemResolver
	// Policy decides how duplicate singles are merged. Empty selects KeepFirst.
	Policy DuplicatePolicy
	// Logger receives one warning per diagnostic. Nil disables logging.
	Logger *zap.Logger
}

// ResolveSingles resolves every single entry with a non-zero count. Entries that
// resolve to an item already seen are handled according to policy.
func ResolveSingles(decl Declaration, resolver ItemResolver, policy DuplicatePolicy) (map[item.Item]uint32, []Diagnostic, error) {
	singles := make(map[item.Item]uint32)
	var diags []Diagnostic

	for _, entry := range decl.Singles {
		n, err := utils.ParseCount(entry.Count)
		if err != nil {
			return nil, nil, &CountError{Name: entry.Name, Value: entry.Count, Err: err}
		}
		if n == 0 {
			continue
		}

		it := resolver.Item(entry.Name, entry.Kind)
		if existing, seen := singles[it]; seen {
			diags = append(diags, Diagnostic{
				Kind:   DuplicateSingleName,
				Name:   entry.Name,
				Detail: it.String(),
			})
			if policy == Sum {
				singles[it] = addSat(existing, n)
			}
			continue
		}
		singles[it] = n
	}

	return singles, diags, nil
}

// ResolveSKUs matches every expansion entry with a non-zero count to a SKU.
// Names that match nothing are returned in declaration order. Two names that
// match the same SKU add their counts.
func ResolveSKUs(decl Declaration, matcher catalog.NameMatcher) (map[string]uint32, []string, error) {
	skus := make(map[string]uint32)
	var unresolved []string

	for _, entry := range decl.Expansions {
		n, err := utils.ParseCount(entry.Count)
		if err != nil {
			return nil, nil, &CountError{Name: entry.Name, Value: entry.Count, Err: err}
		}
		if n == 0 {
			continue
		}

		expansion, ok := matcher.FindByName(entry.Name)
		if !ok {
			unresolved = append(unresolved, entry.Name)
			continue
		}
		skus[expansion.SKU] = addSat(skus[expansion.SKU], n)
	}

	return skus, unresolved, nil
}

// Run resolves decl against the catalog and aggregates the inventory.
func Run(decl Declaration, cat *catalog.Catalog, opts Options) (*Result, error) {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = names.NewResolver(nil)
	}
	policy := opts.Policy
	if policy == "" {
		policy = KeepFirst
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	skus, unresolvedNames, err := ResolveSKUs(decl, cat)
	if err != nil {
		return nil, err
	}

	singles, diags, err := ResolveSingles(decl, resolver, policy)
	if err != nil {
		return nil, err
	}

	inv, unknownSKUs := inventory.Aggregate(singles, skus, cat)

	result := &Result{
		Singles:   singles,
		SKUs:      skus,
		Inventory: inv,
	}
	for _, name := range unresolvedNames {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{Kind: UnresolvedExpansionName, Name: name})
	}
	for _, sku := range unknownSKUs {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{Kind: UnknownSKU, Name: sku})
	}
	result.Diagnostics = append(result.Diagnostics, diags...)

	result.Summary = Summary{
		DeclaredExpansions:   len(decl.Expansions),
		ResolvedExpansions:   len(skus) - len(unknownSKUs),
		UnresolvedExpansions: len(unresolvedNames),
		UnknownSKUs:          len(unknownSKUs),
		DeclaredSingles:      len(decl.Singles),
		ResolvedSingles:      len(singles),
		DuplicateSingles:     len(diags),
		UniqueItems:          len(inv),
		TotalItems:           inv.Total(),
	}

	for _, d := range result.Diagnostics {
		logger.Warn("Reconcile diagnostic",
			zap.String("kind", string(d.Kind)),
			zap.String("name", d.Name),
			zap.String("detail", d.Detail),
		)
	}

	return result, nil
}

func addSat(a, b uint32) uint32 {
	s := uint64(a) + uint64(b)
	if s > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(s)
}
