package reconcile

import (
	"fmt"

	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"
)

// Entry is a declared display name and its raw count.
type Entry struct {
	Name  string
	Count string
}

// SingleEntry is an Entry for an individually owned component.
type SingleEntry struct {
	Kind item.Kind
	Entry
}

// Declaration is a parsed ownership declaration. Entries keep the order in which
// they appear in the source document.
type Declaration struct {
	Expansions []Entry
	Singles    []SingleEntry
}

// DiagnosticKind classifies a non-fatal reconciliation problem.
type DiagnosticKind string

const (
	// UnresolvedExpansionName means a declared expansion name matched no catalog entry.
	UnresolvedExpansionName DiagnosticKind = "unresolved_expansion_name"
	// UnknownSKU means a resolved SKU is not in the catalog.
	UnknownSKU DiagnosticKind = "unknown_sku"
	// DuplicateSingleName means two single entries resolved to the same item.
	DuplicateSingleName DiagnosticKind = "duplicate_single_name"
	// CardNotFound means an inventory item is missing from the card catalog.
	CardNotFound DiagnosticKind = "card_not_found"
)

// Diagnostic describes one non-fatal problem.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`
	// Name is the offending display name, SKU or item.
	Name string `json:"name"`
	// Detail is optional context, e.g. the item a duplicate resolved to.
	Detail string `json:"detail,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Name)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Name, d.Detail)
}

// CountError reports a declared count that is not a decimal uint32.
type CountError struct {
	Name  string
	Value string
	Err   error
}

func (e *CountError) Error() string {
	return fmt.Sprintf("invalid count %q for %q: %v", e.Value, e.Name, e.Err)
}

func (e *CountError) Unwrap() error {
	return e.Err
}

// DuplicatePolicy decides how repeated single items are handled.
type DuplicatePolicy string

const (
	// KeepFirst keeps the first declared entry and drops later ones.
	KeepFirst DuplicatePolicy = "first"
	// Sum adds the counts of all entries for the item.
	Sum DuplicatePolicy = "sum"
)

// ParseDuplicatePolicy validates a configured policy name. Empty selects KeepFirst.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "", KeepFirst:
		return KeepFirst, nil
	case Sum:
		return Sum, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q (want %q or %q)", s, KeepFirst, Sum)
	}
}

// Summary provides aggregate counts for a run.
type Summary struct {
	DeclaredExpansions   int    `json:"declared_expansions"`
	ResolvedExpansions   int    `json:"resolved_expansions"`
	UnresolvedExpansions int    `json:"unresolved_expansions"`
	UnknownSKUs          int    `json:"unknown_skus"`
	DeclaredSingles      int    `json:"declared_singles"`
	ResolvedSingles      int    `json:"resolved_singles"`
	DuplicateSingles     int    `json:"duplicate_singles"`
	UniqueItems          int    `json:"unique_items"`
	TotalItems           uint64 `json:"total_items"`
}

// Result is the outcome of a reconciliation run.
type Result struct {
	// Singles are the resolved single items.
	Singles map[item.Item]uint32 `json:"-"`
	// SKUs are the owned expansion counts by SKU.
	SKUs map[string]uint32 `json:"skus"`
	// Inventory is the aggregated owned count per item.
	Inventory inventory.Inventory `json:"-"`
	// Diagnostics lists every non-fatal problem in the order found.
	Diagnostics []Diagnostic `json:"diagnostics"`
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// DiagnosticsOf returns the diagnostics of one kind.
func (r *Result) DiagnosticsOf(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
