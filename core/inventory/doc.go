// Package inventory merges expansion ownership and single items into one count per
// component.
//
// Aggregate is the only place where counts are multiplied and summed. The result
// does not depend on the order in which SKUs are visited.
package inventory
