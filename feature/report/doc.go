// Package report turns an aggregated inventory into display records, a JSON
// document, a spreadsheet, and HTTP endpoints.
//
// # Records
//
// BuildRecords looks every inventory item up in the card catalog and combines
// the card's display fields with the owned count and a provenance string. Items
// the card catalog does not know are dropped and reported as card_not_found
// diagnostics. Obstacles and damage cards have no record type and are skipped.
//
// Provenance lists every expansion that contains the item:
//
//	T-70 X-Wing Expansion Pack:swz25:wave1:1,Resistance Conversion Kit:swz20:wave1:2
//
// # Spreadsheet
//
// NewWorkbook renders an Expansions sheet holding the ExpansionLookup table and
// one sheet per record kind. Totals are formulas over the lookup table so that
// editing an Owned cell updates every derived count.
//
// # Endpoints
//
//   - GET  /inventory                     records
//   - GET  /inventory/diagnostics         diagnostics and summary
//   - GET  /inventory/expansions?all=true owned (or all) expansions
//   - GET  /inventory/sources/:kind/:id   provenance of one item
//   - GET  /inventory/workbook?all=true   xlsx download
//   - POST /inventory/refresh             drop the cached report
package report
