// Package integrity checks that the inputs of an inventory run are present and
// consistent before anything is reconciled.
//
// # Checks Provided
//
//   - Sources: the expansion catalog, the collection and the xwing-data2 manifest exist.
//   - Cards: every data file named by the xwing-data2 manifest exists.
//   - Catalog: every ship, pilot and upgrade an expansion lists is known to xwing-data2.
//     Ids without upstream data are reported separately as known missing.
//   - Schema: the snapshot tables match their models. Needs a database.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/sources
//   - GET /integrity/cards
//   - GET /integrity/catalog
//   - GET /integrity/schema : 503 without a database.
package integrity
