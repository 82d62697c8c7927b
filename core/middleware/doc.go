// Package middleware groups the fiber middleware of the HTTP server.
//
//   - rayid: tags every request with a ray id, on Locals and the X-Ray-ID header.
//   - auth: rejects requests without the configured X-API-Key.
//
// Register rayid first so auth failures are traced too.
package middleware
