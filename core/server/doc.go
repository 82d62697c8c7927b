// Package server holds the HTTP server configuration.
//
// The start command builds the fiber app; this package only defines the port,
// the optional API key and the shutdown timeout, embedded by core/config.
package server
