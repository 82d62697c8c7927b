// Package config loads the application configuration.
//
// Values come from the environment, optionally seeded from a .env file, with
// defaults taken from the `default` struct tags of every section. Nested keys
// map to upper-case env names, e.g. reconcile.duplicate_policy is read from
// RECONCILE_DUPLICATE_POLICY.
//
// Sections: server, storage, log, database, sources, reconcile, export.
//
//	cfg, err := config.LoadConfig(".")
package config
