// Package loader registers HTTP features on the fiber app.
//
// Each feature implements Feature. The Manager loads enabled features in
// registration order and skips the rest, so optional features such as
// snapshots can report themselves disabled when their database is missing.
package loader
