// Package store persists the history of generation runs.
//
// The package defines the [Store] interface with two backends:
//   - BoltDB (default), an embedded key-value store
//   - SQLite via the pure Go modernc.org/sqlite driver
//
// Use [Open] with the configured backend name:
//
//	s, err := store.Open(config.BackendBolt, path)
//	runs, err := s.ListRuns(10)
package store
