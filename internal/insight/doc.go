// Package insight holds the two read-only derived views over the tracker:
// a cross-entity text search and the statistics dashboard.
//
// Both fan their independent reads out concurrently and join on all of
// them before merging. The fan-out is all-or-nothing: if any read fails the
// whole operation fails with a StorageError and no partial result is
// returned.
package insight
