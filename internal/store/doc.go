// Package store provides the persistent table holding contact records.
//
// The [Table] interface is the boundary consumed by the local data source.
// Two implementations are provided:
//   - [SQLite]: durable storage in a single SQLite table
//   - [Memory]: a process-local table used to run the table tests without SQLite
//
// # Table Layout
//
// One table, schema version 1:
//
//	contacts(entryId TEXT PRIMARY KEY, name TEXT NOT NULL, mobile TEXT NOT NULL)
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// The table imposes no ordering on scans and no constraint on field contents
// beyond key uniqueness; validation belongs to the editor.
package store
