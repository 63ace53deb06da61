// Package snapshot provides consistent, read-only access to the
// in-memory keyspace state. It defines lightweight readers that
// enter and exit read epochs safely, ensuring snapshots taken
// during concurrent writes are consistent without locks, and a
// gob-based writer/loader pair for durable checkpoints.
//
// Snapshot is intentionally decoupled from indexing, write-ahead
// logging, and the outbox. It only coordinates read visibility
// using the memory epoch model and the serialized checkpoint
// format.
package snapshot
