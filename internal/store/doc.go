// Package store provides SQLite-backed storage for IR documents.
//
// The store is append-only and content-addressed:
//   - Distributions: the encoded document, keyed by its content id
//   - Modules: one row per module, with access, doc, member counts and a
//     per-module content hash
//   - Imports: module-to-module dependencies derived from references
//
// # Identity and Ordering
//
//   - A distribution's id is wire.ContentID of its encoded document, so
//     storing equal content twice returns the first record unchanged
//   - Every stored distribution also gets an import id (UUIDv7 by default)
//   - All ordering uses seq INTEGER, never timestamps, and every query
//     ends with ORDER BY seq ASC, id COLLATE BINARY ASC or an equivalent
//     total order
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
