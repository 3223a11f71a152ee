// Package storage persists a whole database to a single snapshot file and
// reconstructs an equivalent database from it.
//
// The format is a YAML document listing, per table, the name, the ordered
// column schema (name and type), the primary-key column, the unique-column
// set, and all rows in storage order. Snapshots round-trip strictly:
// loading a saved snapshot yields a database with the same tables, schema
// order, constraint metadata, and rows in the same order.
//
// Writes are atomic from a reader's perspective: the payload goes to a
// temporary file in the destination directory and is renamed into place.
// SaveCompressed wraps the payload in snappy behind a magic header, which
// Load detects automatically.
package storage
