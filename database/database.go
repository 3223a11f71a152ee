package database

import (
	"sort"
	"sync"

	"reldb/schema"
)

// Database owns a name-keyed collection of tables and exposes the public
// operation surface. Table names are case-sensitive identifiers.
//
// Operations are synchronous call-and-return; the mutex lets a surrounding
// server share one instance across requests, it does not make individual
// statements composable into transactions.
type Database struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// New creates an empty database.
func New() *Database {
	return &Database{tables: make(map[string]*Table)}
}

// CreateTable creates a table with the given ordered columns, optional
// primary key (empty string means none) and UNIQUE columns. Fails if the
// name is taken, a column name repeats, or a constraint names an unknown
// column.
func (db *Database) CreateTable(name string, columns []schema.Column, primaryKey string, uniqueColumns []string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.tables[name]; exists {
		return &TableExistsError{Table: name}
	}
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if seen[col.Name] {
			return &DuplicateColumnError{Table: name, Column: col.Name}
		}
		seen[col.Name] = true
	}
	if primaryKey != "" && !seen[primaryKey] {
		return &schema.ColumnNotFoundError{Table: name, Column: primaryKey}
	}
	for _, col := range uniqueColumns {
		if !seen[col] {
			return &schema.ColumnNotFoundError{Table: name, Column: col}
		}
	}

	db.tables[name] = newTable(name, columns, primaryKey, uniqueColumns)
	return nil
}

// GetTable returns the named table.
func (db *Database) GetTable(name string) (*Table, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.table(name)
}

// table looks up a table with the lock already held.
func (db *Database) table(name string) (*Table, error) {
	t, exists := db.tables[name]
	if !exists {
		return nil, &TableNotFoundError{Table: name}
	}
	return t, nil
}

// TableNames returns the table names in sorted order.
func (db *Database) TableNames() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := make([]string, 0, len(db.tables))
	for name := range db.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
