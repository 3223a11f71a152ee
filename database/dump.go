package database

import (
	"sort"

	"reldb/schema"
)

// TableDump is a point-in-time copy of one table: schema, constraint
// metadata and rows, detached from the live table.
type TableDump struct {
	Name          string
	Columns       []schema.Column
	PrimaryKey    string
	UniqueColumns []string
	Rows          []Row
}

// Dump copies every table under the read lock, in sorted name order.
// Checksums and snapshots read whole-database state through Dump so they
// never observe a concurrent mutation mid-scan.
func (db *Database) Dump() []TableDump {
	db.mu.RLock()
	defer db.mu.RUnlock()

	names := make([]string, 0, len(db.tables))
	for name := range db.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	dumps := make([]TableDump, 0, len(names))
	for _, name := range names {
		t := db.tables[name]
		d := TableDump{
			Name:          t.Name,
			Columns:       append([]schema.Column(nil), t.Columns...),
			PrimaryKey:    t.PrimaryKey,
			UniqueColumns: append([]string(nil), t.UniqueColumns...),
			Rows:          make([]Row, 0, len(t.rows)),
		}
		for _, row := range t.rows {
			d.Rows = append(d.Rows, row.clone())
		}
		dumps = append(dumps, d)
	}
	return dumps
}
