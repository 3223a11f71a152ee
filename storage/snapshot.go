package storage

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"reldb/database"
	"reldb/schema"
)

// snappyMagic prefixes compressed snapshot files. Plain snapshots are YAML
// documents and can never start with these bytes.
var snappyMagic = []byte{'R', 'D', 'B', 'S'}

// fileDatabase is the on-disk shape of a whole database. The format is
// self-describing: each column carries its type, so a snapshot reconstructs
// without external schema information.
type fileDatabase struct {
	Tables []fileTable `yaml:"tables"`
}

type fileTable struct {
	Name          string          `yaml:"name"`
	Columns       []schema.Column `yaml:"columns"`
	PrimaryKey    string          `yaml:"primary_key,omitempty"`
	UniqueColumns []string        `yaml:"unique_columns,omitempty"`
	Rows          [][]string      `yaml:"rows"`
}

// Save writes the database to path as a YAML snapshot. The write goes to a
// temporary file in the destination directory and is renamed into place, so
// a failure partway through never leaves a file Load would accept.
func Save(db *database.Database, path string) error {
	payload, err := encode(db)
	if err != nil {
		return err
	}
	return writeAtomic(path, payload)
}

// SaveCompressed writes the same snapshot snappy-encoded behind a magic
// header. Load detects the header and decompresses transparently.
func SaveCompressed(db *database.Database, path string) error {
	payload, err := encode(db)
	if err != nil {
		return err
	}
	return writeAtomic(path, compress(payload))
}

func encode(db *database.Database) ([]byte, error) {
	doc := fileDatabase{}
	// Dump copies under the database lock, in sorted table-name order, so
	// snapshots are deterministic and consistent under concurrent writes.
	for _, t := range db.Dump() {
		ft := fileTable{
			Name:          t.Name,
			Columns:       t.Columns,
			PrimaryKey:    t.PrimaryKey,
			UniqueColumns: t.UniqueColumns,
		}
		for _, row := range t.Rows {
			ft.Rows = append(ft.Rows, row)
		}
		doc.Tables = append(doc.Tables, ft)
	}

	payload, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, &PersistenceError{Op: "save", Reason: err.Error()}
	}
	return payload, nil
}

func writeAtomic(path string, payload []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".reldb-snapshot-*")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Reason: err.Error()}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &PersistenceError{Op: "save", Path: path, Reason: err.Error()}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Op: "save", Path: path, Reason: err.Error()}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Op: "save", Path: path, Reason: err.Error()}
	}
	return nil
}

// Load reconstructs a database from a snapshot written by Save or
// SaveCompressed. The loaded database is rebuilt through the ordinary
// CreateTable/Insert path, so a snapshot violating schema or constraint
// invariants is rejected rather than partially accepted.
func Load(path string) (*database.Database, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Reason: err.Error()}
	}

	if bytes.HasPrefix(raw, snappyMagic) {
		raw, err = decompress(raw)
		if err != nil {
			return nil, &PersistenceError{Op: "load", Path: path, Reason: err.Error()}
		}
	}

	var doc fileDatabase
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Reason: err.Error()}
	}

	db := database.New()
	for _, ft := range doc.Tables {
		for i, col := range ft.Columns {
			typ, ok := schema.ParseColumnType(string(col.Type))
			if !ok {
				return nil, &PersistenceError{
					Op:   "load",
					Path: path,
					Reason: "table '" + ft.Name + "' column '" + col.Name +
						"' has unknown type '" + string(col.Type) + "'",
				}
			}
			ft.Columns[i].Type = typ
		}
		if err := db.CreateTable(ft.Name, ft.Columns, ft.PrimaryKey, ft.UniqueColumns); err != nil {
			return nil, &PersistenceError{Op: "load", Path: path, Reason: err.Error()}
		}
		for _, row := range ft.Rows {
			if err := db.Insert(ft.Name, row); err != nil {
				return nil, &PersistenceError{Op: "load", Path: path, Reason: err.Error()}
			}
		}
	}
	return db, nil
}
