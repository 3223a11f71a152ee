package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"reldb/database"
	"reldb/executor"
)

func seedDB(t *testing.T) *database.Database {
	t.Helper()
	db := database.New()
	statements := []string{
		"CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, email TEXT UNIQUE, active BOOLEAN)",
		`INSERT INTO users VALUES (1, "Alice", "a@example.com", true)`,
		`INSERT INTO users VALUES (2, "Bob", "b@example.com", false)`,
		"CREATE TABLE products (sku TEXT PRIMARY KEY, stock INTEGER)",
		`INSERT INTO products VALUES ("pen", 100)`,
		`INSERT INTO products VALUES ("pencil", 50)`,
	}
	for _, sql := range statements {
		if _, err := executor.Execute(db, sql); err != nil {
			t.Fatalf("seed %q failed: %v", sql, err)
		}
	}
	return db
}

func assertEquivalent(t *testing.T, original, loaded *database.Database) {
	t.Helper()
	if !reflect.DeepEqual(loaded.TableNames(), original.TableNames()) {
		t.Fatalf("table names = %v, want %v", loaded.TableNames(), original.TableNames())
	}
	for _, name := range original.TableNames() {
		want, _ := original.GetTable(name)
		got, err := loaded.GetTable(name)
		if err != nil {
			t.Fatalf("loaded database misses table %s: %v", name, err)
		}
		if !reflect.DeepEqual(got.Columns, want.Columns) {
			t.Errorf("table %s columns = %v, want %v", name, got.Columns, want.Columns)
		}
		if got.PrimaryKey != want.PrimaryKey {
			t.Errorf("table %s primary key = %q, want %q", name, got.PrimaryKey, want.PrimaryKey)
		}
		if !reflect.DeepEqual(got.UniqueColumns, want.UniqueColumns) {
			t.Errorf("table %s unique columns = %v, want %v", name, got.UniqueColumns, want.UniqueColumns)
		}
		gotRows, _ := loaded.Select(name, nil, nil)
		wantRows, _ := original.Select(name, nil, nil)
		if !reflect.DeepEqual(gotRows, wantRows) {
			t.Errorf("table %s rows = %v, want %v", name, gotRows, wantRows)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	db := seedDB(t)
	path := filepath.Join(t.TempDir(), "snapshot.ydb")

	if err := Save(db, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertEquivalent(t, db, loaded)
}

func TestRoundTripCompressed(t *testing.T) {
	db := seedDB(t)
	path := filepath.Join(t.TempDir(), "snapshot.ydbz")

	if err := SaveCompressed(db, path); err != nil {
		t.Fatalf("SaveCompressed failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	if len(raw) < len(snappyMagic) || string(raw[:len(snappyMagic)]) != string(snappyMagic) {
		t.Fatal("compressed snapshot should start with the magic header")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load of compressed snapshot failed: %v", err)
	}
	assertEquivalent(t, db, loaded)
}

func TestSaveIsDeterministic(t *testing.T) {
	db := seedDB(t)
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.ydb")
	p2 := filepath.Join(dir, "b.ydb")

	if err := Save(db, p1); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Save(db, p2); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	b1, _ := os.ReadFile(p1)
	b2, _ := os.ReadFile(p2)
	if string(b1) != string(b2) {
		t.Error("two saves of the same database should be byte-identical")
	}
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	db := seedDB(t)
	dir := t.TempDir()
	if err := Save(db, filepath.Join(dir, "snapshot.ydb")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "snapshot.ydb" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contains %v, want only snapshot.ydb", names)
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	db := seedDB(t)
	err := Save(db, filepath.Join(t.TempDir(), "nope", "deeper", "snapshot.ydb"))
	assertPersistenceError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.ydb"))
	assertPersistenceError(t, err)
}

func TestLoadRejectsCorruptFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "{{{{ definitely not yaml"},
		{"unknown column type", `
tables:
  - name: t
    columns:
      - name: x
        type: FLOAT
    rows: []
`},
		{"row violating schema", `
tables:
  - name: t
    columns:
      - name: x
        type: INTEGER
    rows:
      - ["notanint"]
`},
		{"row violating constraints", `
tables:
  - name: t
    columns:
      - name: x
        type: INTEGER
    primary_key: x
    rows:
      - ["1"]
      - ["1"]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.ydb")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			_, err := Load(path)
			assertPersistenceError(t, err)
		})
	}
}

func TestLoadNormalizesTypeSynonyms(t *testing.T) {
	content := `
tables:
  - name: t
    columns:
      - name: x
        type: INT
    rows:
      - ["1"]
`
	path := filepath.Join(t.TempDir(), "syn.ydb")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	db, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	tbl, _ := db.GetTable("t")
	if tbl.Columns[0].Type != "INTEGER" {
		t.Errorf("type = %s, want INTEGER", tbl.Columns[0].Type)
	}
}

func assertPersistenceError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T (%v), want PersistenceError", err, err)
	}
}
