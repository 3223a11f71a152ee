package database

import (
	"reldb/query"
	"reldb/schema"
)

// Table owns a schema and an ordered sequence of rows, and enforces
// primary-key and uniqueness constraints on every mutation. Row storage
// order is insertion order; no implicit sort is ever applied.
//
// The exported fields are immutable after CreateTable. Row access is
// guarded by the owning Database's lock: callers outside this package read
// rows through Database.Select or Database.Dump, never through *Table.
type Table struct {
	Name          string
	Columns       []schema.Column
	PrimaryKey    string // empty means no primary key
	UniqueColumns []string
	rows          []Row
}

func newTable(name string, columns []schema.Column, primaryKey string, uniqueColumns []string) *Table {
	return &Table{
		Name:          name,
		Columns:       columns,
		PrimaryKey:    primaryKey,
		UniqueColumns: uniqueColumns,
	}
}

// constrainedColumns returns the columns subject to a uniqueness check:
// the primary key plus every UNIQUE column, without duplicates.
func (t *Table) constrainedColumns() []string {
	cols := make([]string, 0, len(t.UniqueColumns)+1)
	if t.PrimaryKey != "" {
		cols = append(cols, t.PrimaryKey)
	}
	for _, c := range t.UniqueColumns {
		if c != t.PrimaryKey {
			cols = append(cols, c)
		}
	}
	return cols
}

// coerceRow validates a full value list against the schema and returns the
// canonical stored row. The table is not modified.
func (t *Table) coerceRow(values []string) (Row, error) {
	if len(values) != len(t.Columns) {
		return nil, &SchemaMismatchError{Table: t.Name, Want: len(t.Columns), Got: len(values)}
	}
	row := make(Row, len(values))
	for i, col := range t.Columns {
		stored, err := col.Coerce(values[i])
		if err != nil {
			return nil, err
		}
		row[i] = stored
	}
	return row, nil
}

// checkConstraints scans existing rows for a typed-equality conflict with
// the candidate in any constrained column. skip names a row index excluded
// from the scan (the row being updated), or -1.
func (t *Table) checkConstraints(candidate Row, skip int) error {
	for _, name := range t.constrainedColumns() {
		idx := schema.ColumnIndex(t.Columns, name)
		if idx < 0 {
			continue
		}
		typ := t.Columns[idx].Type
		for i, row := range t.rows {
			if i == skip {
				continue
			}
			if schema.Equal(typ, row[idx], candidate[idx]) {
				return &ConstraintViolationError{Table: t.Name, Column: name, Value: candidate[idx]}
			}
		}
	}
	return nil
}

// addRow validates the values against the schema and constraints, then
// appends the row. Validation happens entirely before the append, so a
// failed insert leaves the table untouched.
func (t *Table) addRow(values []string) error {
	row, err := t.coerceRow(values)
	if err != nil {
		return err
	}
	if err := t.checkConstraints(row, -1); err != nil {
		return err
	}
	t.rows = append(t.rows, row)
	return nil
}

// updateRows applies the assignments to every row matching the predicate.
// Each row is re-validated in full before its mutation commits: a row whose
// update would violate a constraint is skipped and reported, without rolling
// back rows already updated. Returns the number of rows updated and the
// first violation encountered, if any.
func (t *Table) updateRows(set map[string]string, pred *query.Predicate) (int, error) {
	// Resolve and coerce the assignments once; a bad column name or literal
	// fails the whole statement before any row is touched.
	coerced := make(map[int]string, len(set))
	for name, literal := range set {
		idx := schema.ColumnIndex(t.Columns, name)
		if idx < 0 {
			return 0, &schema.ColumnNotFoundError{Table: t.Name, Column: name}
		}
		stored, err := t.Columns[idx].Coerce(literal)
		if err != nil {
			return 0, err
		}
		coerced[idx] = stored
	}

	updated := 0
	var firstErr error
	for i, row := range t.rows {
		if !pred.Matches(row) {
			continue
		}
		candidate := row.clone()
		for idx, val := range coerced {
			candidate[idx] = val
		}
		if err := t.checkConstraints(candidate, i); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		t.rows[i] = candidate
		updated++
	}
	return updated, firstErr
}

// deleteRows removes every row matching the predicate, preserving the
// relative order of the remaining rows. Returns the number removed.
func (t *Table) deleteRows(pred *query.Predicate) int {
	kept := t.rows[:0]
	deleted := 0
	for _, row := range t.rows {
		if pred.Matches(row) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	t.rows = kept
	return deleted
}
