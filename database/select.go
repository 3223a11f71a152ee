package database

import (
	"reldb/query"
	"reldb/schema"
)

// Select returns the rows matching the predicate, projected to the requested
// columns in the requested order. An empty column list means all columns in
// schema order. A nil predicate matches every row. Rows come back in table
// storage order.
func (db *Database) Select(name string, columns []string, pred *query.Predicate) ([]Row, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, err := db.table(name)
	if err != nil {
		return nil, err
	}

	indexes, err := t.projection(columns)
	if err != nil {
		return nil, err
	}

	var out []Row
	for _, row := range t.rows {
		if pred.Matches(row) {
			out = append(out, row.project(indexes))
		}
	}
	return out, nil
}

// projection resolves requested column names to schema positions. An empty
// request selects every column.
func (t *Table) projection(columns []string) ([]int, error) {
	if len(columns) == 0 {
		indexes := make([]int, len(t.Columns))
		for i := range t.Columns {
			indexes[i] = i
		}
		return indexes, nil
	}
	indexes := make([]int, len(columns))
	for i, name := range columns {
		idx := schema.ColumnIndex(t.Columns, name)
		if idx < 0 {
			return nil, &schema.ColumnNotFoundError{Table: t.Name, Column: name}
		}
		indexes[i] = idx
	}
	return indexes, nil
}

// ColumnNames resolves the projection a SELECT will return: the requested
// names, or every schema column when the request is empty.
func (db *Database) ColumnNames(name string, columns []string) ([]string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, err := db.table(name)
	if err != nil {
		return nil, err
	}
	indexes, err := t.projection(columns)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(indexes))
	for i, idx := range indexes {
		out[i] = t.Columns[idx].Name
	}
	return out, nil
}
