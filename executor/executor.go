package executor

import (
	"fmt"

	"reldb/database"
	"reldb/parser"
	"reldb/query"
	"reldb/schema"
)

// Result is the outcome of one statement: a result set for SELECT, an
// affected-row count for INSERT/UPDATE/DELETE, an acknowledgment message
// for CREATE TABLE.
type Result struct {
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	Count   int        `json:"count"`
	Message string     `json:"message,omitempty"`
}

// Execute parses and runs a single SQL statement against the database.
//
// For UPDATE, a row skipped over a type or constraint violation surfaces as
// a non-nil error next to a Result still carrying the count of rows that did
// update; a violation is never swallowed.
func Execute(db *database.Database, sql string) (*Result, error) {
	stmt, err := parser.Parse(sql)
	if err != nil {
		return nil, err
	}
	return ExecuteStatement(db, stmt)
}

// ExecuteStatement runs an already parsed statement.
func ExecuteStatement(db *database.Database, stmt *parser.Statement) (*Result, error) {
	switch stmt.Kind {
	case parser.KindCreateTable:
		return executeCreateTable(db, stmt)
	case parser.KindInsert:
		return executeInsert(db, stmt)
	case parser.KindSelect:
		return executeSelect(db, stmt)
	case parser.KindUpdate:
		return executeUpdate(db, stmt)
	case parser.KindDelete:
		return executeDelete(db, stmt)
	default:
		return nil, fmt.Errorf("unknown statement kind: %d", stmt.Kind)
	}
}

// IsMutation reports whether a statement kind changes database state.
// Replication records mutations only; replicas may still serve reads.
func IsMutation(kind parser.Kind) bool {
	return kind != parser.KindSelect
}

func executeCreateTable(db *database.Database, stmt *parser.Statement) (*Result, error) {
	if err := db.CreateTable(stmt.Table, stmt.Columns, stmt.PrimaryKey, stmt.UniqueColumns); err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("Table '%s' created", stmt.Table)}, nil
}

func executeInsert(db *database.Database, stmt *parser.Statement) (*Result, error) {
	values := stmt.Values
	if stmt.InsertColumns != nil {
		reordered, err := reorderValues(db, stmt)
		if err != nil {
			return nil, err
		}
		values = reordered
	}
	if err := db.Insert(stmt.Table, values); err != nil {
		return nil, err
	}
	return &Result{Count: 1}, nil
}

// reorderValues maps an explicit INSERT column list onto schema positions.
// The list must cover the whole schema: there are no NULLs or column
// defaults in the data model.
func reorderValues(db *database.Database, stmt *parser.Statement) ([]string, error) {
	t, err := db.GetTable(stmt.Table)
	if err != nil {
		return nil, err
	}
	if len(stmt.InsertColumns) != len(t.Columns) {
		return nil, &database.SchemaMismatchError{
			Table: stmt.Table,
			Want:  len(t.Columns),
			Got:   len(stmt.InsertColumns),
		}
	}

	values := make([]string, len(t.Columns))
	seen := make(map[int]bool, len(t.Columns))
	for i, name := range stmt.InsertColumns {
		idx := schema.ColumnIndex(t.Columns, name)
		if idx < 0 {
			return nil, &schema.ColumnNotFoundError{Table: stmt.Table, Column: name}
		}
		if seen[idx] {
			return nil, &database.DuplicateColumnError{Table: stmt.Table, Column: name}
		}
		seen[idx] = true
		values[idx] = stmt.Values[i]
	}
	return values, nil
}

func executeSelect(db *database.Database, stmt *parser.Statement) (*Result, error) {
	pred, err := buildPredicate(db, stmt)
	if err != nil {
		return nil, err
	}
	header, err := db.ColumnNames(stmt.Table, stmt.Projection)
	if err != nil {
		return nil, err
	}
	rows, err := db.Select(stmt.Table, stmt.Projection, pred)
	if err != nil {
		return nil, err
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return &Result{Columns: header, Rows: out, Count: len(out)}, nil
}

func executeUpdate(db *database.Database, stmt *parser.Statement) (*Result, error) {
	pred, err := buildPredicate(db, stmt)
	if err != nil {
		return nil, err
	}
	set := make(map[string]string, len(stmt.Assignments))
	for _, a := range stmt.Assignments {
		set[a.Column] = a.Value
	}
	count, err := db.Update(stmt.Table, set, pred)
	return &Result{Count: count}, err
}

func executeDelete(db *database.Database, stmt *parser.Statement) (*Result, error) {
	pred, err := buildPredicate(db, stmt)
	if err != nil {
		return nil, err
	}
	count, err := db.Delete(stmt.Table, pred)
	if err != nil {
		return nil, err
	}
	return &Result{Count: count}, nil
}

// buildPredicate compiles the statement's WHERE clauses against the target
// table's schema. No WHERE clause yields the match-all predicate.
func buildPredicate(db *database.Database, stmt *parser.Statement) (*query.Predicate, error) {
	if len(stmt.Where) == 0 {
		return query.All(), nil
	}
	t, err := db.GetTable(stmt.Table)
	if err != nil {
		return nil, err
	}
	return query.Build(t.Columns, stmt.Where)
}
