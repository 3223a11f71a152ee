package database

import "fmt"

// TableNotFoundError reports an operation against a table that does not exist.
type TableNotFoundError struct {
	Table string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table '%s' does not exist", e.Table)
}

// TableExistsError reports an attempt to create a table that already exists.
type TableExistsError struct {
	Table string
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("table '%s' already exists", e.Table)
}

// DuplicateColumnError reports a schema declaring the same column name twice.
type DuplicateColumnError struct {
	Table  string
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column '%s' in table '%s'", e.Column, e.Table)
}

// SchemaMismatchError reports a value count that does not match the column count.
type SchemaMismatchError struct {
	Table string
	Want  int
	Got   int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("table '%s' has %d columns but %d values were given", e.Table, e.Want, e.Got)
}

// ConstraintViolationError reports a primary-key or uniqueness violation.
type ConstraintViolationError struct {
	Table  string
	Column string
	Value  string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation: column '%s' in table '%s' must be unique (value '%s')", e.Column, e.Table, e.Value)
}
