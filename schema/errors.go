package schema

import "fmt"

// TypeMismatchError reports a literal that cannot be coerced to a column's
// declared type, or an operator that is invalid for the type.
type TypeMismatchError struct {
	Column string
	Type   ColumnType
	Value  string
}

func (e *TypeMismatchError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("value '%s' is not a valid %s", e.Value, e.Type)
	}
	return fmt.Sprintf("value '%s' does not match column '%s' type %s", e.Value, e.Column, e.Type)
}

// ColumnNotFoundError reports a reference to a column absent from a schema.
type ColumnNotFoundError struct {
	Table  string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("column '%s' does not exist", e.Column)
	}
	return fmt.Sprintf("column '%s' does not exist in table '%s'", e.Column, e.Table)
}
