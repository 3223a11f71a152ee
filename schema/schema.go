package schema

import "strings"

// ColumnType represents supported data types
type ColumnType string

const (
	TypeInteger ColumnType = "INTEGER"
	TypeText    ColumnType = "TEXT"
	TypeBoolean ColumnType = "BOOLEAN"
)

// ParseColumnType maps a SQL type token to a ColumnType.
// Synonyms: INT/INTEGER, TEXT/STRING, BOOL/BOOLEAN.
func ParseColumnType(token string) (ColumnType, bool) {
	switch strings.ToUpper(token) {
	case "INT", "INTEGER":
		return TypeInteger, true
	case "TEXT", "STRING":
		return TypeText, true
	case "BOOL", "BOOLEAN":
		return TypeBoolean, true
	default:
		return "", false
	}
}

// Column defines a table column
type Column struct {
	Name string     `yaml:"name" json:"name"`
	Type ColumnType `yaml:"type" json:"type"`
}

// ColumnIndex returns the position of the named column, or -1 if absent.
// Column names are case-sensitive identifiers.
func ColumnIndex(columns []Column, name string) int {
	for i, col := range columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}
