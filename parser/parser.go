package parser

import (
	"strings"

	"reldb/query"
	"reldb/schema"
)

// Kind identifies a SQL statement kind. The set is closed: every kind the
// dialect supports has a constant here and an arm in executor.Execute.
type Kind int

const (
	KindCreateTable Kind = iota
	KindInsert
	KindSelect
	KindUpdate
	KindDelete
)

// Assignment is a single SET column=value pair in an UPDATE.
type Assignment struct {
	Column string
	Value  string
}

// Statement is a fully parsed SQL statement. Only the fields relevant to
// its Kind are populated.
type Statement struct {
	Kind          Kind
	Table         string
	Columns       []schema.Column // CREATE TABLE: ordered column schema
	PrimaryKey    string          // CREATE TABLE: at most one
	UniqueColumns []string        // CREATE TABLE
	InsertColumns []string        // INSERT: explicit column list, nil if positional
	Values        []string        // INSERT: literals in listed order
	Projection    []string        // SELECT: empty means all columns
	Assignments   []Assignment    // UPDATE
	Where         []query.Clause  // SELECT/UPDATE/DELETE
}

// Parse classifies a SQL statement by its leading keyword and parses the
// statement-specific grammar. Parsing completes fully before anything is
// executed; a malformed statement is a SyntaxError carrying the offending
// fragment.
func Parse(sql string) (*Statement, error) {
	sql = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sql), ";"))
	if sql == "" {
		return nil, &SyntaxError{Fragment: "empty statement"}
	}

	upper := strings.ToUpper(sql)
	switch {
	case strings.HasPrefix(upper, "CREATE TABLE"):
		return parseCreateTable(sql)
	case strings.HasPrefix(upper, "INSERT"):
		return parseInsert(sql)
	case strings.HasPrefix(upper, "SELECT"):
		return parseSelect(sql)
	case strings.HasPrefix(upper, "UPDATE"):
		return parseUpdate(sql)
	case strings.HasPrefix(upper, "DELETE"):
		return parseDelete(sql)
	}

	return nil, &SyntaxError{Fragment: "unrecognized statement: " + firstWord(sql)}
}

func firstWord(sql string) string {
	if fields := strings.Fields(sql); len(fields) > 0 {
		return fields[0]
	}
	return sql
}
