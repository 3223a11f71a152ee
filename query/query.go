package query

import (
	"fmt"
	"strconv"

	"reldb/schema"
)

// Op is a comparison operator usable in a WHERE clause.
type Op string

const (
	OpEq Op = "="
	OpNe Op = "!="
	OpLt Op = "<"
	OpGt Op = ">"
	OpLe Op = "<="
	OpGe Op = ">="
)

// ParseOp maps an operator token to an Op. "==" is accepted as a
// synonym for "=".
func ParseOp(token string) (Op, bool) {
	switch token {
	case "=", "==":
		return OpEq, true
	case "!=":
		return OpNe, true
	case "<":
		return OpLt, true
	case ">":
		return OpGt, true
	case "<=":
		return OpLe, true
	case ">=":
		return OpGe, true
	default:
		return "", false
	}
}

// Clause is a single WHERE condition: column <op> literal.
type Clause struct {
	Column string
	Op     Op
	Value  string
}

// compiledClause is a Clause resolved against a schema: the column position
// and type are fixed, and the literal is already coerced.
type compiledClause struct {
	index int
	typ   schema.ColumnType
	op    Op
	value string
}

// Predicate is an inert, reusable row filter built from AND-combined clauses.
// A predicate with zero clauses matches every row.
type Predicate struct {
	clauses []compiledClause
}

// All returns the identity predicate, used when no WHERE clause is present.
func All() *Predicate {
	return &Predicate{}
}

// Build compiles WHERE clauses against a schema. Unknown columns, literals
// that cannot be coerced, and ordering operators on BOOLEAN columns are all
// rejected here, before any row is scanned.
func Build(columns []schema.Column, clauses []Clause) (*Predicate, error) {
	p := &Predicate{clauses: make([]compiledClause, 0, len(clauses))}
	for _, cl := range clauses {
		idx := schema.ColumnIndex(columns, cl.Column)
		if idx < 0 {
			return nil, &schema.ColumnNotFoundError{Column: cl.Column}
		}
		col := columns[idx]
		if col.Type == schema.TypeBoolean && cl.Op != OpEq && cl.Op != OpNe {
			return nil, &schema.TypeMismatchError{
				Column: col.Name,
				Type:   col.Type,
				Value:  fmt.Sprintf("operator %s", cl.Op),
			}
		}
		coerced, err := col.Coerce(cl.Value)
		if err != nil {
			return nil, err
		}
		p.clauses = append(p.clauses, compiledClause{
			index: idx,
			typ:   col.Type,
			op:    cl.Op,
			value: coerced,
		})
	}
	return p, nil
}

// Matches reports whether a row satisfies every clause. Row values are
// positionally aligned to the schema the predicate was built against.
func (p *Predicate) Matches(values []string) bool {
	if p == nil {
		return true
	}
	for _, cl := range p.clauses {
		if cl.index >= len(values) {
			return false
		}
		if !cl.matches(values[cl.index]) {
			return false
		}
	}
	return true
}

func (c compiledClause) matches(stored string) bool {
	switch c.op {
	case OpEq:
		return schema.Equal(c.typ, stored, c.value)
	case OpNe:
		return !schema.Equal(c.typ, stored, c.value)
	}

	cmp, err := schema.Compare(c.typ, stored, c.value)
	if err != nil {
		return false
	}
	switch c.op {
	case OpLt:
		return cmp < 0
	case OpGt:
		return cmp > 0
	case OpLe:
		return cmp <= 0
	case OpGe:
		return cmp >= 0
	}
	return false
}

// String renders the clause list for diagnostics.
func (c Clause) String() string {
	return fmt.Sprintf("%s %s %s", c.Column, c.Op, strconv.Quote(c.Value))
}
