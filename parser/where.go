package parser

import (
	"regexp"
	"strings"

	"reldb/query"
)

var clauseRe = regexp.MustCompile(`(?s)^(\w+)\s*(<=|>=|!=|==|=|<|>)\s*(.+)$`)

// parseWhere parses a WHERE condition into AND-combined clauses. An empty
// condition yields nil (match all).
func parseWhere(cond string) ([]query.Clause, error) {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return nil, nil
	}

	var clauses []query.Clause
	for _, part := range splitAnd(cond) {
		m := clauseRe.FindStringSubmatch(part)
		if m == nil {
			return nil, &SyntaxError{Fragment: part}
		}
		op, ok := query.ParseOp(m[2])
		if !ok {
			return nil, &SyntaxError{Fragment: m[2]}
		}
		val, err := parseLiteral(m[3])
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, query.Clause{
			Column: m[1],
			Op:     op,
			Value:  val,
		})
	}
	return clauses, nil
}

// splitAnd splits a condition on the AND keyword, case-insensitively,
// ignoring occurrences inside quoted literals.
func splitAnd(cond string) []string {
	var parts []string
	var cur strings.Builder
	var quote byte

	i := 0
	for i < len(cond) {
		ch := cond[i]
		switch {
		case quote != 0:
			cur.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
			i++
		case ch == '\'' || ch == '"':
			quote = ch
			cur.WriteByte(ch)
			i++
		case isAndBoundary(cond, i):
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
			i += 5 // skip " AND "
		default:
			cur.WriteByte(ch)
			i++
		}
	}
	parts = append(parts, strings.TrimSpace(cur.String()))
	return parts
}

func isAndBoundary(cond string, i int) bool {
	return i+5 <= len(cond) &&
		cond[i] == ' ' &&
		strings.EqualFold(cond[i+1:i+4], "AND") &&
		cond[i+4] == ' '
}
