package parser

import "regexp"

// SELECT * FROM users
// SELECT name, age FROM users WHERE age > 30 AND active = true
var selectRe = regexp.MustCompile(`(?is)^SELECT\s+(.+?)\s+FROM\s+(\w+)(?:\s+WHERE\s+(.+))?$`)

func parseSelect(sql string) (*Statement, error) {
	matches := selectRe.FindStringSubmatch(sql)
	if matches == nil {
		return nil, &SyntaxError{Fragment: sql}
	}

	stmt := &Statement{
		Kind:  KindSelect,
		Table: matches[2],
	}

	if matches[1] != "*" {
		stmt.Projection = splitList(matches[1])
		if len(stmt.Projection) == 0 {
			return nil, &SyntaxError{Fragment: matches[1]}
		}
	}

	where, err := parseWhere(matches[3])
	if err != nil {
		return nil, err
	}
	stmt.Where = where

	return stmt, nil
}
