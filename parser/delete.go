package parser

import "regexp"

// DELETE FROM users WHERE id = 1
var deleteRe = regexp.MustCompile(`(?is)^DELETE\s+FROM\s+(\w+)(?:\s+WHERE\s+(.+))?$`)

func parseDelete(sql string) (*Statement, error) {
	matches := deleteRe.FindStringSubmatch(sql)
	if matches == nil {
		return nil, &SyntaxError{Fragment: sql}
	}

	stmt := &Statement{
		Kind:  KindDelete,
		Table: matches[1],
	}

	where, err := parseWhere(matches[2])
	if err != nil {
		return nil, err
	}
	stmt.Where = where

	return stmt, nil
}
