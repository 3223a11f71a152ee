package parser

import "regexp"

// UPDATE users SET name = 'Bob', active = false WHERE id = 1
var updateRe = regexp.MustCompile(`(?is)^UPDATE\s+(\w+)\s+SET\s+(.+?)(?:\s+WHERE\s+(.+))?$`)

var assignmentRe = regexp.MustCompile(`(?s)^(\w+)\s*=\s*(.+)$`)

func parseUpdate(sql string) (*Statement, error) {
	matches := updateRe.FindStringSubmatch(sql)
	if matches == nil {
		return nil, &SyntaxError{Fragment: sql}
	}

	stmt := &Statement{
		Kind:  KindUpdate,
		Table: matches[1],
	}

	for _, pair := range splitList(matches[2]) {
		am := assignmentRe.FindStringSubmatch(pair)
		if am == nil {
			return nil, &SyntaxError{Fragment: pair}
		}
		val, err := parseLiteral(am[2])
		if err != nil {
			return nil, err
		}
		stmt.Assignments = append(stmt.Assignments, Assignment{
			Column: am[1],
			Value:  val,
		})
	}
	if len(stmt.Assignments) == 0 {
		return nil, &SyntaxError{Fragment: sql}
	}

	where, err := parseWhere(matches[3])
	if err != nil {
		return nil, err
	}
	stmt.Where = where

	return stmt, nil
}
