package parser

import "regexp"

// INSERT INTO users VALUES (1, 'Alice', true)
// INSERT INTO users (id, name, active) VALUES (1, 'Alice', true)
var insertRe = regexp.MustCompile(`(?is)^INSERT\s+INTO\s+(\w+)\s*(?:\(([^)]*)\)\s*)?VALUES\s*\((.*)\)$`)

func parseInsert(sql string) (*Statement, error) {
	matches := insertRe.FindStringSubmatch(sql)
	if matches == nil {
		return nil, &SyntaxError{Fragment: sql}
	}

	stmt := &Statement{
		Kind:  KindInsert,
		Table: matches[1],
	}

	if matches[2] != "" {
		stmt.InsertColumns = splitList(matches[2])
	}

	for _, raw := range splitList(matches[3]) {
		val, err := parseLiteral(raw)
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, val)
	}
	if len(stmt.Values) == 0 {
		return nil, &SyntaxError{Fragment: sql}
	}

	// A column/value count mismatch is a parse error, caught before the
	// statement reaches the database.
	if stmt.InsertColumns != nil && len(stmt.InsertColumns) != len(stmt.Values) {
		return nil, &SyntaxError{Fragment: matches[3]}
	}

	return stmt, nil
}
