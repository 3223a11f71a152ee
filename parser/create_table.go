package parser

import (
	"regexp"
	"strings"

	"reldb/schema"
)

// CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, email TEXT UNIQUE)
var createTableRe = regexp.MustCompile(`(?is)^CREATE\s+TABLE\s+(\w+)\s*\((.+)\)$`)

func parseCreateTable(sql string) (*Statement, error) {
	matches := createTableRe.FindStringSubmatch(sql)
	if matches == nil {
		return nil, &SyntaxError{Fragment: sql}
	}

	stmt := &Statement{
		Kind:  KindCreateTable,
		Table: matches[1],
	}

	for _, colDef := range splitList(matches[2]) {
		parts := strings.Fields(colDef)
		if len(parts) < 2 {
			return nil, &SyntaxError{Fragment: colDef}
		}

		typ, ok := schema.ParseColumnType(parts[1])
		if !ok {
			return nil, &SyntaxError{Fragment: parts[1]}
		}
		name := parts[0]
		stmt.Columns = append(stmt.Columns, schema.Column{Name: name, Type: typ})

		for i := 2; i < len(parts); i++ {
			switch strings.ToUpper(parts[i]) {
			case "PRIMARY":
				if i+1 >= len(parts) || strings.ToUpper(parts[i+1]) != "KEY" {
					return nil, &SyntaxError{Fragment: colDef}
				}
				i++
				if stmt.PrimaryKey != "" {
					return nil, &SyntaxError{Fragment: "multiple PRIMARY KEY columns"}
				}
				stmt.PrimaryKey = name
			case "UNIQUE":
				stmt.UniqueColumns = append(stmt.UniqueColumns, name)
			default:
				return nil, &SyntaxError{Fragment: parts[i]}
			}
		}
	}

	return stmt, nil
}
