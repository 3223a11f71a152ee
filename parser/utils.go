package parser

import "strings"

// splitList splits a comma-separated list, respecting single and double
// quotes so literals may contain commas. Items come back trimmed.
func splitList(s string) []string {
	var items []string
	var cur strings.Builder
	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			cur.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
			cur.WriteByte(ch)
		case ch == ',':
			items = append(items, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	if trimmed := strings.TrimSpace(cur.String()); trimmed != "" || len(items) > 0 {
		items = append(items, trimmed)
	}
	return items
}

// parseLiteral interprets a literal token. Quoted strings (single or
// double quotes) are taken verbatim, commas and spaces included; bare
// tokens pass through for the destination column's type to interpret, but
// may not contain whitespace.
func parseLiteral(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 {
		if (raw[0] == '\'' && raw[len(raw)-1] == '\'') || (raw[0] == '"' && raw[len(raw)-1] == '"') {
			return raw[1 : len(raw)-1], nil
		}
	}
	if raw == "" || strings.ContainsAny(raw, " \t\n") {
		return "", &SyntaxError{Fragment: raw}
	}
	return raw, nil
}
