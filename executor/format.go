package executor

import (
	"fmt"
	"strings"
)

// Format renders the result for display: an aligned text table for SELECT,
// a one-line summary otherwise.
func (r *Result) Format() string {
	if r.Message != "" {
		return r.Message
	}
	if r.Columns == nil {
		return fmt.Sprintf("%d row(s) affected", r.Count)
	}
	if len(r.Rows) == 0 {
		return "No rows returned"
	}

	widths := make([]int, len(r.Columns))
	for i, name := range r.Columns {
		widths[i] = len(name)
	}
	for _, row := range r.Rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	var b strings.Builder
	for i, name := range r.Columns {
		fmt.Fprintf(&b, "%-*s ", widths[i], name)
	}
	b.WriteByte('\n')
	for i := range r.Columns {
		b.WriteString(strings.Repeat("-", widths[i]))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	for _, row := range r.Rows {
		for i, val := range row {
			fmt.Fprintf(&b, "%-*s ", widths[i], val)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
