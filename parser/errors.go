package parser

import "fmt"

// SyntaxError reports SQL text that could not be parsed. Fragment is the
// offending substring, kept for diagnostics.
type SyntaxError struct {
	Fragment string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error near '%s'", e.Fragment)
}
