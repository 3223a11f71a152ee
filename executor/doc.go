// Package executor is the single entry point for textual SQL: it parses a
// statement, dispatches on its kind with an exhaustive switch, and returns
// a structured Result (rows, affected count, or acknowledgment).
package executor
