// Package query builds executable row predicates from WHERE-clause
// conditions.
//
// A Predicate is a value, not a closure over mutable state: it can be built
// once, tested in isolation, and reused across select, update and delete.
// Clauses are AND-combined; type errors (a non-numeric literal against an
// INTEGER column, an ordering operator against a BOOLEAN column) and unknown
// column names fail at construction time, not at scan time.
package query
