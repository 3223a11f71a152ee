// Package database implements the in-memory relational store: rows, tables
// with primary-key and uniqueness constraints, and the name-keyed database
// that owns them.
//
// Key properties:
//   - Values are stored as strings; typed semantics come from the schema
//     package at the insert/update/compare boundary.
//   - Constraint checking is validate-then-commit: a failed insert or a
//     skipped update row never leaves a partial mutation behind.
//   - Row storage order is insertion order; selects and deletes preserve it.
//   - All scans are linear; there are no indexes and no query planning.
//
// Usage:
//
//	db := database.New()
//	cols := []schema.Column{
//		{Name: "id", Type: schema.TypeInteger},
//		{Name: "name", Type: schema.TypeText},
//	}
//	err := db.CreateTable("users", cols, "id", nil)
//	err = db.Insert("users", []string{"1", "Alice"})
//	pred, _ := query.Build(cols, []query.Clause{{Column: "id", Op: query.OpEq, Value: "1"}})
//	rows, err := db.Select("users", []string{"name"}, pred)
package database
