package database

import "reldb/query"

// Update applies the assignments to every row of the named table matching
// the predicate. Each updated row is re-validated in full before its
// mutation commits; an invalid row is skipped and reported alongside the
// count of rows that did update (there is no statement-level rollback).
func (db *Database) Update(name string, set map[string]string, pred *query.Predicate) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, err := db.table(name)
	if err != nil {
		return 0, err
	}
	return t.updateRows(set, pred)
}
