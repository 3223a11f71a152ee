package database

import "reldb/query"

// Delete removes every row of the named table matching the predicate,
// preserving the relative order of the remaining rows. Returns the number
// of rows removed; a predicate matching nothing yields 0, not an error.
func (db *Database) Delete(name string, pred *query.Predicate) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, err := db.table(name)
	if err != nil {
		return 0, err
	}
	return t.deleteRows(pred), nil
}
