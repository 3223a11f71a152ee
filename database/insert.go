package database

// Insert adds a row to the named table. Values are given in schema column
// order; row construction, type validation and constraint checking are
// delegated to the table.
func (db *Database) Insert(name string, values []string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, err := db.table(name)
	if err != nil {
		return err
	}
	return t.addRow(values)
}
