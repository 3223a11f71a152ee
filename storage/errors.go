package storage

import "fmt"

// PersistenceError reports an I/O failure, or a snapshot file that is
// corrupt or violates database invariants on load.
type PersistenceError struct {
	Op     string // "save" or "load"
	Path   string
	Reason string
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s failed: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Reason)
}
