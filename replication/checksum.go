package replication

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"reldb/database"
)

// Checksum builds a deterministic textual dump of the database (tables in
// sorted name order, columns and rows in storage order) and returns its
// SHA-256 hex digest. Two databases with equal checksums hold the same
// tables, schemas and rows. The dump is taken under the database lock, so
// the checksum is consistent even while writes are in flight.
func Checksum(db *database.Database) string {
	var b strings.Builder
	for _, t := range db.Dump() {
		fmt.Fprintf(&b, "TABLE:%s;", t.Name)
		for _, col := range t.Columns {
			fmt.Fprintf(&b, "COL:%s:%s;", col.Name, col.Type)
		}
		fmt.Fprintf(&b, "PK:%s;", t.PrimaryKey)
		for _, col := range t.UniqueColumns {
			fmt.Fprintf(&b, "UNIQ:%s;", col)
		}
		for _, row := range t.Rows {
			for _, val := range row {
				fmt.Fprintf(&b, "VAL:%s;", val)
			}
		}
	}

	digest := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(digest[:])
}
