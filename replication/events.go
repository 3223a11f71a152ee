package replication

import (
	"time"

	"github.com/google/uuid"
)

// Event is one replicated statement: the SQL text of a mutation executed on
// the primary, in execution order.
type Event struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	SQL       string `json:"sql"`
}

func newEvent(sql string) Event {
	return Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now().Unix(),
		SQL:       sql,
	}
}
