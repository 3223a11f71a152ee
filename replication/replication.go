package replication

import (
	"context"
	"fmt"
	"sync"
	"time"

	"reldb/database"
	"reldb/executor"
)

// Config describes a node's role in a replication group.
type Config struct {
	Primary      bool
	PrimaryURL   string // set on replicas: where to pull events from
	SyncInterval time.Duration
}

// NewPrimary returns the configuration for a primary node.
func NewPrimary() Config {
	return Config{Primary: true, SyncInterval: 5 * time.Second}
}

// NewReplica returns the configuration for a replica pulling from primaryURL.
func NewReplica(primaryURL string) Config {
	return Config{Primary: false, PrimaryURL: primaryURL, SyncInterval: 5 * time.Second}
}

// Transport moves events between nodes. The HTTP implementation lives in
// the client package; tests substitute an in-memory one.
type Transport interface {
	FetchEvents(primaryURL string) ([]Event, error)
	PushEvents(replicaURL string, events []Event) error
}

// Manager implements statement-based replication: the primary records every
// mutating statement as an event and pushes the log to registered replicas;
// replicas apply the suffix of the log they have not seen, in order, and
// also pull on a ticker in case a push was missed.
type Manager struct {
	mu        sync.Mutex
	config    Config
	db        *database.Database
	transport Transport
	events    []Event
	replicas  []string
}

// NewManager creates a replication manager for the given database.
// transport may be nil on a standalone node.
func NewManager(config Config, db *database.Database, transport Transport) *Manager {
	return &Manager{config: config, db: db, transport: transport}
}

// IsPrimary reports whether this node accepts writes.
func (m *Manager) IsPrimary() bool {
	return m.config.Primary
}

// Record appends a mutating statement to the event log and propagates the
// log to registered replicas. Push failures are ignored: replicas converge
// through their pull loop.
func (m *Manager) Record(sql string) {
	if !m.config.Primary {
		return
	}
	m.mu.Lock()
	m.events = append(m.events, newEvent(sql))
	events := append([]Event(nil), m.events...)
	replicas := append([]string(nil), m.replicas...)
	m.mu.Unlock()

	if m.transport == nil {
		return
	}
	for _, url := range replicas {
		_ = m.transport.PushEvents(url, events)
	}
}

// Events returns a copy of the event log.
func (m *Manager) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

// AddReplica registers a replica URL for push propagation. Duplicate
// registrations are ignored.
func (m *Manager) AddReplica(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.replicas {
		if existing == url {
			return
		}
	}
	m.replicas = append(m.replicas, url)
}

// Apply executes the events this replica has not seen yet, in order, and
// extends the local log. Returns how many events were applied and the first
// execution error, if any; one failing statement does not stop the rest.
func (m *Manager) Apply(events []Event) (int, error) {
	if m.config.Primary {
		return 0, fmt.Errorf("cannot apply replication events to a primary node")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	applied := 0
	var firstErr error
	for _, ev := range events[min(len(m.events), len(events)):] {
		if _, err := executor.Execute(m.db, ev.SQL); err != nil && firstErr == nil {
			firstErr = err
		}
		m.events = append(m.events, ev)
		applied++
	}
	return applied, firstErr
}

// StartSync runs the replica pull loop until ctx is cancelled: every
// SyncInterval, fetch the primary's event log and apply the unseen suffix.
func (m *Manager) StartSync(ctx context.Context) {
	if m.config.Primary || m.transport == nil || m.config.PrimaryURL == "" {
		return
	}

	go func() {
		ticker := time.NewTicker(m.config.SyncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				events, err := m.transport.FetchEvents(m.config.PrimaryURL)
				if err != nil {
					continue
				}
				_, _ = m.Apply(events)
			}
		}
	}()
}

// Checksum returns the state checksum of this node's database, used to
// verify that a replica has converged with its primary.
func (m *Manager) Checksum() string {
	return Checksum(m.db)
}
