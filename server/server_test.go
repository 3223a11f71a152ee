package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"reldb/database"
	"reldb/replication"
)

func newTestServer(t *testing.T, config replication.Config) *httptest.Server {
	t.Helper()
	db := database.New()
	mgr := replication.NewManager(config, db, nil)
	ts := httptest.NewServer(New(Config{}, db, mgr).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func execute(t *testing.T, ts *httptest.Server, sql string) executeResponse {
	t.Helper()
	body, _ := json.Marshal(executeRequest{SQL: sql})
	resp, err := http.Post(ts.URL+"/execute", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /execute failed: %v", err)
	}
	defer resp.Body.Close()

	var out executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return out
}

func TestExecuteOnPrimary(t *testing.T) {
	ts := newTestServer(t, replication.NewPrimary())

	resp := execute(t, ts, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)")
	if !resp.Success {
		t.Fatalf("create failed: %s", resp.Message)
	}

	resp = execute(t, ts, `INSERT INTO users VALUES (1, "Alice")`)
	if !resp.Success || resp.Result.Count != 1 {
		t.Fatalf("insert: success=%v count=%d (%s)", resp.Success, resp.Result.Count, resp.Message)
	}

	resp = execute(t, ts, "SELECT name FROM users WHERE id = 1")
	if !resp.Success || len(resp.Result.Rows) != 1 || resp.Result.Rows[0][0] != "Alice" {
		t.Fatalf("select returned %+v", resp.Result)
	}
}

func TestExecuteErrorsAreReported(t *testing.T) {
	ts := newTestServer(t, replication.NewPrimary())

	resp := execute(t, ts, "BOGUS STATEMENT")
	if resp.Success {
		t.Error("syntax error should not report success")
	}
	if resp.Message == "" {
		t.Error("error response should carry a message")
	}
}

func TestReplicaRejectsWrites(t *testing.T) {
	ts := newTestServer(t, replication.NewReplica("http://primary:8080"))

	resp := execute(t, ts, "CREATE TABLE t (x INTEGER)")
	if resp.Success {
		t.Error("a replica must reject write statements")
	}

	// Reads are still served.
	resp = execute(t, ts, "SELECT * FROM t")
	if resp.Success {
		t.Error("select on a missing table should fail, but as TableNotFound")
	}
}

func TestPingAndTables(t *testing.T) {
	ts := newTestServer(t, replication.NewPrimary())

	resp, err := http.Get(ts.URL + "/ping")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /ping: %v (%v)", err, resp)
	}
	resp.Body.Close()

	execute(t, ts, "CREATE TABLE users (id INTEGER)")
	resp, err = http.Get(ts.URL + "/tables")
	if err != nil {
		t.Fatalf("GET /tables: %v", err)
	}
	defer resp.Body.Close()
	var tables struct {
		Tables []string `json:"tables"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tables); err != nil {
		t.Fatalf("decoding tables: %v", err)
	}
	if len(tables.Tables) != 1 || tables.Tables[0] != "users" {
		t.Errorf("tables = %v, want [users]", tables.Tables)
	}
}

// The server shares one Database across requests; replication reads must
// not race against concurrent writes on the same instance.
func TestConcurrentExecuteAndReplicationReads(t *testing.T) {
	ts := newTestServer(t, replication.NewPrimary())
	execute(t, ts, "CREATE TABLE counters (id INTEGER PRIMARY KEY)")

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			body, _ := json.Marshal(executeRequest{SQL: fmt.Sprintf("INSERT INTO counters VALUES (%d)", i)})
			resp, err := http.Post(ts.URL+"/execute", "application/json", bytes.NewReader(body))
			if err != nil {
				t.Errorf("POST /execute: %v", err)
				return
			}
			resp.Body.Close()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			for _, path := range []string{"/replication/checksum", "/replication/events"} {
				resp, err := http.Get(ts.URL + path)
				if err != nil {
					t.Errorf("GET %s: %v", path, err)
					return
				}
				resp.Body.Close()
			}
		}
	}()
	wg.Wait()

	resp := execute(t, ts, "SELECT * FROM counters")
	if len(resp.Result.Rows) != n {
		t.Errorf("row count = %d, want %d", len(resp.Result.Rows), n)
	}
}

func TestMutationsAreRecordedForReplication(t *testing.T) {
	db := database.New()
	mgr := replication.NewManager(replication.NewPrimary(), db, nil)
	ts := httptest.NewServer(New(Config{}, db, mgr).Handler())
	t.Cleanup(ts.Close)

	execute(t, ts, "CREATE TABLE t (x INTEGER)")
	execute(t, ts, "INSERT INTO t VALUES (1)")
	execute(t, ts, "SELECT * FROM t")

	if got := len(mgr.Events()); got != 2 {
		t.Errorf("recorded %d events, want 2 (selects are not replicated)", got)
	}
}
