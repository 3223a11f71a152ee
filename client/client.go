package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"reldb/executor"
	"reldb/replication"
)

// Client talks to a running reldb server over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type executeRequest struct {
	SQL string `json:"sql"`
}

type executeResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Result  *executor.Result `json:"result,omitempty"`
}

// Execute runs a SQL statement on the server and returns its result.
func (c *Client) Execute(sql string) (*executor.Result, error) {
	var resp executeResponse
	if err := c.post("/execute", executeRequest{SQL: sql}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return resp.Result, fmt.Errorf("%s", resp.Message)
	}
	return resp.Result, nil
}

// Ping checks that the server is reachable.
func (c *Client) Ping() error {
	var resp map[string]string
	return c.get("/ping", &resp)
}

// Tables lists the server's table names.
func (c *Client) Tables() ([]string, error) {
	var resp struct {
		Tables []string `json:"tables"`
	}
	if err := c.get("/tables", &resp); err != nil {
		return nil, err
	}
	return resp.Tables, nil
}

// Checksum fetches the server's database state checksum.
func (c *Client) Checksum() (string, error) {
	var resp struct {
		Checksum string `json:"checksum"`
	}
	if err := c.get("/replication/checksum", &resp); err != nil {
		return "", err
	}
	return resp.Checksum, nil
}

// Register registers a replica URL with a primary server.
func (c *Client) Register(replicaURL string) error {
	return c.post("/replication/register", map[string]string{"url": replicaURL}, nil)
}

func (c *Client) get(path string, out any) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST %s: unexpected status %s", path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Transport adapts Client to the replication.Transport interface, moving
// event logs between nodes.
type Transport struct{}

// FetchEvents pulls the full event log from a primary.
func (Transport) FetchEvents(primaryURL string) ([]replication.Event, error) {
	c := New(primaryURL)
	var resp struct {
		Events []replication.Event `json:"events"`
	}
	if err := c.get("/replication/events", &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

// PushEvents sends an event log to a replica for application.
func (Transport) PushEvents(replicaURL string, events []replication.Event) error {
	c := New(replicaURL)
	return c.post("/replication/apply", map[string][]replication.Event{"events": events}, nil)
}
