// Package client is a small HTTP client for the reldb server API, used by
// the CLI and as the transport between replication peers.
package client
