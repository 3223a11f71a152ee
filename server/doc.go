// Package server puts an HTTP JSON front end on the engine. It translates
// requests into Database/executor calls and carries the replication
// endpoints a primary/replica pair needs; the engine itself exposes no
// networking.
package server
