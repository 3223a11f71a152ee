// Package replication keeps replica nodes converged with a primary by
// shipping the primary's mutating SQL statements as an ordered event log.
//
// The engine itself knows nothing about replication; the manager sits next
// to the server front end, records statements after they execute on the
// primary, and replays unseen events on replicas. A SHA-256 checksum over a
// deterministic database dump lets operators verify convergence.
package replication
