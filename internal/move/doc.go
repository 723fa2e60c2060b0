// Package move executes cross-project moves against a service that has no
// native move operation.
//
// A move is a three-phase saga: create the replacement in the target
// project, delete the original from the source, and verify the replacement
// is observable in the target. The service is eventually consistent, so
// the delete is retried with exponential backoff and both consistency
// checkpoints are bounded polls.
//
// There is no rollback. A failed delete leaves the task in BOTH projects;
// a failed verification leaves its true location uncertain until a fresh
// resolution. Both partial states are reported as such (tagged Result plus
// a typed error carrying the last HTTP status) rather than hidden behind a
// boolean, because the service offers no transactional multi-entity
// operation to do better with.
//
// Task ids are not stable across a move: the replacement carries a fresh
// id, and callers must use the one the Result reports.
package move
