// Package logging provides shared slog helpers for consistent structured
// logging across the application.
//
// All packages log through *slog.Logger; this package owns the attribute
// key vocabulary so that log lines from the resolver, the move orchestrator
// and the wire client can be correlated by the same field names.
package logging
