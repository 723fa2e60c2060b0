// Package cmd implements the command-line interface for tickctl.
//
// This package provides the following commands:
//   - task add|update|complete|move: manipulate tasks
//   - project list|add|update: manipulate projects
//   - auth login|status: authorize access and cache the bearer token
//
// Commands are thin plumbing: they parse flags, wire up the client and
// the core packages, and print results. All resolution, planning and
// move-protocol logic lives under internal/.
package cmd
