// Package mutate classifies requested field changes into executable plans.
//
// The decision rule is purely structural: no current snapshot means a
// fresh create; a snapshot plus a desired project that differs from the
// snapshot's owning project means a move (the service cannot express a
// move directly, so the plan carries the full replacement body); anything
// else is an in-place sparse update.
//
// Validation of priorities and due-date literals happens here, before any
// remote call, so invalid input can never leave partial remote state.
package mutate
