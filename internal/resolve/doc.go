// Package resolve locates tasks and projects from loose user-supplied
// identifiers.
//
// The service offers no server-side search and no cross-project lookup, so
// resolution is an explicit linear scan: projects are enumerated and their
// members fetched one round trip at a time, the inbox first. Callers should
// budget for O(projects × tasks) remote calls.
//
// Names are matched after normalization (case-folded, punctuation-stripped,
// whitespace-trimmed). Normalization is many-to-one; when two tasks share a
// normalized name the first one in enumeration order wins and no ambiguity
// is reported. That is a documented limitation, not a bug.
//
// Nothing here caches across calls. The service's state can change between
// CLI invocations, and the only consistency this system needs is within a
// single operation.
package resolve
