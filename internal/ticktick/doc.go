// Package ticktick provides a bearer-credentialed client for a
// TickTick-compatible Open API.
//
// The client is deliberately thin: every method is a single HTTP round trip
// with no retries and no caching. The service is eventually consistent and
// offers neither a cross-project move endpoint nor server-side search;
// the compensating logic (scanning, retrying, saga orchestration) lives in
// the resolve, mutate and move packages, which consume this client through
// narrow interfaces.
//
// Transport, decode and error-status failures all surface as *Error, which
// carries the failed operation and the last HTTP status so operators can
// reconcile partial state by hand.
package ticktick
