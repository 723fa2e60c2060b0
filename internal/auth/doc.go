// Package auth provides the bearer credential for the task service.
//
// The core operations assume an already-valid bearer token on every call;
// this package is the collaborator that makes that true. It runs the
// OAuth2 authorization-code exchange, caches the resulting token as JSON
// under the user cache dir, and hands out an *http.Client whose transport
// attaches and refreshes the token transparently.
package auth
