// Package http implements the REST transport of the vault server.
//
// It exposes route wiring, request handlers, and middleware. Bearer token
// authentication, per-caller rate limiting, request tracing, access logging,
// and response compression are handled in this package before requests are
// delegated to the service layer. Every failure is written as a JSON
// [models.ErrorResponse] carrying a stable error kind.
package http
