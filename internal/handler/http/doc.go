// Package http implements the HTTP transport layer of the sealed-table
// server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// response compression and body integrity checks are handled in this package
// before requests are delegated to the service layer.
//
// Rows travel as arrays of {"name", "type", "value"} objects; value holds the
// canonical text of the typed value, or null for SQL NULL.
package http
