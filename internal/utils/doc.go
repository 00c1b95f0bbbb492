// Package utils holds small helpers shared by the HTTP server and the HTTP
// adapter: body signing with HMAC-SHA256, JSON responses, the resty client
// and UUIDv7 generation.
package utils
