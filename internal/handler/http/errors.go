// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the integrity middleware when checking the
// HashSHA256 header. Callers can match against them with [errors.Is].
var (
	// ErrMissingHashHeader is returned when a request carries a body but no
	// HashSHA256 header while integrity checking is on.
	ErrMissingHashHeader = errors.New("missing `HashSHA256` header")

	// ErrHashMismatch is returned when the HashSHA256 header does not match
	// the HMAC-SHA256 of the request body.
	ErrHashMismatch = errors.New("`HashSHA256` header does not match body")
)
