// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sealed-table server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request fails validation
	// (e.g. missing password, iteration count out of range).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEnvelope is returned when an envelope is malformed or was
	// sealed with parameters outside the accepted bounds.
	MsgInvalidEnvelope = "invalid envelope"

	// MsgWrongPassword is returned when an envelope does not authenticate or
	// a password does not match the stored verifier. A wrong password and a
	// wrong iteration count cannot be told apart.
	MsgWrongPassword = "wrong password or iteration count"

	// MsgMalformedDocument is returned when a decrypted document cannot be
	// parsed.
	MsgMalformedDocument = "malformed document"

	// MsgSchemaMismatch is returned when rows do not share the columns of
	// the first row.
	MsgSchemaMismatch = "rows do not share one schema"

	// MsgTypeCoercion is returned when a value does not fit its column type.
	MsgTypeCoercion = "value does not fit its column type"

	// MsgArchiveNotFound is returned when no sealed table has the requested
	// ID.
	MsgArchiveNotFound = "sealed table not found"

	// MsgArchiveAlreadyExists is returned when a sealed table ID collides
	// with a stored one.
	MsgArchiveAlreadyExists = "sealed table already exists"

	// MsgInvalidTargetTable is returned when a restore target table name is
	// rejected.
	MsgInvalidTargetTable = "invalid target table"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
