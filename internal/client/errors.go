package client

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrConflictingFlags = errors.New("conflicting flags")

	// ErrLocalOnly is returned for operations that need direct database
	// access while the CLI is configured for a remote server.
	ErrLocalOnly = errors.New("operation is only available without -remote")

	ErrNoPassword = errors.New("no password: set SEALTABLE_PASSWORD or run in a terminal")
)
