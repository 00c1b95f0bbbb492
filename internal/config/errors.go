package config

import "errors"

var (
	// ErrInvalidConfig is returned when the merged configuration breaks a
	// validation rule, e.g. an iteration count outside 1000..100000.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidNetAddress is returned by [NetAddress.Set] for input that is
	// not a "host:port" pair.
	ErrInvalidNetAddress = errors.New("invalid net address")
)
