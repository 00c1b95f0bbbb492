// Package config loads, merges and validates configuration for the
// sealed-table server and CLI.
//
// Sources are applied in the following order, later non-zero fields
// overriding earlier ones:
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags
//  4. JSON config file
//
// The merged result is validated with go-playground/validator struct tags.
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
