// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the sealed-table server
// and CLI. It is populated by merging environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - validate  — go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds envelope defaults, the request integrity key and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the archive database and the source database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the CLI uses to reach a remote server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Iterations is the default PBKDF2 iteration count for new envelopes.
	// Env: APP_ITERATIONS
	Iterations int `env:"ITERATIONS" validate:"min=1000,max=100000"`

	// SaltLength is the length of generated salts in bytes.
	// Env: APP_SALT_LENGTH
	SaltLength int `env:"SALT_LENGTH" validate:"min=8,max=64"`

	// HashKey is the HMAC key for the HashSHA256 request/response header.
	// Integrity checking is off when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel applies to the CLI logger.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
}

// Storage groups both databases.
type Storage struct {
	// DB is the archive database holding sealed tables.
	DB DB `envPrefix:"DB_"`

	// Source is the database queried for result sets to seal and written to
	// on restore. When its DSN is empty the archive database is used.
	Source DB `envPrefix:"SOURCE_"`
}

// DB holds connection settings for one database.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER / STORAGE_SOURCE_DRIVER
	Driver string `env:"DRIVER" validate:"omitempty,oneof=sqlite3 pgx"`

	// DSN is the connection string: a file path for sqlite3, a URL for pgx.
	// Env: STORAGE_DB_DATABASE_URI / STORAGE_SOURCE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// Adapter holds the outbound HTTP settings of the CLI.
type Adapter struct {
	// HTTPAddress is the base URL of a remote server. Empty means the CLI
	// works locally.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"omitempty,url"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// SourceDB returns the source database settings, falling back to the archive
// database when no source DSN is configured.
func (s Storage) SourceDB() DB {
	if s.Source.DSN == "" {
		return s.DB
	}
	if s.Source.Driver == "" {
		return DB{Driver: s.DB.Driver, DSN: s.Source.DSN}
	}
	return s.Source
}

// GetStructuredConfig loads, merges and validates the configuration. Sources
// are applied in this order, later non-zero values winning:
//  1. defaults
//  2. environment variables
//  3. command-line flags parsed from args
//  4. JSON file (path taken from env or flags)
//
// It also returns the arguments left after flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args)

	rest := b.rest

	cfg, err := b.withJSON().build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}
