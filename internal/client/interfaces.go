// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-sealed-table/internal/adapter"
)

// Client defines the lifecycle contract of the command-line application.
type Client interface {
	// Run executes the subcommand in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// Backend is what subcommands run against. The HTTP adapter implements it
// for remote servers; [NewLocalBackend] implements it over local services.
type Backend interface {
	adapter.ServerAdapter
}

// PasswordSource returns the password for an operation. prompt is shown
// when the password has to be typed.
type PasswordSource func(prompt string) (string, error)
