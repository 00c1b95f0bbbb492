// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sealed-table command-line application.
//
// Subcommands run against a [Backend]: either the local services over the
// configured databases, or a remote server through the HTTP adapter. Tables
// are printed as tab-separated values on the configured writer.
package client
