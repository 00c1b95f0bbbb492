// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests before they reach the
// services.
//
// Struct-level rules live in `validate` tags on the request models and are
// enforced with go-playground/validator; rules that span several fields
// (row schemas, for instance) are coded by hand. Every failure is reported
// as one of the sentinel errors of this package.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
