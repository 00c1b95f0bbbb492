// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New()

// validate checks the merged configuration against the struct tag rules and
// returns [ErrInvalidConfig] listing every failing field.
func (cfg *StructuredConfig) validate() error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	joined := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		joined = append(joined, fmt.Errorf("%s: failed %q rule (param %q, value %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(joined...))
}
