// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks domain models before they reach the services'
// business logic.
//
// A Validator accepts a model and an optional list of field names. With no
// fields a sensible default set is validated; otherwise only the named
// fields are checked, in order, and the first failure is returned.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
