// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound requests against the account rules
// before they reach storage.
//
// A Validator accepts any supported request value and an optional list of
// field names restricting which rules run. Failures of the input itself are
// reported as *ValidationError carrying one entry per violated rule.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
