// Package common defines sentinel errors and small helpers shared by the
// services and the CLI. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Submission errors.
	ErrValidation         = errors.New("validation error")
	ErrMissingCredentials = errors.New("please enter both username and password")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Input errors.
	ErrAborted = errors.New("input aborted")
)
