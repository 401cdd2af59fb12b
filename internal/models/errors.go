// internal/models/errors.go
package models

import "errors"

var (
	// ErrInvalidInput marks a request the caller can fix and resubmit.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfigurationGap marks an enum value with no entry in a rate table.
	ErrConfigurationGap = errors.New("configuration gap")
)
