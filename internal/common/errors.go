// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrCatalogUnavailable means the catalog could not be loaded from any
	// source; the bot keeps serving degraded replies.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// QuantityErrorReason is the closed set of ways a quantity token can be
// rejected.
type QuantityErrorReason int

const (
	// QuantityInvalidFormat means the token did not match the
	// number-plus-optional-unit grammar at all.
	QuantityInvalidFormat QuantityErrorReason = iota
	// QuantityNotPositive means the number parsed but was zero.
	QuantityNotPositive
	// QuantityUnknownUnit means the unit suffix is not a recognized family.
	QuantityUnknownUnit
)

// QuantityError reports why a quantity token was rejected. The Error text is
// user-facing and mirrors what the bot echoes back per segment.
type QuantityError struct {
	Unit   string
	Reason QuantityErrorReason
}

func (e *QuantityError) Error() string {
	switch e.Reason {
	case QuantityInvalidFormat:
		return "Invalid quantity format"
	case QuantityNotPositive:
		return "Quantity must be greater than 0"
	case QuantityUnknownUnit:
		return fmt.Sprintf("Unknown unit %q - use kg, g, l, ml or just numbers", e.Unit)
	default:
		return "Invalid quantity"
	}
}

// NewQuantityError creates a QuantityError for the given reason.
func NewQuantityError(reason QuantityErrorReason, unit string) error {
	return &QuantityError{Reason: reason, Unit: unit}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
