// Package service holds the request-level operations: one service call per
// inbound request, zero to two row-store operations per call.
package service

import "errors"

var (
	// ErrInvalidInput reports missing required fields.
	ErrInvalidInput = errors.New("email and secret required")
	// ErrUserExists reports a duplicate registration.
	ErrUserExists = errors.New("user exists")
	// ErrInvalidCredentials reports a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
