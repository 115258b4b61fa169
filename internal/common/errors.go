// Package common defines sentinel errors and small helpers shared by the
// userkeeper client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository and service level lookups.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Authentication.
	ErrorUnauthorized = errors.New("unauthorized")

	// Input validation.
	ErrorValidation = errors.New("validation error")
)
