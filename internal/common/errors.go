// Package common defines sentinel errors shared by the AskPro repositories,
// services and front ends. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation error")
)

// UserMessage renders err for display. For validation, authorization and
// duplicate errors the wrapping message already says everything, so the
// sentinel suffix is dropped.
func UserMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrUnauthorized, ErrAlreadyExists} {
		if errors.Is(err, sentinel) {
			return strings.TrimSuffix(msg, ": "+sentinel.Error())
		}
	}
	return msg
}
