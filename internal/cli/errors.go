package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/aidanlsb/cardboard/internal/board"
	"github.com/aidanlsb/cardboard/internal/merge"
	"github.com/aidanlsb/cardboard/internal/vcard"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Board errors
	ErrColumnNotFound  = "COLUMN_NOT_FOUND"
	ErrContactNotFound = "CONTACT_NOT_FOUND"

	// Contact errors
	ErrPropertyNotFound    = "PROPERTY_NOT_FOUND"
	ErrBookkeepingProperty = "BOOKKEEPING_PROPERTY"
	ErrMalformedContact    = "MALFORMED_CONTACT"
	ErrInvalidLines        = "INVALID_LINES"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// General errors
	ErrInternal             = "INTERNAL_ERROR"
	ErrConfirmationRequired = "CONFIRMATION_REQUIRED"
	ErrCancelled            = "CANCELLED"
)

// errorCode maps err to a stable code. Errors without a sentinel of their own
// get fallback.
func errorCode(err error, fallback string) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrFileNotFound
	case errors.Is(err, board.ErrColumnNotFound):
		return ErrColumnNotFound
	case errors.Is(err, board.ErrContactNotFound):
		return ErrContactNotFound
	case errors.Is(err, vcard.ErrPropertyNotFound):
		return ErrPropertyNotFound
	case errors.Is(err, vcard.ErrBookkeeping):
		return ErrBookkeepingProperty
	case errors.Is(err, vcard.ErrMalformedContact):
		return ErrMalformedContact
	case errors.Is(err, merge.ErrCommitted):
		return ErrInvalidInput
	case errors.Is(err, context.Canceled):
		return ErrCancelled
	}
	if fallback == "" {
		return ErrInternal
	}
	return fallback
}

// handleErr reports err under its mapped code.
func handleErr(err error, fallback, suggestion string) error {
	return handleError(errorCode(err, fallback), err, suggestion)
}
