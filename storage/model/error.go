package model

import (
	"fmt"
)

// NotFoundError is an error signaling that something was not found in the
// database
type NotFoundError string

// Error implements the error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// ValidationError signals that a record could not be stored because one of
// its attributes is missing or invalid
type ValidationError string

// Error implements the error interface
func (e ValidationError) Error() string {
	return string(e)
}

// ValidationErrorFmt returns a ValidationError from the passed format string and parameters
func ValidationErrorFmt(format string, params ...any) ValidationError {
	return ValidationError(fmt.Sprintf(format, params...))
}
