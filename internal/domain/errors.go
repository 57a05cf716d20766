package domain

import "fmt"

// ValidationError reports a draft field that fails pre-submit validation.
// The check runs before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "champ obligatoire"}
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
