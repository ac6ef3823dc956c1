package formfield

import (
	"strings"
	"sync"
)

// KindValidation is the error kind reported for a value that fails the
// validation pattern.
const KindValidation = "validation"

// Validator collects field errors during form validation.
type Validator interface {
	ValidationError(field, message, kind string)
}

// FieldError is a single reported validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// Error implements error.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrorList is a Validator that records every reported error. It is safe for
// concurrent use.
type ErrorList struct {
	mu     sync.Mutex
	errors []FieldError
}

// ValidationError records an error.
func (l *ErrorList) ValidationError(field, message, kind string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, FieldError{Field: field, Message: message, Kind: kind})
}

// Errors returns a copy of the recorded errors.
func (l *ErrorList) Errors() []FieldError {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]FieldError(nil), l.errors...)
}

// Valid reports whether no error was recorded.
func (l *ErrorList) Valid() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors) == 0
}

// Error joins the recorded errors, or returns "" when there are none.
func (l *ErrorList) Error() string {
	errs := l.Errors()
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
