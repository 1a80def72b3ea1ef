package errors

import (
	"fmt"
)

// ParseError represents a YAML or JSON decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownFieldError reports a settings path that does not address a field of the tree.
type UnknownFieldError struct {
	Path string
}

// NewUnknownFieldError constructs an UnknownFieldError for the given dotted path.
func NewUnknownFieldError(path string) error {
	return &UnknownFieldError{Path: path}
}

func (e *UnknownFieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown settings field %q", e.Path)
}

// ProfileError indicates a request for a profile that does not exist.
type ProfileError struct {
	Profile string
	Err     error
}

// NewProfileError constructs a ProfileError for the given profile name.
func NewProfileError(profile string, err error) error {
	return &ProfileError{Profile: profile, Err: err}
}

func (e *ProfileError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("profile error [%s]: %v", e.Profile, e.Err)
	}
	return fmt.Sprintf("profile error [%s]", e.Profile)
}

// Unwrap exposes the underlying error.
func (e *ProfileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
