package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures theme document validation issues.
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

// MissingNameError reports themes that are neither named nor marked default.
// Such themes can never be selected and indicate an authoring mistake.
type MissingNameError struct {
	Count int
}

// NewMissingNameError constructs a MissingNameError for the given number of
// offending themes.
func NewMissingNameError(count int) error {
	return &MissingNameError{Count: count}
}

func (e *MissingNameError) Error() string {
	if e == nil {
		return ""
	}
	if e.Count == 1 {
		return "theme error: a theme has no name and is not the default theme"
	}
	return fmt.Sprintf("theme error: %d themes have no name and are not the default theme", e.Count)
}

// NoDefaultThemeError reports a theme set with no unscoped default theme.
type NoDefaultThemeError struct{}

// NewNoDefaultThemeError constructs a NoDefaultThemeError.
func NewNoDefaultThemeError() error {
	return &NoDefaultThemeError{}
}

func (e *NoDefaultThemeError) Error() string {
	if e == nil {
		return ""
	}
	return "theme error: no theme is marked as the default theme"
}

// MultipleDefaultThemesError reports more than one unscoped default theme.
type MultipleDefaultThemesError struct {
	Names []string
}

// NewMultipleDefaultThemesError constructs a MultipleDefaultThemesError.
func NewMultipleDefaultThemesError(names []string) error {
	return &MultipleDefaultThemesError{Names: names}
}

func (e *MultipleDefaultThemesError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Names) == 0 {
		return "theme error: multiple themes are marked as the default theme"
	}
	return fmt.Sprintf("theme error: multiple themes are marked as the default theme: %s", strings.Join(e.Names, ", "))
}

// MultipleScopedDefaultThemesError reports more than one default theme for a
// single color scheme.
type MultipleScopedDefaultThemesError struct {
	Scheme string
	Names  []string
}

// NewMultipleScopedDefaultThemesError constructs a MultipleScopedDefaultThemesError.
func NewMultipleScopedDefaultThemesError(scheme string, names []string) error {
	return &MultipleScopedDefaultThemesError{Scheme: scheme, Names: names}
}

func (e *MultipleScopedDefaultThemesError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Names) == 0 {
		return fmt.Sprintf("theme error: multiple default themes for the %s scheme", e.Scheme)
	}
	return fmt.Sprintf("theme error: multiple default themes for the %s scheme: %s", e.Scheme, strings.Join(e.Names, ", "))
}
