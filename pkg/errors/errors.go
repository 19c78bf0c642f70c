// Package errors provides custom error types for the thema system.
// These errors enable programmatic error checking and give every failure
// a single classification (see Kind) that the HTTP layer translates to a
// status code in exactly one place.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As forward to the standard library so callers need one errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the thema system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSearch indicates a search without any search parameter
	ErrInvalidSearch = errors.New("at least one search parameter (query or parent) is required")

	// ErrDataUnavailable indicates the source document could not be located or decoded
	ErrDataUnavailable = errors.New("code list data unavailable")
)

// Resource names used with NotFoundError.
const (
	ResourceCode       = "code"
	ResourceParentCode = "parent code"
	ResourceEndpoint   = "endpoint"
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with value '%s' not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
	Err     error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// NewInvalidSearchError reports a search request that carries neither a
// text query nor a parent filter.
func NewInvalidSearchError() *ValidationError {
	return &ValidationError{
		Field:   "query",
		Message: ErrInvalidSearch.Error(),
		Err:     ErrInvalidSearch,
	}
}

// DataError represents a failure to locate or decode the source document.
// It is fatal at startup.
type DataError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DataError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("code list data error in %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("code list data error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DataError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DataError) Is(target error) bool {
	return target == ErrDataUnavailable
}

// NewDataError creates a new DataError
func NewDataError(path, message string, err error) *DataError {
	return &DataError{Path: path, Message: message, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "create", "read"
	Resource  string // "config", "code list", "server"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidSearch checks if an error reports a search without parameters
func IsInvalidSearch(err error) bool {
	return errors.Is(err, ErrInvalidSearch)
}

// IsDataError checks if an error is a source document failure
func IsDataError(err error) bool {
	return errors.Is(err, ErrDataUnavailable)
}

// Helper wrapping functions for common patterns

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
