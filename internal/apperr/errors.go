// Package apperr defines the error kinds shared by the store gateway,
// the external-service clients and the HTTP handlers, so that handlers
// can map outcomes to status codes without string matching.
package apperr

import (
	"errors"
	"fmt"
	"net/url"
)

// ValidationError means the caller supplied bad input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validation creates a ValidationError with the given message.
func Validation(msg string) error {
	return &ValidationError{msg: msg}
}

// NotFoundError means the referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// NotFound creates a NotFoundError for the given entity and id.
func NotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// StoreError means the persistence layer failed.
type StoreError struct {
	err error
}

func (e *StoreError) Error() string { return "store: " + e.err.Error() }

func (e *StoreError) Unwrap() error { return e.err }

// Store wraps err as a StoreError. Already-wrapped errors pass through.
func Store(err error) error {
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{err: err}
}

// ConfigError means a required external credential or endpoint is missing.
type ConfigError struct {
	Name string
}

func (e *ConfigError) Error() string { return e.Name + " is not configured" }

// Config creates a ConfigError naming the missing setting.
func Config(name string) error {
	return &ConfigError{Name: name}
}

// UpstreamError means an external service was reachable but returned a
// failure or a malformed response. Status is 0 when no HTTP status applies
// (e.g. transport error or parse failure).
type UpstreamError struct {
	Service string
	Status  int
	msg     string
	err     error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.Status, e.msg)
	}
	return e.Service + ": " + e.msg
}

func (e *UpstreamError) Unwrap() error { return e.err }

// Upstream creates an UpstreamError for a non-success HTTP response.
func Upstream(service string, status int, body string) error {
	return &UpstreamError{Service: service, Status: status, msg: body}
}

// UpstreamWrap creates an UpstreamError wrapping a transport or parse error.
func UpstreamWrap(service string, err error) error {
	return &UpstreamError{Service: service, msg: err.Error(), err: err}
}

// UpstreamTransport wraps an HTTP client error, first stripping the
// *url.Error layer: its message quotes the full request URL, which for
// some services carries a credential, and error messages end up in
// server-error response bodies.
func UpstreamTransport(service string, err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		err = ue.Err
	}
	return &UpstreamError{Service: service, msg: err.Error(), err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsStore reports whether err is a StoreError.
func IsStore(err error) bool {
	var e *StoreError
	return errors.As(err, &e)
}

// IsConfig reports whether err is a ConfigError.
func IsConfig(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsUpstream reports whether err is an UpstreamError.
func IsUpstream(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}

// Kind returns a short machine-readable label for the error, used in
// server-error response bodies and logs.
func Kind(err error) string {
	switch {
	case IsValidation(err):
		return "validation_error"
	case IsNotFound(err):
		return "not_found"
	case IsStore(err):
		return "store_error"
	case IsConfig(err):
		return "config_error"
	case IsUpstream(err):
		return "upstream_error"
	default:
		return "internal_error"
	}
}
