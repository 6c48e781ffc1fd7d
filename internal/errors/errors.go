// Package errors provides custom error types and utilities for ppauth.
//
// This package provides error handling for:
// - Transport and HTTP status failures
// - Response and date-time parsing failures
// - Timezone resolution failures
// - Session state failures (no session, expired token, failed renewal)
// - Retry exhaustion
// - Configuration and validation errors
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error categories for ppauth operations
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNetwork          = errors.New("network error")
	ErrRateLimited      = errors.New("rate limited")
	ErrStatus           = errors.New("unexpected HTTP status")
	ErrParse            = errors.New("parse error")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrAmbiguousTime    = errors.New("ambiguous local time")
	ErrNoSession        = errors.New("no session")
	ErrTokenExpired     = errors.New("token expired")
	ErrRenewal          = errors.New("renewal failed")
	ErrRetryExhausted   = errors.New("retries exhausted")
	ErrConfiguration    = errors.New("configuration error")
	ErrUnsupportedValue = errors.New("unsupported value")
)

// NetworkError represents a transport-level failure (DNS, TLS, connection, timeout).
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error on %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// NewNetworkError creates a new network error
func NewNetworkError(method, url string, err error) *NetworkError {
	return &NetworkError{
		Method: method,
		URL:    url,
		Err:    err,
	}
}

// RateLimitError reports a request refused by the local rate limiter before
// anything was sent.
type RateLimitError struct {
	Method string
	URL    string
	Err    error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit refused %s %s before sending: %v", e.Method, e.URL, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// NewRateLimitError creates a new rate limit error
func NewRateLimitError(method, url string, err error) *RateLimitError {
	return &RateLimitError{
		Method: method,
		URL:    url,
		Err:    err,
	}
}

// StatusError represents a non-2xx HTTP response
type StatusError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d %s %s: %s", e.StatusCode, e.Method, e.URL, e.Body)
	}
	return fmt.Sprintf("HTTP %d %s %s", e.StatusCode, e.Method, e.URL)
}

func (e *StatusError) Is(target error) bool {
	if target == ErrStatus {
		return true
	}
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusBadRequest:
		return target == ErrInvalidInput
	default:
		return false
	}
}

// NewStatusError creates a new HTTP status error
func NewStatusError(statusCode int, method, url, body string) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Body:       body,
	}
}

// ParseError represents a malformed response body or date-time value
type ParseError struct {
	What  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("failed to parse %s %q: %v", e.What, e.Value, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new parse error
func NewParseError(what, value string, err error) *ParseError {
	return &ParseError{
		What:  what,
		Value: value,
		Err:   err,
	}
}

// InvalidTimezoneError reports a zone name that is not a recognized IANA identifier
type InvalidTimezoneError struct {
	Zone string
	Err  error
}

func (e *InvalidTimezoneError) Error() string {
	return fmt.Sprintf("invalid timezone %q: not a recognized IANA zone", e.Zone)
}

func (e *InvalidTimezoneError) Unwrap() error {
	return e.Err
}

func (e *InvalidTimezoneError) Is(target error) bool {
	return target == ErrInvalidTimezone
}

// NewInvalidTimezoneError creates a new invalid timezone error
func NewInvalidTimezoneError(zone string, err error) *InvalidTimezoneError {
	return &InvalidTimezoneError{Zone: zone, Err: err}
}

// Reasons a local time has no single UTC mapping.
const (
	ReasonNonexistent = "nonexistent"
	ReasonAmbiguous   = "ambiguous"
)

// AmbiguousLocalTimeError reports a local time inside a DST gap or overlap
type AmbiguousLocalTimeError struct {
	Local  string
	Zone   string
	Reason string
}

func (e *AmbiguousLocalTimeError) Error() string {
	switch e.Reason {
	case ReasonNonexistent:
		return fmt.Sprintf("local time %s does not exist in %s (daylight-saving gap)", e.Local, e.Zone)
	default:
		return fmt.Sprintf("local time %s is ambiguous in %s (daylight-saving overlap)", e.Local, e.Zone)
	}
}

func (e *AmbiguousLocalTimeError) Is(target error) bool {
	return target == ErrAmbiguousTime
}

// NewAmbiguousLocalTimeError creates a new ambiguous local time error
func NewAmbiguousLocalTimeError(local, zone, reason string) *AmbiguousLocalTimeError {
	return &AmbiguousLocalTimeError{Local: local, Zone: zone, Reason: reason}
}

// NoSessionError is returned when no session has been established yet
type NoSessionError struct{}

func (e *NoSessionError) Error() string {
	return "not authenticated: no session stored, authenticate first"
}

func (e *NoSessionError) Is(target error) bool {
	return target == ErrNoSession
}

// NewNoSessionError creates a new no-session error
func NewNoSessionError() *NoSessionError {
	return &NoSessionError{}
}

// TokenExpiredError is returned when the stored session is stale and cannot be renewed implicitly
type TokenExpiredError struct {
	ExpiredAt time.Time
}

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf(
		"token expired at %s: request renewal first to enable automatic session renewal",
		e.ExpiredAt.UTC().Format(time.RFC3339),
	)
}

func (e *TokenExpiredError) Is(target error) bool {
	return target == ErrTokenExpired
}

// NewTokenExpiredError creates a new token expired error
func NewTokenExpiredError(expiredAt time.Time) *TokenExpiredError {
	return &TokenExpiredError{ExpiredAt: expiredAt}
}

// RenewalFailedError is returned when a renewal handshake did not yield a valid session
type RenewalFailedError struct {
	Host string
	Err  error
}

func (e *RenewalFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session renewal against %s failed: %v", e.Host, e.Err)
	}
	return fmt.Sprintf("session renewal against %s failed: session still invalid", e.Host)
}

func (e *RenewalFailedError) Unwrap() error {
	return e.Err
}

func (e *RenewalFailedError) Is(target error) bool {
	return target == ErrRenewal
}

// NewRenewalFailedError creates a new renewal failure
func NewRenewalFailedError(host string, err error) *RenewalFailedError {
	return &RenewalFailedError{Host: host, Err: err}
}

// RetryExhaustedError aggregates the failures of every attempt of a retried request
type RetryExhaustedError struct {
	Attempts int
	Errors   []error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("request failed after %d attempt(s): %v", e.Attempts, e.Last())
}

// Last returns the error of the final attempt.
func (e *RetryExhaustedError) Last() error {
	if len(e.Errors) == 0 {
		return errors.New("unknown error")
	}
	return e.Errors[len(e.Errors)-1]
}

func (e *RetryExhaustedError) Unwrap() []error {
	return e.Errors
}

func (e *RetryExhaustedError) Is(target error) bool {
	return target == ErrRetryExhausted
}

// NewRetryExhaustedError creates a retry exhaustion error, filtering out nil errors
func NewRetryExhaustedError(attempts int, errs []error) *RetryExhaustedError {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &RetryExhaustedError{Attempts: attempts, Errors: filtered}
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// IsHTTPStatus checks if an error represents a specific HTTP status
func IsHTTPStatus(err error, statusCode int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == statusCode
	}
	return false
}

// IsServerError checks if an error carries a 5xx HTTP status
func IsServerError(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError && statusErr.StatusCode <= 599
	}
	return false
}

// IsNetwork checks if an error is network-related
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsRateLimited checks if a request was refused by the local rate limiter
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if an error represents an authorization failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNoSession checks if an error reports a missing session
func IsNoSession(err error) bool {
	return errors.Is(err, ErrNoSession)
}

// IsTokenExpired checks if an error reports an expired token
func IsTokenExpired(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

// IsRetryable reports whether a dispatcher attempt may be retried: transport failures and 5xx responses.
func IsRetryable(err error) bool {
	return IsNetwork(err) || IsServerError(err)
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
