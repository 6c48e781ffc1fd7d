package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestStatusError(t *testing.T) {
	err := NewStatusError(404, "GET", "https://api.example.com:8443/items", "item not found")

	expectedMsg := "HTTP 404 GET https://api.example.com:8443/items: item not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsNotFound(err) {
		t.Error("Expected StatusError with 404 to be identified as NotFound")
	}

	if !errors.Is(err, ErrStatus) {
		t.Error("Expected StatusError to match ErrStatus")
	}
}

func TestStatusError_EmptyBody(t *testing.T) {
	err := NewStatusError(500, "POST", "/auth", "")

	expectedMsg := "HTTP 500 POST /auth"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusBadRequest, ErrInvalidInput},
	}

	for _, test := range tests {
		err := NewStatusError(test.statusCode, "GET", "/test", "test error")
		if !errors.Is(err, test.expected) {
			t.Errorf("Expected HTTP %d to map to %v", test.statusCode, test.expected)
		}
	}
}

func TestIsServerError(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{NewStatusError(500, "GET", "/x", ""), true},
		{NewStatusError(503, "GET", "/x", ""), true},
		{NewStatusError(599, "GET", "/x", ""), true},
		{NewStatusError(404, "GET", "/x", ""), false},
		{NewStatusError(429, "GET", "/x", ""), false},
		{fmt.Errorf("wrapped: %w", NewStatusError(502, "GET", "/x", "")), true},
		{errors.New("plain"), false},
	}

	for _, test := range tests {
		if got := IsServerError(test.err); got != test.expected {
			t.Errorf("IsServerError(%v) = %v, want %v", test.err, got, test.expected)
		}
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("GET", "https://api.example.com:8443/x", cause)

	if !IsNetwork(err) {
		t.Error("Expected NetworkError to be identified as network error")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected NetworkError to wrap the underlying cause")
	}

	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected message to include cause, got %q", err.Error())
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(NewNetworkError("GET", "/x", errors.New("reset"))) {
		t.Error("Expected network errors to be retryable")
	}
	if !IsRetryable(NewStatusError(502, "GET", "/x", "")) {
		t.Error("Expected 5xx errors to be retryable")
	}
	if IsRetryable(NewStatusError(404, "GET", "/x", "")) {
		t.Error("Expected 4xx errors not to be retryable")
	}
	if IsRetryable(NewParseError("body", "", errors.New("bad json"))) {
		t.Error("Expected parse errors not to be retryable")
	}
}

func TestParseError(t *testing.T) {
	cause := errors.New("cannot parse")
	err := NewParseError("expires_at", "tomorrow", cause)

	expectedMsg := `failed to parse expires_at "tomorrow": cannot parse`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrParse) {
		t.Error("Expected ParseError to match ErrParse")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected ParseError to wrap the underlying cause")
	}
}

func TestTimezoneErrorsAreDistinct(t *testing.T) {
	invalid := NewInvalidTimezoneError("Mars/Olympus", nil)
	gap := NewAmbiguousLocalTimeError("2024-03-10 02:30:00", "America/New_York", ReasonNonexistent)
	overlap := NewAmbiguousLocalTimeError("2024-11-03 01:30:00", "America/New_York", ReasonAmbiguous)

	if !errors.Is(invalid, ErrInvalidTimezone) || errors.Is(invalid, ErrAmbiguousTime) {
		t.Error("Expected InvalidTimezoneError to match only ErrInvalidTimezone")
	}

	if !errors.Is(gap, ErrAmbiguousTime) || errors.Is(gap, ErrInvalidTimezone) {
		t.Error("Expected AmbiguousLocalTimeError to match only ErrAmbiguousTime")
	}

	if !strings.Contains(gap.Error(), "gap") {
		t.Errorf("Expected gap reason in message, got %q", gap.Error())
	}

	if !strings.Contains(overlap.Error(), "overlap") {
		t.Errorf("Expected overlap reason in message, got %q", overlap.Error())
	}
}

func TestSessionErrors(t *testing.T) {
	noSession := NewNoSessionError()
	if !IsNoSession(noSession) {
		t.Error("Expected NoSessionError to be identified as no session")
	}

	expired := NewTokenExpiredError(time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC))
	if !IsTokenExpired(expired) {
		t.Error("Expected TokenExpiredError to be identified as expired")
	}
	if !strings.Contains(expired.Error(), "2024-01-01T05:00:00Z") {
		t.Errorf("Expected expiry instant in message, got %q", expired.Error())
	}
	if !strings.Contains(expired.Error(), "renewal") {
		t.Errorf("Expected renewal hint in message, got %q", expired.Error())
	}
}

func TestRenewalFailedError(t *testing.T) {
	cause := NewStatusError(401, "POST", "https://api.example.com:8443/auth", "bad credentials")
	err := NewRenewalFailedError("api.example.com", cause)

	if !errors.Is(err, ErrRenewal) {
		t.Error("Expected RenewalFailedError to match ErrRenewal")
	}

	if !IsUnauthorized(err) {
		t.Error("Expected to unwrap through to the 401 status")
	}

	withoutCause := NewRenewalFailedError("api.example.com", nil)
	if !strings.Contains(withoutCause.Error(), "still invalid") {
		t.Errorf("Expected message about invalid session, got %q", withoutCause.Error())
	}
}

func TestRetryExhaustedError(t *testing.T) {
	first := NewNetworkError("GET", "/x", errors.New("connection reset"))
	last := NewStatusError(500, "GET", "/x", "boom")

	err := NewRetryExhaustedError(3, []error{first, nil, last})

	if err.Attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", err.Attempts)
	}

	if len(err.Errors) != 2 {
		t.Errorf("Expected nil errors to be filtered, got %d", len(err.Errors))
	}

	if err.Last() != last {
		t.Errorf("Expected last error to be the final attempt, got %v", err.Last())
	}

	expectedMsg := "request failed after 3 attempt(s): HTTP 500 GET /x: boom"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrRetryExhausted) {
		t.Error("Expected RetryExhaustedError to match ErrRetryExhausted")
	}

	if !IsNetwork(err) || !IsHTTPStatus(err, 500) {
		t.Error("Expected to unwrap into every attempt error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Error("Expected to extract StatusError from RetryExhaustedError")
	}
}

func TestRetryExhaustedError_Empty(t *testing.T) {
	err := NewRetryExhaustedError(1, nil)
	if !strings.Contains(err.Error(), "unknown error") {
		t.Errorf("Expected unknown error message, got %q", err.Error())
	}
}

func TestConfigurationError(t *testing.T) {
	cause := errors.New("file not found")
	err := NewConfigurationError("port", "0", "port must be between 1 and 65535", cause)

	expectedMsg := "configuration error in field 'port': port must be between 1 and 65535"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsConfiguration(err) {
		t.Error("Expected ConfigurationError to be identified as configuration error")
	}

	if err.Unwrap() != cause {
		t.Errorf("Expected unwrapped error to be %v, got %v", cause, err.Unwrap())
	}
}

func TestConfigurationError_EmptyField(t *testing.T) {
	err := NewConfigurationError("", "value", "generic configuration error", nil)

	expectedMsg := "configuration error: generic configuration error"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("retry", "-1", "non_negative", "retry count must not be negative")

	expectedMsg := "validation error in field 'retry': retry count must not be negative"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsValidation(err) {
		t.Error("Expected ValidationError to be identified as validation error")
	}
}

func TestIsHTTPStatus_NonHTTPError(t *testing.T) {
	regularErr := errors.New("not an HTTP error")

	if IsHTTPStatus(regularErr, 404) {
		t.Error("Expected IsHTTPStatus to return false for non-HTTP error")
	}
}

func TestRateLimitError(t *testing.T) {
	cause := errors.New("rate: Wait(n=1) would exceed context deadline")
	err := NewRateLimitError("GET", "https://api.example.com:8443/x", cause)

	if !IsRateLimited(err) {
		t.Error("Expected RateLimitError to be identified as rate limited")
	}

	if IsNetwork(err) || IsRetryable(err) {
		t.Error("Expected a rate limiter refusal to be neither a network error nor retryable")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected RateLimitError to wrap the limiter error")
	}

	if !strings.Contains(err.Error(), "before sending") {
		t.Errorf("Expected message to state nothing was sent, got %q", err.Error())
	}
}
