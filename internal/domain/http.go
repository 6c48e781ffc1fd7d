package domain

import (
	"context"
	"net/http"
	"time"
)

// HTTPRequest describes a single outgoing HTTPS call.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   map[string]string
	// Body is sent as-is with a JSON content type when non-nil.
	Body []byte
	// Token is sent as "Authorization: Bearer <Token>" when non-empty.
	Token   string
	Timeout time.Duration
	// InsecureSkipVerify accepts self-signed or otherwise invalid certificates.
	InsecureSkipVerify bool
}

// HTTPResponse is a fully read HTTP response.
type HTTPResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// HTTPClient performs HTTPS requests. Transport failures are returned as errors;
// any received response, whatever its status, is returned without error.
type HTTPClient interface {
	Do(ctx context.Context, req HTTPRequest) (*HTTPResponse, error)
}
