package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ppauth/internal/errors"
	"ppauth/internal/jsonvalue"
	"ppauth/internal/services/request"
)

// Requester sends authenticated API calls.
type Requester interface {
	Get(ctx context.Context, path string, opts request.GetOptions) (string, error)
	Post(ctx context.Context, path string, opts request.PostOptions) (string, error)
}

// RequestCommand issues a single GET or POST call.
type RequestCommand struct {
	requester Requester
	logger    *slog.Logger
}

// NewRequestCommand creates a new request command.
func NewRequestCommand(requester Requester, logger *slog.Logger) *RequestCommand {
	return &RequestCommand{
		requester: requester,
		logger:    logger,
	}
}

// RequestRequest contains the parameters for the request command.
type RequestRequest struct {
	Method  string
	Path    string
	Headers map[string]string
	Params  map[string]string
	// Body is raw JSON text, POST only.
	Body    string
	Timeout time.Duration
	Verify  bool
	Retry   int
}

// Execute sends the call and returns the response body.
func (c *RequestCommand) Execute(ctx context.Context, req RequestRequest) (string, error) {
	c.logger.DebugContext(ctx, "Dispatching request", "method", req.Method, "path", req.Path, "retry", req.Retry)

	switch strings.ToUpper(req.Method) {
	case http.MethodGet:
		return c.requester.Get(ctx, req.Path, request.GetOptions{
			Headers: req.Headers,
			Params:  req.Params,
			Timeout: req.Timeout,
			Verify:  req.Verify,
			Retry:   req.Retry,
		})
	case http.MethodPost:
		opts := request.PostOptions{
			Headers: req.Headers,
			Timeout: req.Timeout,
			Verify:  req.Verify,
			Retry:   req.Retry,
		}
		if strings.TrimSpace(req.Body) != "" {
			body, err := jsonvalue.Parse([]byte(req.Body))
			if err != nil {
				return "", fmt.Errorf("invalid request body: %w", err)
			}
			opts.JSON = &body
		}
		return c.requester.Post(ctx, req.Path, opts)
	default:
		return "", errors.NewValidationError("method", req.Method, "supported_values", "method must be GET or POST")
	}
}
