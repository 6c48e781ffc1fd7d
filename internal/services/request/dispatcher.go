// Package request issues authenticated GET and POST calls against the
// session's host with bounded retry on transient failures.
package request

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ppauth/internal/domain"
	"ppauth/internal/errors"
	"ppauth/internal/jsonvalue"
)

const (
	// DefaultTimeout applies when a call does not set one.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxRetries caps the retry count a caller may ask for.
	DefaultMaxRetries = 10
	// RetryDelay separates consecutive attempts.
	RetryDelay = 5 * time.Millisecond
)

// GetOptions configures a GET call. The zero value sends a single attempt
// with the default timeout and no certificate verification.
type GetOptions struct {
	Headers map[string]string
	Params  map[string]string
	Timeout time.Duration
	Verify  bool
	Retry   int
}

// PostOptions configures a POST call. A nil JSON sends no body.
type PostOptions struct {
	Headers map[string]string
	JSON    *jsonvalue.Value
	Timeout time.Duration
	Verify  bool
	Retry   int
}

// Dispatcher sends authenticated requests using the stored session.
type Dispatcher struct {
	client     domain.HTTPClient
	store      domain.SessionReader
	policy     domain.RenewalGate
	renewer    domain.Renewer
	logger     *slog.Logger
	now        func() time.Time
	maxRetries int
	retryDelay time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMaxRetries bounds the retry count accepted per call.
func WithMaxRetries(n int) Option {
	return func(d *Dispatcher) {
		if n >= 0 {
			d.maxRetries = n
		}
	}
}

// WithClock replaces the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithRetryDelay overrides the pause between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(d *Dispatcher) {
		if delay >= 0 {
			d.retryDelay = delay
		}
	}
}

// NewDispatcher creates a new request dispatcher. renewer is consulted once
// per call when the session has expired and automatic renewal is allowed.
func NewDispatcher(
	client domain.HTTPClient,
	store domain.SessionReader,
	policy domain.RenewalGate,
	renewer domain.Renewer,
	logger *slog.Logger,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		client:     client,
		store:      store,
		policy:     policy,
		renewer:    renewer,
		logger:     logger,
		now:        time.Now,
		maxRetries: DefaultMaxRetries,
		retryDelay: RetryDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Get performs an authenticated GET and returns the response body.
func (d *Dispatcher) Get(ctx context.Context, path string, opts GetOptions) (string, error) {
	return d.dispatch(ctx, call{
		method:  http.MethodGet,
		path:    path,
		headers: opts.Headers,
		query:   opts.Params,
		timeout: opts.Timeout,
		verify:  opts.Verify,
		retry:   opts.Retry,
	})
}

// Post performs an authenticated POST and returns the response body.
func (d *Dispatcher) Post(ctx context.Context, path string, opts PostOptions) (string, error) {
	c := call{
		method:  http.MethodPost,
		path:    path,
		headers: opts.Headers,
		timeout: opts.Timeout,
		verify:  opts.Verify,
		retry:   opts.Retry,
	}

	if opts.JSON != nil {
		body, err := json.Marshal(opts.JSON)
		if err != nil {
			return "", fmt.Errorf("failed to encode request body: %w", err)
		}
		c.body = body
	}

	return d.dispatch(ctx, c)
}

type call struct {
	method  string
	path    string
	headers map[string]string
	query   map[string]string
	body    []byte
	timeout time.Duration
	verify  bool
	retry   int
}

func (d *Dispatcher) dispatch(ctx context.Context, c call) (string, error) {
	if c.retry < 0 {
		return "", errors.NewValidationError("retry", strconv.Itoa(c.retry), "non_negative",
			"retry count must not be negative")
	}

	session, err := d.session(ctx)
	if err != nil {
		return "", err
	}

	req := domain.HTTPRequest{
		Method:             c.method,
		URL:                fmt.Sprintf("https://%s:%d/%s", session.Host, session.Port, strings.TrimLeft(c.path, "/")),
		Headers:            withoutAuthorization(c.headers),
		Query:              c.query,
		Body:               c.body,
		Token:              session.Token,
		Timeout:            c.timeout,
		InsecureSkipVerify: !c.verify,
	}
	if req.Timeout <= 0 {
		req.Timeout = DefaultTimeout
	}

	logger := d.logger.With("request_id", uuid.NewString(), "method", req.Method, "url", req.URL)

	retries := min(c.retry, d.maxRetries)
	attempts := retries + 1
	var failures []error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, d.retryDelay); err != nil {
				failures = append(failures, err)
				return "", errors.NewRetryExhaustedError(attempt-1, failures)
			}
		}

		body, err := d.send(ctx, req)
		if err == nil {
			logger.DebugContext(ctx, "Request succeeded", "attempt", attempt)
			return body, nil
		}

		if errors.IsRateLimited(err) {
			// Nothing was sent, so the refused attempt is not counted.
			if len(failures) == 0 {
				return "", err
			}
			return "", errors.NewRetryExhaustedError(attempt-1, append(failures, err))
		}

		if !errors.IsRetryable(err) {
			return "", err
		}

		failures = append(failures, err)
		if attempt < attempts {
			logger.WarnContext(ctx, "Request failed, retrying",
				"attempt", attempt,
				"max_attempts", attempts,
				"error", err)
		}
	}

	logger.WarnContext(ctx, "Request failed, retries exhausted", "attempts", attempts)
	return "", errors.NewRetryExhaustedError(attempts, failures)
}

// session returns the stored session, renewing it once when it has expired
// and automatic renewal is allowed.
func (d *Dispatcher) session(ctx context.Context) (domain.Session, error) {
	session, ok := d.store.Get()
	if !ok {
		return domain.Session{}, errors.NewNoSessionError()
	}
	if session.ValidAt(d.now()) {
		return session, nil
	}

	if d.renewer == nil || !d.policy.Allowed() {
		return domain.Session{}, errors.NewTokenExpiredError(session.ExpiresAt)
	}

	d.logger.DebugContext(ctx, "Session expired before dispatch, renewing", "host", session.Host)
	if !d.renewer.Renew(ctx) {
		return domain.Session{}, errors.NewRenewalFailedError(session.Host, nil)
	}

	renewed, ok := d.store.Get()
	if !ok || !renewed.ValidAt(d.now()) {
		return domain.Session{}, errors.NewRenewalFailedError(session.Host, nil)
	}
	return renewed, nil
}

func (d *Dispatcher) send(ctx context.Context, req domain.HTTPRequest) (string, error) {
	resp, err := d.client.Do(ctx, req)
	if err != nil {
		if errors.IsNetwork(err) || errors.IsRateLimited(err) {
			return "", err
		}
		return "", errors.NewNetworkError(req.Method, req.URL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.NewStatusError(resp.StatusCode, req.Method, req.URL, string(resp.Body))
	}

	return string(resp.Body), nil
}

// withoutAuthorization copies headers, dropping any Authorization entry
// regardless of case. The session token always takes its place.
func withoutAuthorization(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return nil
	}

	filtered := make(map[string]string, len(headers))
	for name, value := range headers {
		if strings.EqualFold(strings.TrimSpace(name), "Authorization") {
			continue
		}
		filtered[name] = value
	}
	return filtered
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
