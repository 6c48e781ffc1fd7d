package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"ppauth/internal/domain"
	"ppauth/internal/errors"
)

const (
	// Standard HTTP content types.
	contentTypeJSON = "application/json"
)

// Adapter is an HTTP client adapter using resty with rate limiting.
// It keeps one client that verifies certificates and one that does not,
// chosen per request.
type Adapter struct {
	secure   *resty.Client
	insecure *resty.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

var _ domain.HTTPClient = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithRateLimit sets the shared request rate. A non-positive rate disables limiting.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(a *Adapter) {
		if requestsPerSecond <= 0 {
			a.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// NewAdapter creates a new HTTP adapter. Requests are not rate limited
// unless WithRateLimit sets a positive rate.
func NewAdapter(logger *slog.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		limiter: rate.NewLimiter(rate.Inf, 0),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.secure = a.newClient(false)
	a.insecure = a.newClient(true)
	return a
}

func (a *Adapter) newClient(insecureSkipVerify bool) *resty.Client {
	client := resty.New().
		SetLogger(newRestyLogger(a.logger)).
		SetRetryCount(0).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // Self-signed appliances are the common case
		})

	limiter := a.limiter
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if err := limiter.Wait(req.Context()); err != nil {
			return errors.NewRateLimitError(req.Method, req.URL, err)
		}
		return nil
	})

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		a.logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
			"verify_tls", !insecureSkipVerify,
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		a.logger.DebugContext(resp.Request.Context(), "HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	return client
}

// Do performs a single request. Only transport failures and rate limiter
// refusals produce an error; every received response is returned whatever
// its status.
func (a *Adapter) Do(ctx context.Context, req domain.HTTPRequest) (*domain.HTTPResponse, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	client := a.secure
	if req.InsecureSkipVerify {
		client = a.insecure
	}

	request := client.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		request.SetHeaders(req.Headers)
	}
	if len(req.Query) > 0 {
		request.SetQueryParams(req.Query)
	}
	if req.Token != "" {
		request.SetAuthToken(req.Token)
	}
	if req.Body != nil {
		request.SetHeader("Content-Type", contentTypeJSON).SetBody(req.Body)
	}

	resp, err := request.Execute(req.Method, req.URL)
	if err != nil {
		if errors.IsRateLimited(err) {
			return nil, err
		}
		return nil, errors.NewNetworkError(req.Method, req.URL, err)
	}

	return &domain.HTTPResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// restyLogger routes resty's internal messages into slog.
type restyLogger struct {
	logger *slog.Logger
}

func newRestyLogger(logger *slog.Logger) *restyLogger {
	return &restyLogger{logger: logger.With("component", "resty")}
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
