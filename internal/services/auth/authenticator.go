// Package auth performs the authentication handshake against the API and
// stores the resulting session.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ppauth/internal/domain"
	"ppauth/internal/errors"
	"ppauth/internal/localtime"
)

const (
	authPath       = "auth"
	defaultTimeout = 30 * time.Second
	maxPort        = 65535
)

// Authenticator handles authentication with the API.
type Authenticator struct {
	client  domain.HTTPClient
	store   domain.SessionWriter
	logger  *slog.Logger
	timeout time.Duration
}

var _ domain.Authenticator = (*Authenticator)(nil)

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithTimeout bounds each handshake.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Authenticator) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

// NewAuthenticator creates a new authenticator writing into store.
func NewAuthenticator(
	client domain.HTTPClient,
	store domain.SessionWriter,
	logger *slog.Logger,
	opts ...Option,
) *Authenticator {
	a := &Authenticator{
		client:  client,
		store:   store,
		logger:  logger,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Authenticate performs the handshake and replaces the stored session on success.
// On any failure the store is left untouched.
//
// Certificates are never verified during the handshake. Appliances serving
// this API typically present self-signed certificates; callers on untrusted
// networks should be aware that the exchange is open to interception.
func (a *Authenticator) Authenticate(ctx context.Context, req domain.AuthRequest) (domain.Session, error) {
	if err := validate(req); err != nil {
		return domain.Session{}, err
	}

	host := strings.TrimRight(req.Host, "/")
	url := fmt.Sprintf("https://%s:%d/%s", host, req.Port, authPath)

	body, err := json.Marshal(newAuthPayload(req))
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to encode auth payload: %w", err)
	}

	a.logger.DebugContext(ctx, "Authenticating",
		"host", host,
		"port", req.Port,
		"username", req.Username,
		"totp", hasCode(req.TOTPCode))

	resp, err := a.client.Do(ctx, domain.HTTPRequest{
		Method:             http.MethodPost,
		URL:                url,
		Body:               body,
		Timeout:            a.timeout,
		InsecureSkipVerify: true,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("authentication request failed: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Session{}, errors.NewStatusError(resp.StatusCode, http.MethodPost, url, string(resp.Body))
	}

	var authResp authResponse
	if err := json.Unmarshal(resp.Body, &authResp); err != nil {
		return domain.Session{}, errors.NewParseError("auth response", "", err)
	}

	if authResp.Token == "" {
		return domain.Session{}, errors.NewParseError("auth response", "", fmt.Errorf("no token returned"))
	}

	zone := req.Timezone
	if zone == "" {
		zone = localtime.DefaultZone
	}

	expiresAt, err := localtime.Resolve(authResp.ExpiresAt, zone)
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{
		Token:     authResp.Token,
		ExpiresAt: expiresAt,
		Host:      host,
		Port:      req.Port,
		Credentials: domain.Credentials{
			Username: req.Username,
			Password: req.Password,
		},
		Timezone: zone,
	}
	a.store.Set(session)

	a.logger.InfoContext(ctx, "Authentication successful",
		"host", host,
		"username", req.Username,
		"expires_at", expiresAt.Format(time.RFC3339))

	return session, nil
}

func validate(req domain.AuthRequest) error {
	if strings.TrimSpace(strings.TrimRight(req.Host, "/")) == "" {
		return errors.NewValidationError("host", req.Host, "required", "host is required")
	}
	if req.Port < 1 || req.Port > maxPort {
		return errors.NewValidationError("port", strconv.Itoa(req.Port), "range",
			"port must be between 1 and 65535")
	}
	if req.Username == "" {
		return errors.NewValidationError("username", "", "required", "username is required")
	}
	return nil
}

// hasCode reports whether a one-time code should be sent. The literal "null"
// is how unset codes arrive from some callers.
func hasCode(code string) bool {
	trimmed := strings.TrimSpace(code)
	return trimmed != "" && trimmed != "null"
}

type authPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code,omitempty"`
}

func newAuthPayload(req domain.AuthRequest) authPayload {
	payload := authPayload{
		Username: req.Username,
		Password: req.Password,
	}
	if hasCode(req.TOTPCode) {
		payload.TOTPCode = strings.TrimSpace(req.TOTPCode)
	}
	return payload
}

// authResponse represents the authentication response.
type authResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"` // naive "YYYY-MM-DD HH:MM:SS" in the session timezone
}
