// Package token hands out bearer tokens from the session store and decides
// when an expired session is renewed.
package token

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"ppauth/internal/domain"
	"ppauth/internal/errors"
)

// State is the lifecycle position of the stored session.
type State int

const (
	NoSession State = iota
	Valid
	Expired
)

func (s State) String() string {
	switch s {
	case NoSession:
		return "no_session"
	case Valid:
		return "valid"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Accessor reads the session store and renews through the authenticator.
type Accessor struct {
	store  domain.SessionReader
	policy domain.RenewalGate
	auth   domain.Authenticator
	logger *slog.Logger
	now    func() time.Time

	dedup bool
	group singleflight.Group
}

var (
	_ domain.TokenSource = (*Accessor)(nil)
	_ domain.Renewer     = (*Accessor)(nil)
)

// Option configures an Accessor.
type Option func(*Accessor)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(a *Accessor) {
		if now != nil {
			a.now = now
		}
	}
}

// WithSingleFlight collapses concurrent renewals into one handshake whose
// outcome every waiting caller shares. Without it each caller performs its
// own handshake and the last write to the store wins.
func WithSingleFlight() Option {
	return func(a *Accessor) {
		a.dedup = true
	}
}

// NewAccessor creates a new token accessor.
func NewAccessor(
	store domain.SessionReader,
	policy domain.RenewalGate,
	auth domain.Authenticator,
	logger *slog.Logger,
	opts ...Option,
) *Accessor {
	a := &Accessor{
		store:  store,
		policy: policy,
		auth:   auth,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State reports whether a session exists and whether it is still valid.
func (a *Accessor) State() State {
	session, ok := a.store.Get()
	switch {
	case !ok:
		return NoSession
	case session.ValidAt(a.now()):
		return Valid
	default:
		return Expired
	}
}

// Token returns a usable bearer token. An expired session is renewed first
// when the renewal policy allows it.
func (a *Accessor) Token(ctx context.Context) (string, error) {
	session, ok := a.store.Get()
	if !ok {
		return "", errors.NewNoSessionError()
	}

	if session.ValidAt(a.now()) {
		return session.Token, nil
	}

	if !a.policy.Allowed() {
		return "", errors.NewTokenExpiredError(session.ExpiresAt)
	}

	renewed, err := a.renew(ctx, session)
	if err != nil {
		return "", errors.NewRenewalFailedError(session.Host, err)
	}
	if !renewed.ValidAt(a.now()) {
		return "", errors.NewRenewalFailedError(session.Host, nil)
	}

	return renewed.Token, nil
}

// Probe disables automatic renewal and reports whether the current session
// is valid. It never performs network I/O.
func (a *Accessor) Probe() bool {
	a.policy.Allow(false)
	return a.State() == Valid
}

// Renew enables automatic renewal and makes sure a valid session is stored,
// running the handshake with the stored credentials when it has expired.
// Handshake failures are logged and reported as false.
func (a *Accessor) Renew(ctx context.Context) bool {
	a.policy.Allow(true)

	session, ok := a.store.Get()
	if !ok {
		return false
	}
	if session.ValidAt(a.now()) {
		return true
	}

	renewed, err := a.renew(ctx, session)
	if err != nil {
		a.logger.WarnContext(ctx, "Session renewal failed",
			"host", session.Host,
			"username", session.Credentials.Username,
			"error", err)
		return false
	}

	return renewed.ValidAt(a.now())
}

// Check probes or renews depending on renew.
func (a *Accessor) Check(ctx context.Context, renew bool) bool {
	if renew {
		return a.Renew(ctx)
	}
	return a.Probe()
}

// Lease returns the whole seconds left before the session expires, never negative.
func (a *Accessor) Lease() (int64, error) {
	session, ok := a.store.Get()
	if !ok {
		return 0, errors.NewNoSessionError()
	}
	return int64(session.Remaining(a.now()) / time.Second), nil
}

// IsLogged reports whether a valid session is stored.
func (a *Accessor) IsLogged() bool {
	return a.State() == Valid
}

// renew re-runs the handshake with the parameters of session. One-time codes
// are never replayed.
func (a *Accessor) renew(ctx context.Context, session domain.Session) (domain.Session, error) {
	req := domain.AuthRequest{
		Host:     session.Host,
		Port:     session.Port,
		Username: session.Credentials.Username,
		Password: session.Credentials.Password,
		Timezone: session.Timezone,
	}

	a.logger.DebugContext(ctx, "Renewing session",
		"host", session.Host,
		"expired_at", session.ExpiresAt.Format(time.RFC3339))

	if !a.dedup {
		return a.auth.Authenticate(ctx, req)
	}

	key := fmt.Sprintf("%s:%d:%s", session.Host, session.Port, session.Credentials.Username)
	result, err, shared := a.group.Do(key, func() (any, error) {
		return a.auth.Authenticate(ctx, req)
	})
	if shared {
		a.logger.DebugContext(ctx, "Joined in-flight renewal", "host", session.Host)
	}
	if err != nil {
		return domain.Session{}, err
	}
	return result.(domain.Session), nil
}
