package domain

import (
	"context"
	"time"
)

// Credentials are captured once at authentication and re-supplied verbatim on every renewal.
type Credentials struct {
	Username string
	Password string
}

// Session is the single authenticated identity held by a process.
// ExpiresAt is always stored in UTC and Token is never empty.
type Session struct {
	Token       string
	ExpiresAt   time.Time
	Host        string
	Port        int
	Credentials Credentials
	Timezone    string
}

// ValidAt reports whether the session is still usable at the given instant.
// There is no grace period: a session expiring exactly at now is expired.
func (s Session) ValidAt(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// Remaining returns the validity left at the given instant, never negative.
func (s Session) Remaining(now time.Time) time.Duration {
	if d := s.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// AuthRequest carries the inputs of an authentication handshake.
type AuthRequest struct {
	Host     string
	Port     int
	Username string
	Password string
	TOTPCode string
	Timezone string
}

// Authenticator performs the authentication handshake and stores the resulting session.
type Authenticator interface {
	Authenticate(ctx context.Context, req AuthRequest) (Session, error)
}

// Renewer re-runs the authentication handshake for the stored session.
// It reports whether the store holds a valid session afterwards.
type Renewer interface {
	Renew(ctx context.Context) bool
}

// TokenSource hands out usable bearer tokens and reports session validity.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Check(ctx context.Context, renew bool) bool
	Lease() (int64, error)
	IsLogged() bool
}

// SessionReader exposes read access to the current session.
type SessionReader interface {
	Get() (Session, bool)
}

// SessionWriter replaces the current session wholesale.
type SessionWriter interface {
	Set(session Session)
}

// RenewalGate exposes the process-wide auto-renew policy.
type RenewalGate interface {
	Allow(allowed bool)
	Allowed() bool
}
