package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ppauth/internal/domain"
)

// LoginCommand establishes the process session.
type LoginCommand struct {
	auth           domain.Authenticator
	passwordReader domain.PasswordReader
	codes          domain.CodeGenerator
	now            func() time.Time
	logger         *slog.Logger
}

// NewLoginCommand creates a new login command. codes may be nil when no
// one-time code secret is configured.
func NewLoginCommand(
	auth domain.Authenticator,
	passwordReader domain.PasswordReader,
	codes domain.CodeGenerator,
	logger *slog.Logger,
) *LoginCommand {
	return &LoginCommand{
		auth:           auth,
		passwordReader: passwordReader,
		codes:          codes,
		now:            time.Now,
		logger:         logger,
	}
}

// LoginRequest contains the parameters for the login command.
type LoginRequest struct {
	Host     string
	Port     int
	Username string
	Password string
	TOTPCode string
	Timezone string
}

// Execute collects any missing secret and runs the handshake.
func (c *LoginCommand) Execute(ctx context.Context, req LoginRequest) (domain.Session, error) {
	password := req.Password
	if password == "" {
		var err error
		password, err = c.passwordReader.ReadPassword(ctx, fmt.Sprintf("Password for %s@%s: ", req.Username, req.Host))
		if err != nil {
			return domain.Session{}, fmt.Errorf("failed to get password: %w", err)
		}
	}

	code := req.TOTPCode
	if code == "" && c.codes != nil {
		generated, err := c.codes.Code(c.now())
		if err != nil {
			return domain.Session{}, fmt.Errorf("failed to compute one-time code: %w", err)
		}
		code = generated
	}

	session, err := c.auth.Authenticate(ctx, domain.AuthRequest{
		Host:     req.Host,
		Port:     req.Port,
		Username: req.Username,
		Password: password,
		TOTPCode: code,
		Timezone: req.Timezone,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to authenticate: %w", err)
	}

	c.logger.DebugContext(ctx, "Logged in", "host", session.Host, "username", req.Username)
	return session, nil
}
