package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ppauth/internal/domain"
)

// ErrSessionInvalid is returned when a probe or renewal leaves no valid session.
var ErrSessionInvalid = errors.New("session is not valid")

// TokenCommand reports the current token and its remaining lease.
type TokenCommand struct {
	tokens domain.TokenSource
	logger *slog.Logger
}

// NewTokenCommand creates a new token command.
func NewTokenCommand(tokens domain.TokenSource, logger *slog.Logger) *TokenCommand {
	return &TokenCommand{
		tokens: tokens,
		logger: logger,
	}
}

// TokenRequest contains the parameters for the token command.
// Probe and Renew are mutually exclusive; Renew wins when both are set.
type TokenRequest struct {
	Renew bool
	Probe bool
}

// TokenResult is the outcome of the token command.
type TokenResult struct {
	Token        string
	LeaseSeconds int64
}

// Execute checks the session in the requested mode and returns its token.
func (c *TokenCommand) Execute(ctx context.Context, req TokenRequest) (TokenResult, error) {
	if req.Renew || req.Probe {
		if !c.tokens.Check(ctx, req.Renew) {
			return TokenResult{}, ErrSessionInvalid
		}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return TokenResult{}, fmt.Errorf("failed to get token: %w", err)
	}

	lease, err := c.tokens.Lease()
	if err != nil {
		return TokenResult{}, fmt.Errorf("failed to get lease: %w", err)
	}

	c.logger.DebugContext(ctx, "Token retrieved", "lease_seconds", lease)
	return TokenResult{Token: token, LeaseSeconds: lease}, nil
}
