package domain

import (
	"context"
	"time"
)

// PasswordReader handles secure password input from users.
type PasswordReader interface {
	ReadPassword(ctx context.Context, prompt string) (string, error)
	IsInteractive() bool
}

// CodeGenerator produces one-time codes for the authentication handshake.
type CodeGenerator interface {
	Code(at time.Time) (string, error)
}
