// Package totp derives one-time codes for the handshake from a shared secret.
package totp

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"

	"ppauth/internal/domain"
	"ppauth/internal/errors"
)

// Generator computes RFC 6238 codes from a base32 secret.
type Generator struct {
	secret string
}

var _ domain.CodeGenerator = (*Generator)(nil)

// NewGenerator validates secret and returns a generator for it.
func NewGenerator(secret string) (*Generator, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(secret), " ", ""))
	if normalized == "" {
		return nil, errors.NewConfigurationError("totp_secret", "", "secret is empty", nil)
	}

	if _, err := totp.GenerateCode(normalized, time.Now()); err != nil {
		return nil, errors.NewConfigurationError("totp_secret", "", "secret is not valid base32", err)
	}

	return &Generator{secret: normalized}, nil
}

// Code returns the code valid at the given instant.
func (g *Generator) Code(at time.Time) (string, error) {
	code, err := totp.GenerateCode(g.secret, at)
	if err != nil {
		return "", fmt.Errorf("failed to generate one-time code: %w", err)
	}
	return code, nil
}
