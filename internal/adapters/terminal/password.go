// Package terminal reads secrets from the controlling terminal.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"ppauth/internal/domain"
)

// PasswordEnv supplies the password without prompting (useful for CI/CD).
const PasswordEnv = "PPAUTH_PASSWORD"

// ErrNonInteractive is returned when a prompt is needed but stdin is not a terminal.
var ErrNonInteractive = errors.New("cannot read password: non-interactive terminal")

// Adapter handles secure password input from terminal.
type Adapter struct {
	stdin  io.Reader
	stderr io.Writer
	getenv func(string) string
}

var _ domain.PasswordReader = (*Adapter)(nil)

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		stderr: stderr,
		getenv: os.Getenv,
	}
}

// ReadPassword returns the password from PPAUTH_PASSWORD, or prompts for it
// with echo disabled.
func (a *Adapter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if envPassword := a.getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if !a.IsInteractive() {
		return "", fmt.Errorf("%w: set %s", ErrNonInteractive, PasswordEnv)
	}

	fmt.Fprint(a.stderr, prompt)

	file := a.stdin.(*os.File)
	password, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(a.stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimRight(string(password), "\r\n"), nil
}

// IsInteractive returns true if stdin is a terminal.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
