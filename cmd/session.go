package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ppauth/internal/app"
	"ppauth/internal/commands"
	apperrors "ppauth/internal/errors"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var totpCode string

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	rootCmd.PersistentFlags().StringVar(&totpCode, "totp", "", "One-time code for this login (overrides --totp-secret)")
}

// requireApp returns the initialized application or an error.
func requireApp() (*app.App, error) {
	a := GetApp()
	if a == nil {
		return nil, errors.New("application not initialized")
	}
	return a, nil
}

// login establishes the process session from the resolved profile. The
// password comes from PPAUTH_PASSWORD or an interactive prompt.
func login(ctx context.Context, a *app.App) error {
	runtime := a.Config.Runtime
	if runtime.Host == "" || runtime.Username == "" {
		return errors.New("host and username are required: pass --host/--username or run 'ppauth config init'")
	}

	loginCommand := commands.NewLoginCommand(a.Authenticator, a.PasswordReader, a.Codes, a.Logger)
	_, err := loginCommand.Execute(ctx, commands.LoginRequest{
		Host:     runtime.Host,
		Port:     runtime.Port,
		Username: runtime.Username,
		TOTPCode: totpCode,
		Timezone: runtime.Timezone,
	})
	if err != nil {
		return withHint(fmt.Errorf("login failed: %w", err))
	}
	return nil
}

// withHint appends a next step for API refusals a user can act on.
func withHint(err error) error {
	switch {
	case apperrors.IsUnauthorized(err):
		return fmt.Errorf("%w\nhint: check the username, PPAUTH_PASSWORD and one-time code, then log in again", err)
	case apperrors.IsNotFound(err):
		return fmt.Errorf("%w\nhint: check the host, port and request path", err)
	default:
		return err
	}
}

// parsePairs converts repeated key=value flags into a map.
func parsePairs(flag string, pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil //nolint:nilnil // no pairs means no map
	}

	result := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --%s value %q: expected key=value", flag, pair)
		}
		result[key] = value
	}
	return result, nil
}

// commandContext returns the command's context, falling back to Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
