package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ppauth/internal/domain"
	apperrors "ppauth/internal/errors"
	"ppauth/internal/services/config"
)

// ConfigInitCommand writes the connection profile.
type ConfigInitCommand struct {
	repo   domain.ProfileRepository
	logger *slog.Logger
}

// NewConfigInitCommand creates a new config init command.
func NewConfigInitCommand(repo domain.ProfileRepository, logger *slog.Logger) *ConfigInitCommand {
	return &ConfigInitCommand{
		repo:   repo,
		logger: logger,
	}
}

// ConfigInitRequest contains the parameters for the config init command.
type ConfigInitRequest struct {
	Profile domain.Profile
	Force   bool
}

// Execute validates and saves the profile, refusing to overwrite unless forced.
func (c *ConfigInitCommand) Execute(ctx context.Context, req ConfigInitRequest) error {
	if req.Profile.Host == "" {
		return apperrors.NewValidationError("host", "", "required", "host is required")
	}
	if req.Profile.Username == "" {
		return apperrors.NewValidationError("username", "", "required", "username is required")
	}

	if !req.Force {
		_, err := c.repo.Load(ctx)
		switch {
		case err == nil:
			return fmt.Errorf("profile already exists at %s (use --force to overwrite)", c.repo.Path())
		case !errors.Is(err, config.ErrProfileNotFound):
			return fmt.Errorf("failed to check existing profile: %w", err)
		}
	}

	if err := c.repo.Save(ctx, req.Profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	c.logger.InfoContext(ctx, "Profile written", "path", c.repo.Path(), "host", req.Profile.Host)
	return nil
}

// ConfigShowCommand reads the connection profile.
type ConfigShowCommand struct {
	repo   domain.ProfileRepository
	logger *slog.Logger
}

// NewConfigShowCommand creates a new config show command.
func NewConfigShowCommand(repo domain.ProfileRepository, logger *slog.Logger) *ConfigShowCommand {
	return &ConfigShowCommand{
		repo:   repo,
		logger: logger,
	}
}

const redacted = "********"

// Execute loads the profile with its one-time code secret redacted.
func (c *ConfigShowCommand) Execute(ctx context.Context) (domain.Profile, error) {
	profile, err := c.repo.Load(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	if profile.TOTPSecret != "" {
		profile.TOTPSecret = redacted
	}
	return profile, nil
}
