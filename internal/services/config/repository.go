// Package config persists the connection profile used by the CLI.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ppauth/internal/domain"
)

const (
	dirPermissions  = 0o700 // Owner-only access for security
	filePermissions = 0o600 // Read/write owner only
)

// ErrProfileNotFound is returned by Load when no profile has been written yet.
var ErrProfileNotFound = errors.New("profile not found")

// Repository handles profile persistence.
type Repository struct {
	fs         domain.FileSystemAdapter
	configPath string
	logger     *slog.Logger
}

var _ domain.ProfileRepository = (*Repository)(nil)

// NewRepository creates a new profile repository for configPath.
func NewRepository(
	fs domain.FileSystemAdapter,
	configPath string,
	logger *slog.Logger,
) *Repository {
	return &Repository{
		fs:         fs,
		configPath: configPath,
		logger:     logger,
	}
}

// Path returns the profile file location.
func (r *Repository) Path() string {
	return r.configPath
}

// Load reads the profile from disk.
func (r *Repository) Load(ctx context.Context) (domain.Profile, error) {
	data, err := r.fs.ReadFile(r.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.DebugContext(ctx, "Profile does not exist", "path", r.configPath)
			return domain.Profile{}, fmt.Errorf("%w at %s", ErrProfileNotFound, r.configPath)
		}
		return domain.Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	r.logger.DebugContext(ctx, "Profile loaded", "path", r.configPath, "host", profile.Host)
	return profile, nil
}

// Save writes the profile to disk with owner-only permissions.
func (r *Repository) Save(ctx context.Context, profile domain.Profile) error {
	configDir := filepath.Dir(r.configPath)
	if err := r.fs.MkdirAll(configDir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := r.fs.WriteFile(r.configPath, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	// WriteFile keeps the mode of an existing file.
	if err := r.fs.Chmod(r.configPath, filePermissions); err != nil {
		r.logger.WarnContext(ctx, "Failed to restrict profile permissions", "path", r.configPath, "error", err)
	}

	r.logger.InfoContext(ctx, "Profile saved", "path", r.configPath)
	return nil
}
