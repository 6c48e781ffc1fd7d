package domain

import "context"

// ProfileRepository persists the connection profile used by the CLI.
type ProfileRepository interface {
	Load(ctx context.Context) (Profile, error)
	Save(ctx context.Context, profile Profile) error
	Path() string
}

// ConfigProvider provides configuration paths and defaults.
type ConfigProvider interface {
	GetConfigDir() (string, error)
	GetConfigPath() (string, error)
}

// Profile is the persisted description of the API endpoint and identity.
// Passwords are never persisted.
type Profile struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Timezone   string `yaml:"timezone,omitempty"`
	TOTPSecret string `yaml:"totp_secret,omitempty"`
}
