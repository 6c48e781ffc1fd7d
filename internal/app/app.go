package app

import (
	"context"
	"io"
	"log/slog"

	httpadapter "ppauth/internal/adapters/http"
	"ppauth/internal/config"
	"ppauth/internal/domain"
	"ppauth/internal/services/auth"
	"ppauth/internal/services/request"
	"ppauth/internal/services/token"
	"ppauth/internal/session"
)

// App contains all application dependencies. It owns the single session
// store and renewal policy shared by every service it wires.
type App struct {
	// Session state (one per process)
	Store  *session.Store
	Policy *session.RenewalPolicy

	// Services
	HTTP          *httpadapter.Adapter
	Authenticator *auth.Authenticator
	Tokens        *token.Accessor
	Dispatcher    *request.Dispatcher

	// Profile persistence
	ProfileRepo    domain.ProfileRepository
	ConfigProvider domain.ConfigProvider
	FileSystem     domain.FileSystemAdapter

	// I/O dependencies
	PasswordReader domain.PasswordReader
	// Codes is nil unless a one-time code secret is configured.
	Codes domain.CodeGenerator

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	Runtime    config.Config
	LogLevel   slog.Level
	LogFormat  string
	LogOutput  io.Writer
	Verbose    bool
	ConfigPath string

	runtimeSet bool
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithRuntime applies settings loaded by config.Load, including its log section.
func WithRuntime(runtime config.Config) Option {
	return func(cfg *Config) {
		cfg.Runtime = runtime
		cfg.runtimeSet = true
		logCfg := runtime.Logging()
		cfg.LogFormat = logCfg.Format
		if !cfg.Verbose {
			cfg.LogLevel = logCfg.Level
		}
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
	}
}

// WithLogOutput redirects log output.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// WithConfigPath overrides the profile location.
func WithConfigPath(path string) Option {
	return func(cfg *Config) {
		cfg.ConfigPath = path
	}
}

// NewApp creates a new App with the given options. Without WithRuntime the
// runtime configuration is loaded from defaults and PPAUTH_ environment
// variables.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := newConfig(opts)
	if !cfg.runtimeSet {
		runtime, err := config.Load(config.NewViper())
		if err != nil {
			return nil, err
		}
		// Explicit options still win over the loaded log settings.
		cfg = newConfig(append([]Option{WithRuntime(runtime)}, opts...))
	}

	return NewAppWithConfig(ctx, cfg)
}

func newConfig(opts []Option) *Config {
	cfg := &Config{
		LogLevel: slog.LevelInfo,
		Verbose:  false,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Authenticate runs the handshake and stores the session.
func (a *App) Authenticate(ctx context.Context, req domain.AuthRequest) (domain.Session, error) {
	return a.Authenticator.Authenticate(ctx, req)
}

// Token returns a usable bearer token, renewing when the policy allows it.
func (a *App) Token(ctx context.Context) (string, error) {
	return a.Tokens.Token(ctx)
}

// Check probes (renew=false) or renews (renew=true) the session.
func (a *App) Check(ctx context.Context, renew bool) bool {
	return a.Tokens.Check(ctx, renew)
}

// Lease returns the remaining validity in whole seconds.
func (a *App) Lease() (int64, error) {
	return a.Tokens.Lease()
}

// IsLogged reports whether a valid session is stored.
func (a *App) IsLogged() bool {
	return a.Tokens.IsLogged()
}

// Get performs an authenticated GET.
func (a *App) Get(ctx context.Context, path string, opts request.GetOptions) (string, error) {
	return a.Dispatcher.Get(ctx, path, opts)
}

// Post performs an authenticated POST.
func (a *App) Post(ctx context.Context, path string, opts request.PostOptions) (string, error) {
	return a.Dispatcher.Post(ctx, path, opts)
}
