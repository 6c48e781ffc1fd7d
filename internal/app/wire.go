package app

import (
	"context"
	"os"

	"ppauth/internal/adapters/filesystem"
	httpadapter "ppauth/internal/adapters/http"
	"ppauth/internal/adapters/terminal"
	"ppauth/internal/logging"
	"ppauth/internal/services/auth"
	"ppauth/internal/services/config"
	"ppauth/internal/services/request"
	"ppauth/internal/services/token"
	"ppauth/internal/services/totp"
	"ppauth/internal/session"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})

	runtime := cfg.Runtime

	// Create filesystem adapter.
	fs := filesystem.New()

	// Create password reader with environment variable support.
	passwordReader := terminal.NewAdapter(os.Stdin, os.Stderr)

	// Create config services.
	configProvider := config.NewProvider(fs)
	configPath := cfg.ConfigPath
	if configPath == "" {
		var err error
		configPath, err = configProvider.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}
	profileRepo := config.NewRepository(fs, configPath, logger)

	// Shared session state.
	store := session.NewStore()
	policy := session.NewRenewalPolicy()

	// Create HTTP adapter and services.
	httpClient := httpadapter.NewAdapter(logger,
		httpadapter.WithRateLimit(runtime.RateLimit.RPS, runtime.RateLimit.Burst))

	authenticator := auth.NewAuthenticator(httpClient, store, logger)

	var tokenOpts []token.Option
	if runtime.Renewal.SingleFlight {
		tokenOpts = append(tokenOpts, token.WithSingleFlight())
	}
	tokens := token.NewAccessor(store, policy, authenticator, logger, tokenOpts...)

	dispatcher := request.NewDispatcher(httpClient, store, policy, tokens, logger,
		request.WithMaxRetries(runtime.Request.MaxRetries))

	a := &App{
		Store:          store,
		Policy:         policy,
		HTTP:           httpClient,
		Authenticator:  authenticator,
		Tokens:         tokens,
		Dispatcher:     dispatcher,
		ProfileRepo:    profileRepo,
		ConfigProvider: configProvider,
		FileSystem:     fs,
		PasswordReader: passwordReader,
		Logger:         logger,
		Config:         cfg,
	}

	if runtime.TOTPSecret != "" {
		generator, err := totp.NewGenerator(runtime.TOTPSecret)
		if err != nil {
			return nil, err
		}
		a.Codes = generator
	}

	// Log configuration details.
	logger.DebugContext(ctx, "Initializing ppauth with configuration",
		"logLevel", cfg.LogLevel.String(),
		"verbose", cfg.Verbose,
		"configPath", configPath,
		"maxRetries", runtime.Request.MaxRetries,
		"singleFlight", runtime.Renewal.SingleFlight)

	return a, nil
}
