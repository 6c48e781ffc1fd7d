package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppauth/internal/config"
	"ppauth/internal/domain"
	"ppauth/internal/errors"
	"ppauth/internal/services/request"
	"ppauth/internal/testutil"
)

// apiServer issues tokens from /auth and echoes the bearer token on /api/whoami.
// The first handshake returns an already expired session.
type apiServer struct {
	*httptest.Server
	authCalls   atomic.Int32
	whoamiCalls atomic.Int32
}

func newAPIServer(t *testing.T) *apiServer {
	t.Helper()

	s := &apiServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		n := s.authCalls.Add(1)
		expires := "2000-01-01 00:00:00"
		if n > 1 {
			expires = time.Now().UTC().Add(time.Hour).Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, `{"token":"tok-%d","expires_at":%q}`, n, expires)
	})
	mux.HandleFunc("/api/whoami", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		s.whoamiCalls.Add(1)
		_, _ = io.WriteString(w, r.Header.Get("Authorization"))
	})
	s.Server = httptest.NewTLSServer(mux)
	t.Cleanup(s.Close)

	return s
}

func newTestApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()

	runtime, err := config.Load(config.NewViper())
	require.NoError(t, err)
	runtime.TOTPSecret = ""
	if mutate != nil {
		mutate(&runtime)
	}

	a, err := NewAppWithConfig(context.Background(), &Config{
		Runtime:    runtime,
		LogOutput:  io.Discard,
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
	})
	require.NoError(t, err)
	return a
}

func TestNewAppWithConfig_WiresSharedState(t *testing.T) {
	a := newTestApp(t, nil)

	assert.NotNil(t, a.Store)
	assert.NotNil(t, a.Policy)
	assert.NotNil(t, a.Tokens)
	assert.NotNil(t, a.Dispatcher)
	assert.Nil(t, a.Codes)
	assert.Equal(t, "config.yaml", filepath.Base(a.ProfileRepo.Path()))
	assert.False(t, a.IsLogged())
}

func TestNewAppWithConfig_TOTPSecret(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.TOTPSecret = "JBSWY3DPEHPK3PXP" })
	require.NotNil(t, a.Codes)

	code, err := a.Codes.Code(time.Now())
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestNewAppWithConfig_InvalidTOTPSecret(t *testing.T) {
	runtime, err := config.Load(config.NewViper())
	require.NoError(t, err)
	runtime.TOTPSecret = "not base32!"

	_, err = NewAppWithConfig(context.Background(), &Config{Runtime: runtime, LogOutput: io.Discard, ConfigPath: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestApp_SessionLifecycle(t *testing.T) {
	server := newAPIServer(t)
	a := newTestApp(t, nil)
	ctx := context.Background()
	host, port := testutil.HostPort(t, server.URL)

	// Not authenticated yet.
	_, err := a.Token(ctx)
	assert.True(t, errors.IsNoSession(err))

	// First handshake yields an expired session.
	_, err = a.Authenticate(ctx, domain.AuthRequest{
		Host: host, Port: port, Username: "admin", Password: "pw", Timezone: "UTC",
	})
	require.NoError(t, err)
	assert.False(t, a.IsLogged())

	_, err = a.Token(ctx)
	assert.True(t, errors.IsTokenExpired(err))

	_, err = a.Get(ctx, "api/whoami", request.GetOptions{})
	assert.True(t, errors.IsTokenExpired(err))

	// Probe never renews.
	assert.False(t, a.Check(ctx, false))
	assert.Equal(t, int32(1), server.authCalls.Load())

	// Renew mode re-authenticates with stored credentials.
	assert.True(t, a.Check(ctx, true))
	assert.Equal(t, int32(2), server.authCalls.Load())
	assert.True(t, a.IsLogged())

	lease, err := a.Lease()
	require.NoError(t, err)
	assert.Greater(t, lease, int64(3500))

	body, err := a.Get(ctx, "/api/whoami", request.GetOptions{
		Headers: map[string]string{"Authorization": "Bearer forged"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-2", body)
}

func TestApp_DispatcherRenewsWhenAllowed(t *testing.T) {
	server := newAPIServer(t)
	a := newTestApp(t, nil)
	ctx := context.Background()
	host, port := testutil.HostPort(t, server.URL)

	_, err := a.Authenticate(ctx, domain.AuthRequest{Host: host, Port: port, Username: "admin", Password: "pw"})
	require.NoError(t, err)

	a.Policy.Allow(true)

	body, err := a.Get(ctx, "api/whoami", request.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-2", body)
	assert.Equal(t, int32(2), server.authCalls.Load())
}

func TestApp_DefaultConfigConcurrentRequests(t *testing.T) {
	server := newAPIServer(t)
	a := newTestApp(t, nil)
	ctx := context.Background()
	host, port := testutil.HostPort(t, server.URL)
	require.Zero(t, a.Config.Runtime.RateLimit.RPS)

	for j := 0; j < 2; j++ {
		_, err := a.Authenticate(ctx, domain.AuthRequest{Host: host, Port: port, Username: "admin", Password: "pw"})
		require.NoError(t, err)
	}
	require.True(t, a.IsLogged())

	const calls = 40
	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)
	for j := 0; j < calls; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.Get(ctx, "api/whoami", request.GetOptions{Timeout: time.Second})
			if err != nil {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, failed.Load())
	assert.Equal(t, int32(calls), server.whoamiCalls.Load())
}

func TestNewApp_UsesSuppliedRuntime(t *testing.T) {
	t.Setenv("PPAUTH_PORT", "0")

	runtime := config.Config{
		Host:     "api.example.com",
		Port:     8443,
		Username: "admin",
		Request:  config.RequestConfig{Timeout: 10 * time.Second, MaxRetries: 3},
		Log:      config.LogConfig{Level: "warn", Format: "text"},
	}

	a, err := NewApp(context.Background(),
		WithRuntime(runtime),
		WithLogOutput(io.Discard),
		WithConfigPath(filepath.Join(t.TempDir(), "config.yaml")))
	require.NoError(t, err, "environment is not consulted when a runtime is supplied")
	assert.Equal(t, 8443, a.Config.Runtime.Port)
}

func TestNewApp_LoadsEnvironmentWithoutRuntime(t *testing.T) {
	t.Setenv("PPAUTH_PORT", "0")

	_, err := NewApp(context.Background(), WithLogOutput(io.Discard), WithConfigPath("unused.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestNewApp_ExplicitLogLevelWinsOverLoadedRuntime(t *testing.T) {
	t.Setenv("PPAUTH_LOG_LEVEL", "error")

	a, err := NewApp(context.Background(),
		WithLogLevel(slog.LevelDebug),
		WithLogOutput(io.Discard),
		WithConfigPath(filepath.Join(t.TempDir(), "config.yaml")))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, a.Config.LogLevel)
	assert.Equal(t, "error", a.Config.Runtime.Log.Level)
}

func TestOptions(t *testing.T) {
	cfg := &Config{}
	runtime := config.Config{Log: config.LogConfig{Level: "warn", Format: "json"}}

	WithRuntime(runtime)(cfg)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.Runtime.Log.Level)

	WithVerbose(true)(cfg)
	assert.True(t, cfg.Verbose)

	WithRuntime(runtime)(cfg)
	assert.Equal(t, "DEBUG", cfg.LogLevel.String(), "verbose keeps debug level")

	WithLogLevel(0)(cfg)
	assert.Equal(t, "INFO", cfg.LogLevel.String())

	WithConfigPath("/tmp/p.yaml")(cfg)
	assert.Equal(t, "/tmp/p.yaml", cfg.ConfigPath)
}
