// Package config loads runtime settings from viper (file, environment and flags).
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ppauth/internal/domain"
	"ppauth/internal/errors"
	"ppauth/internal/logging"
)

// EnvPrefix namespaces environment overrides, e.g. PPAUTH_REQUEST_TIMEOUT.
const EnvPrefix = "PPAUTH"

// Keys understood by Load.
const (
	KeyHost                = "host"
	KeyPort                = "port"
	KeyUsername            = "username"
	KeyTimezone            = "timezone"
	KeyTOTPSecret          = "totp_secret"
	KeyRequestTimeout      = "request.timeout"
	KeyRequestMaxRetries   = "request.max_retries"
	KeyRequestVerifyTLS    = "request.verify_tls"
	KeyRateLimitRPS        = "rate_limit.rps"
	KeyRateLimitBurst      = "rate_limit.burst"
	KeyRenewalSingleFlight = "renewal.single_flight"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"
)

const (
	defaultPort       = 443
	defaultTimezone   = "UTC"
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 10
	defaultRPS        = 0
	defaultBurst      = 20
	maxPort           = 65535
)

// Config is the resolved runtime configuration.
type Config struct {
	Host       string
	Port       int
	Username   string
	Timezone   string
	TOTPSecret string

	Request   RequestConfig
	RateLimit RateLimitConfig
	Renewal   RenewalConfig
	Log       LogConfig
}

// RequestConfig holds dispatcher defaults.
type RequestConfig struct {
	Timeout    time.Duration
	MaxRetries int
	VerifyTLS  bool
}

// RateLimitConfig bounds outgoing request rate. RPS of zero disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// RenewalConfig controls session renewal.
type RenewalConfig struct {
	SingleFlight bool
}

// LogConfig selects logger level and format.
type LogConfig struct {
	Level  string
	Format string
}

// NewViper returns a viper instance with defaults and PPAUTH_ environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyHost, "")
	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyUsername, "")
	v.SetDefault(KeyTimezone, defaultTimezone)
	v.SetDefault(KeyTOTPSecret, "")
	v.SetDefault(KeyRequestTimeout, defaultTimeout)
	v.SetDefault(KeyRequestMaxRetries, defaultMaxRetries)
	v.SetDefault(KeyRequestVerifyTLS, false)
	v.SetDefault(KeyRateLimitRPS, defaultRPS)
	v.SetDefault(KeyRateLimitBurst, defaultBurst)
	v.SetDefault(KeyRenewalSingleFlight, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatText)
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Host:       strings.TrimSpace(v.GetString(KeyHost)),
		Port:       v.GetInt(KeyPort),
		Username:   strings.TrimSpace(v.GetString(KeyUsername)),
		Timezone:   strings.TrimSpace(v.GetString(KeyTimezone)),
		TOTPSecret: v.GetString(KeyTOTPSecret),
		Request: RequestConfig{
			Timeout:    v.GetDuration(KeyRequestTimeout),
			MaxRetries: v.GetInt(KeyRequestMaxRetries),
			VerifyTLS:  v.GetBool(KeyRequestVerifyTLS),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64(KeyRateLimitRPS),
			Burst: v.GetInt(KeyRateLimitBurst),
		},
		Renewal: RenewalConfig{
			SingleFlight: v.GetBool(KeyRenewalSingleFlight),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Host and username may be empty until a
// command needs them.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > maxPort {
		return errors.NewConfigurationError(KeyPort, strconv.Itoa(c.Port), "port must be between 1 and 65535", nil)
	}
	if c.Request.Timeout <= 0 {
		return errors.NewConfigurationError(KeyRequestTimeout, c.Request.Timeout.String(),
			"timeout must be positive", nil)
	}
	if c.Request.MaxRetries < 0 {
		return errors.NewConfigurationError(KeyRequestMaxRetries, strconv.Itoa(c.Request.MaxRetries),
			"max retries must not be negative", nil)
	}
	if c.RateLimit.RPS < 0 {
		return errors.NewConfigurationError(KeyRateLimitRPS, fmt.Sprint(c.RateLimit.RPS),
			"rate must not be negative", nil)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return errors.NewConfigurationError(KeyRateLimitBurst, strconv.Itoa(c.RateLimit.Burst),
			"burst must be at least 1 when rate limiting is enabled", nil)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return errors.NewConfigurationError(KeyLogFormat, c.Log.Format, "log format must be text or json", nil)
	}
	return nil
}

// Profile returns the persistable subset of the configuration.
func (c Config) Profile() domain.Profile {
	return domain.Profile{
		Host:       c.Host,
		Port:       c.Port,
		Username:   c.Username,
		Timezone:   c.Timezone,
		TOTPSecret: c.TOTPSecret,
	}
}

// Logging converts the log section into a logger configuration.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Log.Level)
	cfg.Format = strings.ToLower(c.Log.Format)
	return cfg
}
