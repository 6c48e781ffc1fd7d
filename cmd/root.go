package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ppauth/internal/app"
	"ppauth/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	verbose bool

	settings    = config.NewViper()
	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "ppauth",
	Short: "Bearer-token session manager and authenticated request client",
	Long: `ppauth authenticates against an API's /auth endpoint, keeps the resulting
bearer token for the life of the process, renews it on request, and sends
authenticated GET and POST calls with bounded retry.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ppauth/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.String("host", "", "API host name")
	flags.Int("port", 0, "API port (default 443)")
	flags.StringP("username", "u", "", "Username for authentication")
	flags.String("timezone", "", "IANA zone of the server's expires_at (default UTC)")
	flags.String("totp-secret", "", "Base32 secret used to generate one-time codes")

	bindFlag(settings, config.KeyHost, "host")
	bindFlag(settings, config.KeyPort, "port")
	bindFlag(settings, config.KeyUsername, "username")
	bindFlag(settings, config.KeyTimezone, "timezone")
	bindFlag(settings, config.KeyTOTPSecret, "totp-secret")
}

func bindFlag(v *viper.Viper, key, flag string) {
	cobra.CheckErr(v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)))
}

func initConfig() {
	if cfgFile != "" {
		settings.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		settings.AddConfigPath(filepath.Join(home, ".config", "ppauth"))
		settings.SetConfigType("yaml")
		settings.SetConfigName("config")
	}

	// Read config file silently (ignore error if config file doesn't exist)
	_ = settings.ReadInConfig()

	runtime, err := config.Load(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize the application with dependency injection
	opts := []app.Option{app.WithVerbose(verbose), app.WithRuntime(runtime)}
	if cfgFile != "" {
		opts = append(opts, app.WithConfigPath(cfgFile))
	}

	application, err = app.NewApp(context.Background(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
}
