package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog selection
	Dir     string
	Profile string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. TERMIPAPER_* environment variables
//  3. .env files
//  4. Config file (the given path, or ~/.termipaper.yaml)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("format", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("app", "cannot read "+configFile, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(constants.AppConfigName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("app", "cannot read "+v.ConfigFileUsed(), err)
			}
		}
	}

	return &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		NoColor:    v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),
		Dir:        v.GetString("dir"),
		Profile:    v.GetString("profile"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:  getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is read last so it cannot override .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
