// Package config resolves runtime configuration from a .env file and the
// process environment. Values already present in the environment always win
// over the .env file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	// EnvCredentials points at the service-account JSON key. A relative
	// path is resolved against the user home directory.
	EnvCredentials = "DRIVEPIPE_CREDENTIALS"

	// EnvCredentialsLegacy is the historical name for the key path.
	EnvCredentialsLegacy = "GTOKEN"

	// EnvOutputDir sets the default download directory.
	EnvOutputDir = "DRIVEPIPE_OUTPUT_DIR"

	// EnvMetricsAddr sets the metrics listener address.
	EnvMetricsAddr = "DRIVEPIPE_METRICS_ADDR"
)

// DefaultOutputDir is where downloads land when no directory is configured.
const DefaultOutputDir = "outputs"

// DefaultEnvFile is the .env file loaded when none is specified.
const DefaultEnvFile = ".env"

// Config holds the resolved runtime configuration.
type Config struct {
	// CredentialsPath is the service-account key path as configured,
	// before home-relative resolution.
	CredentialsPath string

	// OutputDir is the default directory for downloaded files.
	OutputDir string

	// MetricsAddr is the metrics listener address; empty disables the
	// listener.
	MetricsAddr string
}

// Load reads the given .env file (DefaultEnvFile when empty) and resolves the
// configuration from the merged environment. A missing .env file is not an
// error; an unreadable or malformed one is.
func Load(envFile string) (*Config, error) {
	path := envFile
	if path == "" {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	} else if envFile != "" {
		// An explicitly named file must exist
		return nil, fmt.Errorf("env file %s not found: %w", envFile, err)
	}

	return FromEnv(), nil
}

// FromEnv resolves the configuration from the process environment only.
func FromEnv() *Config {
	credentials := os.Getenv(EnvCredentials)
	if credentials == "" {
		credentials = os.Getenv(EnvCredentialsLegacy)
	}

	outputDir := os.Getenv(EnvOutputDir)
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	return &Config{
		CredentialsPath: credentials,
		OutputDir:       outputDir,
		MetricsAddr:     os.Getenv(EnvMetricsAddr),
	}
}

// Validate checks that the configuration can support API calls.
func (c *Config) Validate() error {
	if c.CredentialsPath == "" {
		return fmt.Errorf("no service account key configured; set %s (or %s) in the environment or .env file", EnvCredentials, EnvCredentialsLegacy)
	}
	return nil
}
