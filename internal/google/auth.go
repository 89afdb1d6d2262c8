package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// JWTConfigFromKeyFile reads a service-account JSON key from disk and builds
// the JWT config used to mint access tokens for the requested scopes.
func JWTConfigFromKeyFile(path string, scopes ...string) (*jwt.Config, error) {
	if path == "" {
		return nil, fmt.Errorf("service account key path is required")
	}
	if len(scopes) == 0 {
		scopes = Scopes
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key %s: %w", path, err)
	}

	conf, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key %s: %w", path, err)
	}

	return conf, nil
}

// HasCredentials reports whether a readable, well-formed service-account key
// exists at path.
func HasCredentials(path string) bool {
	_, err := JWTConfigFromKeyFile(path)
	return err == nil
}

// GetHTTPClient returns an HTTP client authenticated with the service-account
// key at path. The client refreshes access tokens transparently.
func GetHTTPClient(ctx context.Context, path string) (*http.Client, error) {
	conf, err := JWTConfigFromKeyFile(path)
	if err != nil {
		return nil, err
	}
	return conf.Client(ctx), nil
}

// ResolveKeyPath resolves a service-account key path. Relative paths are
// resolved against the user home directory, matching the layout where keys
// live under $HOME rather than the working directory.
func ResolveKeyPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(homeDir(), path)
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv("HOME")
}
