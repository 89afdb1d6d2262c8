package google

import (
	"context"
	"net/http"
)

// CredentialsProvider is an interface for producing authenticated HTTP clients
// for Google APIs. This abstraction allows different credential sources
// (key file on disk, in-memory key for tests, etc.) to be plugged in.
type CredentialsProvider interface {
	// HTTPClient returns an HTTP client that authenticates requests
	HTTPClient(ctx context.Context) (*http.Client, error)

	// Available checks whether usable credentials exist
	Available() bool
}

// FileCredentialsProvider provides credentials from a service-account key file
// on disk.
type FileCredentialsProvider struct {
	path string
}

// NewFileCredentialsProvider creates a provider reading the key at path.
// Relative paths are resolved against the user home directory.
func NewFileCredentialsProvider(path string) *FileCredentialsProvider {
	return &FileCredentialsProvider{path: ResolveKeyPath(path)}
}

// Path returns the resolved key file path.
func (p *FileCredentialsProvider) Path() string {
	return p.path
}

// HTTPClient returns an authenticated HTTP client built from the key file.
func (p *FileCredentialsProvider) HTTPClient(ctx context.Context) (*http.Client, error) {
	return GetHTTPClient(ctx, p.path)
}

// Available checks whether the key file exists and parses.
func (p *FileCredentialsProvider) Available() bool {
	return HasCredentials(p.path)
}
