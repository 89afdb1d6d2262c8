package drive

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
)

// roundTripFunc adapts a function to http.RoundTripper so tests can serve
// canned API responses without a network.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// staticCredentials hands out a fixed HTTP client, bypassing the
// service-account key handling.
type staticCredentials struct {
	client *http.Client
}

func (s staticCredentials) HTTPClient(ctx context.Context) (*http.Client, error) {
	return s.client, nil
}

func (s staticCredentials) Available() bool { return true }

// newTestClient builds a Client whose API calls are answered by respond.
func newTestClient(t *testing.T, respond roundTripFunc) *Client {
	t.Helper()

	client, err := NewClient(context.Background(), ClientConfig{
		Credentials: staticCredentials{client: &http.Client{Transport: respond}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
