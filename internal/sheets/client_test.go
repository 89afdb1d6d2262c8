package sheets

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name      string
		sheetName string
		cell      string
		expected  string
	}{
		{
			name:      "plain sheet name",
			sheetName: "Sheet1",
			cell:      "A2",
			expected:  "Sheet1!A2",
		},
		{
			name:      "underscored sheet name",
			sheetName: "raw_data",
			cell:      "B1",
			expected:  "raw_data!B1",
		},
		{
			name:      "sheet name with space",
			sheetName: "Monthly Report",
			cell:      "A2",
			expected:  "'Monthly Report'!A2",
		},
		{
			name:      "sheet name with exclamation mark",
			sheetName: "Totals!",
			cell:      "C3",
			expected:  "'Totals!'!C3",
		},
		{
			name:      "sheet name with embedded quote",
			sheetName: "Bob's data",
			cell:      "A2",
			expected:  "'Bob''s data'!A2",
		},
		{
			name:      "empty sheet name",
			sheetName: "",
			cell:      "A2",
			expected:  "A2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Range(tt.sheetName, tt.cell)
			if got != tt.expected {
				t.Errorf("Range(%q, %q) = %q, want %q", tt.sheetName, tt.cell, got, tt.expected)
			}
		})
	}
}

func TestUpdateOptionsInputOption(t *testing.T) {
	tests := []struct {
		name     string
		options  *UpdateOptions
		expected string
	}{
		{
			name:     "nil options default to raw",
			options:  nil,
			expected: InputOptionRaw,
		},
		{
			name:     "zero value defaults to raw",
			options:  &UpdateOptions{},
			expected: InputOptionRaw,
		},
		{
			name:     "user entered",
			options:  &UpdateOptions{UserEntered: true},
			expected: InputOptionUserEntered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.options.InputOption(); got != tt.expected {
				t.Errorf("InputOption() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		sheetName string
		expected  bool
	}{
		{"Sheet1", false},
		{"raw_data", false},
		{"2024", false},
		{"Monthly Report", true},
		{"emp-data", true},
		{"données", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := needsQuoting(tt.sheetName); got != tt.expected {
			t.Errorf("needsQuoting(%q) = %v, want %v", tt.sheetName, got, tt.expected)
		}
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

type staticCredentials struct {
	client *http.Client
}

func (s staticCredentials) HTTPClient(ctx context.Context) (*http.Client, error) {
	return s.client, nil
}

func (s staticCredentials) Available() bool { return true }

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

func TestPushTable_UpdatesAnchorRange(t *testing.T) {
	var gotPath, gotOption string
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		gotOption = r.URL.Query().Get("valueInputOption")
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body: io.NopCloser(strings.NewReader(`{
				"spreadsheetId": "sheet123",
				"updatedRange": "Data!A2:B3",
				"updatedRows": 2,
				"updatedColumns": 2,
				"updatedCells": 4
			}`)),
		}, nil
	})

	rows := [][]interface{}{{"a", "b"}, {"c", "d"}}
	result, err := client.PushTable(context.Background(), "sheet123", "Data", "", rows, nil)
	if err != nil {
		t.Fatalf("PushTable() error = %v", err)
	}

	if !strings.Contains(gotPath, "/spreadsheets/sheet123/values/") {
		t.Errorf("Request path = %q, want values update for sheet123", gotPath)
	}
	if !strings.HasSuffix(gotPath, "Data!A2") {
		t.Errorf("Request path = %q, want range anchored at Data!A2", gotPath)
	}
	if gotOption != InputOptionRaw {
		t.Errorf("valueInputOption = %q, want %q", gotOption, InputOptionRaw)
	}
	if result.UpdatedRows != 2 || result.UpdatedCells != 4 {
		t.Errorf("UpdateResult = %+v, want 2 rows and 4 cells", result)
	}
	if result.UpdatedRange != "Data!A2:B3" {
		t.Errorf("UpdatedRange = %q, want Data!A2:B3", result.UpdatedRange)
	}
}
