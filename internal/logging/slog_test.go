package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithService(t *testing.T) {
	logger := slog.Default()
	result := WithService(logger, "drive")
	if result == nil {
		t.Error("WithService returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("download")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "download" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "download")
	}
}

func TestStringAttrs(t *testing.T) {
	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"service", Service("sheets"), KeyService, "sheets"},
		{"file id", FileID("file123"), KeyFileID, "file123"},
		{"file name", FileName("report.xlsx"), KeyFileName, "report.xlsx"},
		{"folder id", FolderID("folder456"), KeyFolderID, "folder456"},
		{"spreadsheet id", SpreadsheetID("sheet789"), KeySpreadsheetID, "sheet789"},
		{"range", Range("Data!A2"), KeyRange, "Data!A2"},
		{"path", Path("outputs/report.xlsx"), KeyPath, "outputs/report.xlsx"},
		{"status", Status(StatusSuccess), KeyStatus, StatusSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value.String() != tt.wantVal {
				t.Errorf("value = %q, want %q", tt.attr.Value.String(), tt.wantVal)
			}
		})
	}
}

func TestNumericAttrs(t *testing.T) {
	rows := Rows(42)
	if rows.Key != KeyRows || rows.Value.Int64() != 42 {
		t.Errorf("Rows(42) = %v, want %s=42", rows, KeyRows)
	}

	b := Bytes(2048)
	if b.Key != KeyBytes || b.Value.Int64() != 2048 {
		t.Errorf("Bytes(2048) = %v, want %s=2048", b, KeyBytes)
	}
}

func TestErrAttr(t *testing.T) {
	err := errors.New("boom")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "boom")
	}
}

func TestErrAttr_Nil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("operation completed", Err(nil))

	if strings.Contains(buf.String(), KeyError) {
		t.Errorf("Expected no error attribute in output, got %q", buf.String())
	}
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer

	logger, err := Setup(&buf, "debug", "json")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	logger.Debug("hello", Operation("list_files"))
	out := buf.String()
	if !strings.Contains(out, `"operation":"list_files"`) {
		t.Errorf("Expected JSON output with operation attr, got %q", out)
	}
}

func TestSetup_TextDefault(t *testing.T) {
	var buf bytes.Buffer

	logger, err := Setup(&buf, "", "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	logger.Debug("should be filtered at info level")
	if buf.Len() != 0 {
		t.Errorf("Expected debug output filtered at default level, got %q", buf.String())
	}

	logger.Info("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected info output, got %q", buf.String())
	}
}

func TestSetup_InvalidInputs(t *testing.T) {
	var buf bytes.Buffer

	if _, err := Setup(&buf, "verbose", "text"); err == nil {
		t.Error("Expected error for invalid log level")
	}
	if _, err := Setup(&buf, "info", "xml"); err == nil {
		t.Error("Expected error for invalid log format")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"ERROR", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
