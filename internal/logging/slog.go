package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation     = "operation"
	KeyService       = "service"
	KeyFileID        = "file_id"
	KeyFileName      = "file_name"
	KeyFolderID      = "folder_id"
	KeySpreadsheetID = "spreadsheet_id"
	KeyRange         = "range"
	KeyRows          = "rows"
	KeyBytes         = "bytes"
	KeyPath          = "path"
	KeyDuration      = "duration"
	KeyStatus        = "status"
	KeyError         = "error"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithService returns a logger with the service attribute set.
func WithService(logger *slog.Logger, service string) *slog.Logger {
	return logger.With(Service(service))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Service returns a slog attribute for the service name.
func Service(svc string) slog.Attr {
	return slog.String(KeyService, svc)
}

// FileID returns a slog attribute for a Drive file ID.
func FileID(id string) slog.Attr {
	return slog.String(KeyFileID, id)
}

// FileName returns a slog attribute for a file name.
func FileName(name string) slog.Attr {
	return slog.String(KeyFileName, name)
}

// FolderID returns a slog attribute for a Drive folder ID.
func FolderID(id string) slog.Attr {
	return slog.String(KeyFolderID, id)
}

// SpreadsheetID returns a slog attribute for a spreadsheet ID.
func SpreadsheetID(id string) slog.Attr {
	return slog.String(KeySpreadsheetID, id)
}

// Range returns a slog attribute for a sheet range in A1 notation.
func Range(rng string) slog.Attr {
	return slog.String(KeyRange, rng)
}

// Rows returns a slog attribute for a row count.
func Rows(n int64) slog.Attr {
	return slog.Int64(KeyRows, n)
}

// Bytes returns a slog attribute for a byte count.
func Bytes(n int64) slog.Attr {
	return slog.Int64(KeyBytes, n)
}

// Path returns a slog attribute for a local filesystem path.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from
// output. This allows safely passing Err(maybeNilErr) without adding empty
// attributes.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// Setup builds a slog.Logger writing to w with the requested level and
// format ("text" or "json") and installs it as the slog default.
func Setup(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q, must be one of: text, json", format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

// ParseLevel converts a level name to a slog.Level. An empty name means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", level)
	}
}
