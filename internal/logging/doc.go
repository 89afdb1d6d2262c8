// Package logging provides structured logging helpers built on log/slog.
//
// It defines the attribute keys used across the codebase so log entries stay
// queryable, plus small constructors that keep call sites short, and Setup,
// which installs the process-wide handler.
package logging
