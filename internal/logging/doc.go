// Package logging assembles structured slog loggers and formatting helpers
// used across reelcraft components.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes attribute helpers so stage code tags log lines with component
// names and pipeline run IDs consistently. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
