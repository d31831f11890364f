// Package logging provides slog construction and shared attribute helpers
// for the worker and CLI.
package logging
