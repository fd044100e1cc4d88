// Package logging provides structured logging utilities for the analytics-mcp application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "data.run_report")
//	logger.Info("report complete",
//	    logging.Property("properties/123"),
//	    logging.Status("success"))
package logging
