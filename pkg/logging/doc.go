// Package logging provides structured logging utilities for genbundler.
//
// # Overview
//
// This package wraps the standard library slog package with project-specific defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("genbundler", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("loading catalog", "source", source)
//	    slog.Debug("panel rejected", "panel", p.ID, "reason", reason)
//	    slog.Error("run failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("genbundler", "v2.0.0", "debug")
//	logger.Info("loading catalog", "source", "produtos.json")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("genbundler", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug genbundler generate
//	LOG_LEVEL=error genbundler catalog
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "bundles generated",
//	    "module": "genbundler",
//	    "version": "v1.0.0",
//	    "bundles": 12
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "configurator.(*Configurator).Run",
//	        "file": "configurator.go",
//	        "line": 45
//	    },
//	    "msg": "catalog loaded",
//	    "module": "genbundler",
//	    "version": "v1.0.0"
//	}
//
// # Conventions
//
// Include run context as key/value pairs and log errors under "error":
//
//	slog.Info("bundles generated",
//	    "bundles", len(res.Bundles),
//	    "line_items", len(items),
//	    "unmatched_inverters", res.Stats.UnmatchedInverters,
//	)
//
//	slog.Error("failed to write artifact", "error", err, "path", path)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/configurator - run orchestration logging
//   - pkg/serializer - catalog source and artifact writer logging
//   - pkg/catalog - skipped record warnings
//
// All components share consistent logging format and configuration.
package logging
