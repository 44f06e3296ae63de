// Package logger provides a small factory for configured slog loggers.
//
// Defaults are production-safe (JSON format, info level, stderr). Functional
// options adjust level, format, destination and static attributes;
// WithDevelopment switches to human-readable text output at debug level for
// local runs of the notification helper.
//
//	log := logger.New(
//		logger.WithDevelopment("wsl-toast"),
//	)
//	logger.SetAsDefault(log)
package logger
