package settings

import "errors"

// Package-specific errors.
var (
	// ErrInvalidValue marks every individual validation failure; Validate
	// joins one per offending key.
	ErrInvalidValue = errors.New("invalid settings value")

	// ErrFailedToWrite is returned when the settings document cannot be
	// persisted.
	ErrFailedToWrite = errors.New("failed to write settings file")

	// ErrParsingEnv is returned when environment overrides cannot be parsed.
	ErrParsingEnv = errors.New("failed to parse settings environment overrides")
)
