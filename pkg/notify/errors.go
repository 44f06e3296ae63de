package notify

import "errors"

// Package-specific errors.
var (
	// ErrDisabled is returned by Service.Build when notifications are turned
	// off in the configuration.
	ErrDisabled = errors.New("notifications are disabled")

	// ErrNilResolver is returned when a Service is constructed without a
	// template resolver.
	ErrNilResolver = errors.New("template resolver is required")
)
