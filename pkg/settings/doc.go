// Package settings loads, validates and persists the flat key-value settings
// document of the notification helper.
//
// Settings live in a single config.json inside the config directory
// (~/.wsl-toast by default). Loading merges the file over the documented
// defaults, so missing keys always have a value; a missing or malformed file
// degrades to pure defaults rather than failing. Unknown keys pass through
// load, save and validation untouched.
//
// Recognized keys and their defaults:
//
//	enabled          bool    true
//	default_type     enum    "Information" (Information|Warning|Error|Success)
//	default_duration enum    "Normal"      (Short|Normal|Long)
//	language         enum    "en"          (see the lang package)
//	sound_enabled    bool    true
//	position         enum    "top_right"   (top_right|top_left|bottom_right|bottom_left)
//
// Enum values are validated against their single source of truth: the notify
// package for type, duration and position, and the lang package for the
// language code, so the validator can never drift from the consumers.
//
// Loaded documents are cached per store; Save and ClearCache invalidate the
// cache. Environment overrides (WSL_TOAST_* variables, optionally from a
// .env file) can be layered on top via LoadEnv and Env.Apply.
package settings
