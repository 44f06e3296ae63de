package settings

import (
	"errors"
	"fmt"
	"slices"

	"github.com/windysky/claude-notification-wsl2/pkg/lang"
	"github.com/windysky/claude-notification-wsl2/pkg/notify"
)

// Validate checks the recognized keys of a settings document. Unknown keys
// are ignored. All failures are reported at once, joined into a single error
// that matches ErrInvalidValue with errors.Is; nil means the document is
// valid.
func Validate(v Values) error {
	var errs []error

	errs = append(errs, checkBool(v, "enabled")...)
	errs = append(errs, checkBool(v, "sound_enabled")...)
	errs = append(errs, checkEnum(v, "default_type", notify.TypeValues())...)
	errs = append(errs, checkEnum(v, "default_duration", notify.DurationValues())...)
	errs = append(errs, checkEnum(v, "language", lang.Supported())...)
	errs = append(errs, checkEnum(v, "position", notify.PositionValues())...)

	return errors.Join(errs...)
}

func checkBool(v Values, key string) []error {
	raw, ok := v[key]
	if !ok {
		return nil
	}
	if _, ok := raw.(bool); !ok {
		return []error{fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidValue, key, raw)}
	}
	return nil
}

func checkEnum(v Values, key string, valid []string) []error {
	raw, ok := v[key]
	if !ok {
		return nil
	}
	str, ok := raw.(string)
	if !ok || !slices.Contains(valid, str) {
		return []error{fmt.Errorf("%w: %s must be one of %v, got %v", ErrInvalidValue, key, valid, raw)}
	}
	return nil
}
