package settings

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/windysky/claude-notification-wsl2/pkg/lang"
)

// Env holds the environment overrides for the settings document. Pointer
// fields distinguish "unset" from an explicit false.
type Env struct {
	ConfigDir    string `env:"WSL_TOAST_CONFIG_DIR"`
	Language     string `env:"WSL_TOAST_LANGUAGE"`
	Enabled      *bool  `env:"WSL_TOAST_ENABLED"`
	SoundEnabled *bool  `env:"WSL_TOAST_SOUND_ENABLED"`
}

var dotenvOnce sync.Once

// LoadEnv parses the WSL_TOAST_* environment overrides, loading a .env file
// from the working directory first if one exists.
func LoadEnv() (Env, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Join(ErrParsingEnv, err)
	}
	return e, nil
}

// Apply overlays the set overrides on a settings document and returns the
// result. The input document is not modified. Language overrides are
// normalized so regional variants map onto supported codes.
func (e Env) Apply(v Values) Values {
	out := Merge(v, nil)

	if e.Language != "" {
		out["language"] = lang.Normalize(e.Language)
	}
	if e.Enabled != nil {
		out["enabled"] = *e.Enabled
	}
	if e.SoundEnabled != nil {
		out["sound_enabled"] = *e.SoundEnabled
	}

	return out
}
