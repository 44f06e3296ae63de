package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windysky/claude-notification-wsl2/pkg/settings"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("WSL_TOAST_CONFIG_DIR", "/tmp/toast")
	t.Setenv("WSL_TOAST_LANGUAGE", "ko")
	t.Setenv("WSL_TOAST_ENABLED", "false")

	e, err := settings.LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/toast", e.ConfigDir)
	assert.Equal(t, "ko", e.Language)
	require.NotNil(t, e.Enabled)
	assert.False(t, *e.Enabled)
	assert.Nil(t, e.SoundEnabled, "unset overrides stay nil")
}

func TestLoadEnvInvalidBool(t *testing.T) {
	t.Setenv("WSL_TOAST_ENABLED", "maybe")

	_, err := settings.LoadEnv()
	assert.ErrorIs(t, err, settings.ErrParsingEnv)
}

func TestEnvApply(t *testing.T) {
	enabled := false
	e := settings.Env{
		Language: "ko-KR",
		Enabled:  &enabled,
	}

	base := settings.Defaults()
	out := e.Apply(base)

	assert.Equal(t, "ko", out["language"], "language overrides are normalized")
	assert.Equal(t, false, out["enabled"])
	assert.Equal(t, true, out["sound_enabled"], "unset overrides keep the base value")

	// The base document is untouched.
	assert.Equal(t, "en", base["language"])
	assert.Equal(t, true, base["enabled"])
}

func TestEnvApplyEmpty(t *testing.T) {
	base := settings.Defaults()
	out := settings.Env{}.Apply(base)
	assert.Equal(t, base, out)
}
