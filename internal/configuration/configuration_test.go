package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears a variable for the test while keeping t.Setenv's restore
// semantics.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  ColorMode
	}{
		{"never", ColorNever},
		{"no", ColorNever},
		{"none", ColorNever},
		{"always", ColorAlways},
		{"yes", ColorAlways},
		{"force", ColorAlways},
		{"auto", ColorAuto},
		{"tty", ColorAuto},
		{"if-tty", ColorAuto},
		{"NEVER", ColorNever},
		{"Auto", ColorAuto},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColorMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorMode_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ParseColorMode("sometimes")
	assert.ErrorIs(t, err, ErrUnknownColorMode)
}

func TestColorMode_Enabled_Fixed(t *testing.T) {
	t.Parallel()

	assert.False(t, ColorNever.Enabled())
	assert.True(t, ColorAlways.Enabled())
}

func TestColorMode_Enabled_Auto(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	unsetEnv(t, "NO_COLOR")

	assert.True(t, ColorAuto.Enabled())
}

func TestColorMode_Enabled_Auto_NoTerminal(t *testing.T) {
	unsetEnv(t, "TERM")
	unsetEnv(t, "NO_COLOR")

	assert.False(t, ColorAuto.Enabled())
}

func TestColorMode_Enabled_Auto_NoColorOverride(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "1")

	assert.False(t, ColorAuto.Enabled())
}

func TestLoadDefaults_MissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "none"))
	unsetEnv(t, EnvColor)
	unsetEnv(t, EnvAll)
	unsetEnv(t, EnvHuman)
	unsetEnv(t, EnvNoDirCounts)

	defaults := NewHandler(&GodotenvProvider{}).LoadDefaults()

	assert.Equal(t, "auto", defaults.Color)
	assert.False(t, defaults.All)
	assert.False(t, defaults.Human)
	assert.False(t, defaults.NoDirCounts)
}

func TestLoadDefaults_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path,
		[]byte("CLS_COLOR=never\nCLS_ALL=true\nCLS_NO_DIR_COUNTS=1\n"), 0o644))

	t.Setenv(EnvConfigPath, path)
	unsetEnv(t, EnvColor)
	unsetEnv(t, EnvAll)
	unsetEnv(t, EnvHuman)
	unsetEnv(t, EnvNoDirCounts)

	defaults := NewHandler(&GodotenvProvider{}).LoadDefaults()

	assert.Equal(t, "never", defaults.Color)
	assert.True(t, defaults.All)
	assert.False(t, defaults.Human)
	assert.True(t, defaults.NoDirCounts)
}

func TestLoadDefaults_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("CLS_COLOR=never\n"), 0o644))

	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvColor, "always")
	unsetEnv(t, EnvAll)
	unsetEnv(t, EnvHuman)
	unsetEnv(t, EnvNoDirCounts)

	defaults := NewHandler(&GodotenvProvider{}).LoadDefaults()

	assert.Equal(t, "always", defaults.Color)
}
