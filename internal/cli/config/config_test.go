package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mylint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadSettings_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	s, err := LoadSettings("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, s.Output)
	assert.Equal(t, DefaultCacheSize, s.CacheSize)
	assert.Equal(t, DefaultWorkers, s.Workers)
	assert.False(t, s.Verbose)
	assert.Empty(t, s.Config)
	assert.NotEmpty(t, s.ProjectRoot)
	assert.Same(t, s, GetCurrentSettings())
}

func TestLoadSettings_FileSection(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `settings:
  output: json
  cache_size: 16
blocks: []
`)

	s, err := LoadSettings(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", s.Output)
	assert.Equal(t, 16, s.CacheSize)
	assert.Equal(t, cfgPath, s.Config)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
	assert.Equal(t, filepath.Dir(cfgPath), s.ProjectRoot)
}

func TestLoadSettings_DiscoversConfigUpward(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "settings:\n  workers: 3\n")
	nested := filepath.Join(filepath.Dir(cfgPath), "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	s, err := LoadSettings("", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Workers)
	assert.Equal(t, "mylint.yaml", filepath.Base(s.Config))
}

// TestLoadSettings_FlagPrecedence tests that flags override env vars and config file.
func TestLoadSettings_FlagPrecedence(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "settings:\n  output: yaml\n")
	t.Setenv("MYLINT_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output mode")
	flags.Int("cache-size", 0, "cache size")
	require.NoError(t, flags.Set("output", "json"))
	require.NoError(t, flags.Set("cache-size", "8"))

	s, err := LoadSettings(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "json", s.Output, "flag value should override config file and env var")
	assert.Equal(t, 8, s.CacheSize, "kebab-case flag maps to snake_case key")
}

// TestLoadSettings_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadSettings_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "settings:\n  output: yaml\n  workers: 2\n")
	t.Setenv("MYLINT_OUTPUT", "markdown")
	t.Setenv("MYLINT_WORKERS", "5")

	s, err := LoadSettings(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "markdown", s.Output, "env var should override config file")
	assert.Equal(t, 5, s.Workers)
}

// TestLoadSettings_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadSettings_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())
	t.Setenv("MYLINT_OUTPUT", "text")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output mode")

	s, err := LoadSettings("", flags)
	require.NoError(t, err)
	assert.Equal(t, "text", s.Output, "env var should be used when flag is not set")
}

func TestLoadSettings_ConfigFlag(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "settings:\n  verbose: true\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "config file")
	require.NoError(t, flags.Set("config", cfgPath))

	s, err := LoadSettings("", flags)
	require.NoError(t, err)
	assert.True(t, s.Verbose)
	assert.Equal(t, cfgPath, s.Config)
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Run("invalid output", func(t *testing.T) {
		ResetConfig()
		cfgPath := writeConfig(t, "settings:\n  output: html\n")
		_, err := LoadSettings(cfgPath, nil)
		assert.ErrorContains(t, err, "invalid output")
	})

	t.Run("missing explicit file", func(t *testing.T) {
		ResetConfig()
		_, err := LoadSettings(filepath.Join(t.TempDir(), "mylint.yaml"), nil)
		assert.ErrorContains(t, err, "error reading config file")
	})

	t.Run("negative workers", func(t *testing.T) {
		ResetConfig()
		t.Chdir(t.TempDir())
		t.Setenv("MYLINT_WORKERS", "-1")
		_, err := LoadSettings("", nil)
		assert.ErrorContains(t, err, "workers")
	})
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	logger := NewLogger(os.Stderr, true)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
