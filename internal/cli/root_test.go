package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamilHin/my-linter/internal/cli/config"
	"github.com/RamilHin/my-linter/internal/cli/output"
	"github.com/RamilHin/my-linter/internal/testutil"
)

const rootConfig = `
settings:
  output: text
blocks:
  - files: ["**/*.ts"]
    rules:
      curly: error
`

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "mylint", cmd.Use)
	for _, flag := range []string{"config", "output", "verbose", "cache-size", "workers", "no-default-ignores"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"version", "config", "naming", "files", "rules", "validate", "watch", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRoot_Version(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mylint v"+Version)
}

func TestRoot_FlagsOverrideFileSettings(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "custom.yaml", rootConfig)
	t.Chdir(dir)

	out, _, err := runRoot(t, "--config", path, "-o", "json", "--workers", "2", "config", "src/a.ts")
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cfg), "flag output wins over the file's text setting")
	assert.Equal(t, "src/a.ts", cfg["path"])

	s := config.GetCurrentSettings()
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, path, s.Config)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "mylint.yaml", rootConfig)
	t.Chdir(dir)

	_, stderr, err := runRoot(t, "-v", "validate")
	require.NoError(t, err)
	assert.Contains(t, stderr, "using config file")
}

func TestRoot_InvalidOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runRoot(t, "-o", "xml", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestRoot_Completion(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runRoot(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "mylint")
}

func TestGetRenderer_Default(t *testing.T) {
	r := GetRenderer(context.Background())
	require.NotNil(t, r)
	assert.Equal(t, output.ModeAuto, output.Mode("auto"))
}
