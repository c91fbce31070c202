package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RamilHin/my-linter/internal/cli/config"
	"github.com/RamilHin/my-linter/internal/cli/output"
	intconfig "github.com/RamilHin/my-linter/internal/config"
	"github.com/RamilHin/my-linter/pkg/lint"
)

// errNoConfig is returned by commands that need a config file when none is found.
var errNoConfig = fmt.Errorf("no config file found (looked for %s)", strings.Join(intconfig.ConfigFileNames, ", "))

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Settings *config.Settings
	Logger   *slog.Logger
	Store    *lint.Store
	Engine   *lint.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the configuration loaded
// into an engine.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutEngine(cmd)

	store, err := loadStore(cmdCtx.Settings, cmdCtx.Logger)
	if err != nil {
		return nil, err
	}
	cmdCtx.Store = store
	cmdCtx.Engine = lint.NewEngine(store,
		lint.WithCacheSize(cmdCtx.Settings.CacheSize),
		lint.WithLogger(cmdCtx.Logger))
	return cmdCtx, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without loading
// the rule configuration.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	s := getSettings()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(s.Output))

	return &CommandContext{
		Settings: s,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getSettings returns the current settings, or defaults when none were loaded.
func getSettings() *config.Settings {
	if s := config.GetCurrentSettings(); s != nil {
		return s
	}
	cwd, _ := os.Getwd()
	return &config.Settings{
		Output:      config.DefaultOutput,
		CacheSize:   config.DefaultCacheSize,
		Workers:     config.DefaultWorkers,
		ProjectRoot: cwd,
	}
}

func loadStore(s *config.Settings, logger *slog.Logger) (*lint.Store, error) {
	if s.Config == "" {
		return nil, errNoConfig
	}
	store, err := intconfig.Load(s.Config, intconfig.Options{
		NoDefaultIgnores: s.NoDefaultIgnores,
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return store, nil
}

// RelPath converts a command-line path to the project-relative, slash
// separated form that config patterns match against.
func (c *CommandContext) RelPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	root, err := filepath.Abs(c.Settings.ProjectRoot)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the project root %s", path, root)
	}
	return filepath.ToSlash(rel), nil
}

// errViolations marks a command that ran fine but found problems; the
// caller exits non-zero without an extra error message.
var errViolations = errors.New("violations found")

// IsViolation reports whether err only signals that problems were reported.
func IsViolation(err error) bool {
	return errors.Is(err, errViolations)
}
