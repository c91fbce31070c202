package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	intconfig "github.com/RamilHin/my-linter/internal/config"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// Package-level koanf instance and config file tracking
var (
	k               = koanf.New(".")
	configFileUsed  string
	currentSettings *Settings
)

// findConfigFile finds the config file to use.
// Priority: explicit path > config in the working directory > nearest parent
// directory holding a config file.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	if root := intconfig.FindProjectRoot(cwd); root != "" {
		return intconfig.FindConfigFile(root)
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentSettings = nil
}

// LoadSettings loads settings from defaults, the config file's settings
// section, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadSettings(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":             DefaultOutput,
		"verbose":            false,
		"cache_size":         DefaultCacheSize,
		"workers":            DefaultWorkers,
		"no_default_ignores": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// The --config flag names the file, so read it before the file loads.
	if flags != nil && flags.Changed("config") {
		cfgFile, _ = flags.GetString("config")
	}
	if cfgFile == "" {
		cfgFile = os.Getenv("MYLINT_CONFIG")
	}

	// 2. Load the settings section of the config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := loadFileSettings(configFileUsed); err != nil {
			return nil, err
		}
	}

	// 3. Load environment variables (MYLINT_ prefix)
	// Transform: MYLINT_CACHE_SIZE -> cache_size
	if err := k.Load(env.Provider("MYLINT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MYLINT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Settings struct
	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	s.Config = configFileUsed

	if err := s.Validate(); err != nil {
		return nil, err
	}

	// 6. Resolve the project root
	if configFileUsed != "" {
		if abs, err := filepath.Abs(configFileUsed); err == nil {
			s.ProjectRoot = filepath.Dir(abs)
		}
	}
	if s.ProjectRoot == "" {
		cwd, _ := os.Getwd()
		if cwd == "" {
			cwd = "."
		}
		s.ProjectRoot = cwd
	}

	currentSettings = &s
	return &s, nil
}

// loadFileSettings merges the "settings" section of a config file.
func loadFileSettings(path string) error {
	parser, err := intconfig.Parser(path)
	if err != nil {
		return err
	}
	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if !fk.Exists("settings") {
		return nil
	}
	if err := k.Load(confmap.Provider(fk.Cut("settings").Raw(), "."), nil); err != nil {
		return fmt.Errorf("error reading settings from %s: %w", path, err)
	}
	return nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if !slices.Contains(validOutputs, s.Output) {
		return fmt.Errorf("invalid output %q (valid: %s)", s.Output, strings.Join(validOutputs, ", "))
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", s.CacheSize)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	return nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentSettings returns the currently loaded settings.
// This is available after LoadSettings is called.
func GetCurrentSettings() *Settings {
	return currentSettings
}

// NewLogger creates the CLI logger. Verbose enables debug output.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
