package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/RamilHin/my-linter/pkg/core"
	"github.com/RamilHin/my-linter/pkg/glob"
	"github.com/RamilHin/my-linter/pkg/ignore"
	"github.com/RamilHin/my-linter/pkg/lint"
	"github.com/RamilHin/my-linter/pkg/lint/naming"
)

// Options control how a config file is turned into a Store.
type Options struct {
	// NoDefaultIgnores drops the built-in ignore patterns (node_modules, .git, ...).
	NoDefaultIgnores bool
	Logger           *slog.Logger
}

// Parser returns the koanf parser for a config file, chosen by extension.
func Parser(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// ReadFile loads and decodes a config file without validating it.
func ReadFile(path string) (*FileConfig, error) {
	parser, err := Parser(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(keyDelim)
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var fc FileConfig
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &fc,
			TagName:          "koanf",
			ErrorUnused:      true,
			WeaklyTypedInput: false,
		},
	}); err != nil {
		return nil, &core.ConfigError{Source: path, Block: -1, Message: err.Error()}
	}
	return &fc, nil
}

// Load reads a config file and builds a validated Store.
func Load(path string, opts Options) (*lint.Store, error) {
	fc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(fc, path, opts)
}

// Build validates a decoded config and builds a Store. Source is used in
// error messages.
func Build(fc *FileConfig, source string, opts Options) (*lint.Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	globalIgnores := append([]string{}, fc.Ignores...)
	var blocks []lint.Block

	for i := range fc.Blocks {
		raw := &fc.Blocks[i]
		if raw.ignoresOnly() {
			logger.Debug("block contributes global ignores", "block", i, "patterns", raw.Ignores)
			globalIgnores = append(globalIgnores, raw.Ignores...)
			continue
		}

		b, err := buildBlock(i, raw)
		if err != nil {
			return nil, withSource(err, source, i)
		}
		blocks = append(blocks, b)
	}

	var filterOpts []ignore.Option
	if opts.NoDefaultIgnores {
		filterOpts = append(filterOpts, ignore.WithoutDefaults())
	}
	filter, err := ignore.New(globalIgnores, filterOpts...)
	if err != nil {
		return nil, withSource(err, source, -1)
	}

	store, err := lint.NewStore(blocks, filter, lint.WithSource(source))
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "source", source, "blocks", len(blocks), "version", store.Version())
	return store, nil
}

func buildBlock(index int, raw *BlockConfig) (lint.Block, error) {
	b := lint.Block{
		Index:           index,
		Name:            raw.Name,
		LanguageOptions: raw.LanguageOptions,
		Rules:           make(map[string]lint.RuleSetting, len(raw.Rules)),
	}

	var err error
	if b.Files, err = glob.CompileSet(raw.Files); err != nil {
		return b, fieldError("files", err)
	}
	if b.Ignores, err = glob.CompileSet(raw.Ignores); err != nil {
		return b, fieldError("ignores", err)
	}

	if b.Naming, err = naming.ParseSelectors(raw.Naming, index, 0); err != nil {
		return b, err
	}

	for _, id := range sortedKeys(raw.Rules) {
		setting, err := lint.Normalize(raw.Rules[id])
		if err != nil {
			return b, fieldError("rules."+id, err)
		}
		b.Rules[id] = setting

		if isNamingRule(id) {
			lifted, err := naming.ParseSelectors(setting.Options, index, len(b.Naming))
			if err != nil {
				return b, fieldError("rules."+id, err)
			}
			b.Naming = append(b.Naming, lifted...)
		}
	}
	return b, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isNamingRule(id string) bool {
	return id == namingRuleID || strings.HasSuffix(id, "/"+namingRuleID)
}

// fieldError prefixes the field path of a ConfigError. Other errors, such as
// a *core.PatternError, are wrapped so callers can still match them.
func fieldError(field string, err error) error {
	var ce *core.ConfigError
	if errors.As(err, &ce) {
		out := *ce
		if out.Field == "" {
			out.Field = field
		} else {
			out.Field = field + "." + out.Field
		}
		return &out
	}
	return fmt.Errorf("%s: %w", field, err)
}

// withSource records where a load error happened.
func withSource(err error, source string, block int) error {
	var ce *core.ConfigError
	if errors.As(err, &ce) {
		ce.Source = source
		ce.Block = block
		return ce
	}
	if block < 0 {
		return fmt.Errorf("config error in %s: %w", source, err)
	}
	return fmt.Errorf("config error in %s at block %d: %w", source, block, err)
}

// FindConfigFile returns the first config file found in dir, or "".
func FindConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FindProjectRoot walks up from startDir to the first directory containing
// a config file. Returns "" if none is found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}
