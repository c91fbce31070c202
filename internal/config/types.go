// Package config loads mylint configuration files into a lint.Store.
// This package is decoupled from CLI concerns so watchers and editors can
// load project configuration the same way the CLI does.
package config

// FileConfig is the raw shape of a config file.
type FileConfig struct {
	// Ignores are global ignore patterns applied before any block.
	Ignores []string `koanf:"ignores"`

	// Blocks are the configuration blocks in declaration order.
	Blocks []BlockConfig `koanf:"blocks"`

	// Settings holds CLI settings; the block loader ignores it.
	Settings map[string]any `koanf:"settings"`
}

// BlockConfig is one raw block before validation.
type BlockConfig struct {
	Name            string         `koanf:"name"`
	Files           []string       `koanf:"files"`
	Ignores         []string       `koanf:"ignores"`
	Rules           map[string]any `koanf:"rules"`
	LanguageOptions map[string]any `koanf:"languageOptions"`
	Naming          []any          `koanf:"naming"`
}

// ignoresOnly reports whether the block has nothing but ignore patterns.
// Such a block contributes global ignores instead of a block.
func (b *BlockConfig) ignoresOnly() bool {
	return len(b.Ignores) > 0 &&
		len(b.Files) == 0 &&
		b.Rules == nil &&
		b.LanguageOptions == nil &&
		b.Naming == nil
}
