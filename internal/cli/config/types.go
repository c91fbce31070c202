// Package config provides settings management for the mylint CLI.
//
// Settings are the knobs of the command itself (output mode, cache size,
// worker count). Rule configuration lives in the blocks of the same config
// file and is loaded by internal/config.
package config

// Default settings values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultCacheSize = 1024
	DefaultWorkers   = 0 // 0 means one per CPU
)

// Output modes accepted by the output setting.
var validOutputs = []string{"auto", "text", "json", "yaml", "markdown"}

// Settings holds all CLI settings.
type Settings struct {
	Config           string `koanf:"config"`
	Output           string `koanf:"output"`
	Verbose          bool   `koanf:"verbose"`
	CacheSize        int    `koanf:"cache_size"`
	Workers          int    `koanf:"workers"`
	NoDefaultIgnores bool   `koanf:"no_default_ignores"`

	// ProjectRoot is the directory paths are made relative to. It is the
	// directory of the config file, or the working directory when none is found.
	ProjectRoot string `koanf:"-"`
}
