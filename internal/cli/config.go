package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds file-based defaults for the CLI.
// Flags take precedence over configured values.
type Config struct {
	// TypstBinary overrides the typst executable to invoke.
	TypstBinary string `toml:"typst_binary"`

	// FontDir is the directory holding the Fira Math font.
	// When empty, the font is downloaded into the user cache.
	FontDir string `toml:"font_dir"`

	// CacheDir overrides the artifact cache location.
	CacheDir string `toml:"cache_dir"`

	// RenderPragmas is the default pragma filter for draw and markup.
	RenderPragmas string `toml:"render_pragmas"`

	// InitMode is the default wire label mode: "state" or "qubit".
	InitMode string `toml:"init_mode"`

	// PixelsPerPoint is the default PNG rasterization density.
	PixelsPerPoint float64 `toml:"pixels_per_point"`

	// Listen is the default address for the serve command.
	Listen string `toml:"listen"`

	// RedisAddr enables the Redis cache for the serve command.
	RedisAddr string `toml:"redis_addr"`

	// RedisPassword authenticates against Redis.
	RedisPassword string `toml:"redis_password"`

	// RedisDB selects the Redis database.
	RedisDB int `toml:"redis_db"`
}

// configPath returns the config file location (~/.config/qcdraw/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// LoadConfig reads the config file, returning zero-valued defaults when
// the file is missing or unreadable. A malformed file is ignored rather
// than aborting the command.
func LoadConfig() Config {
	var cfg Config
	path := configPath()
	if path == "" {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	_, _ = toml.DecodeFile(path, &cfg)
	return cfg
}
