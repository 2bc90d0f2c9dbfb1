package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		input, ext, want string
	}{
		{"bell.json", ".png", "bell.png"},
		{"circuits/ghz.json", ".typ", "circuits/ghz.typ"},
		{"noext", ".png", "noext.png"},
		{"-", ".png", "circuit.png"},
	}
	for _, tt := range tests {
		if got := outputName(tt.input, tt.ext); got != tt.want {
			t.Errorf("outputName(%q, %q) = %q, want %q", tt.input, tt.ext, got, tt.want)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "", "third"); got != "third" {
		t.Errorf("got %q", got)
	}
	if got := firstNonEmpty("first", "second"); got != "first" {
		t.Errorf("got %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"draw": false, "markup": false, "simplify": false,
		"graph": false, "serve": false, "cache": false, "completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.Use != "qcdraw" {
		t.Errorf("Use = %q", root.Use)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfig()
	if cfg != (Config{}) {
		t.Errorf("cfg = %+v, want zero defaults", cfg)
	}
}

func TestLoadConfigReadsToml(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, "qcdraw")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "typst_binary = \"/opt/typst\"\npixels_per_point = 2.5\nredis_db = 3\n"
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if cfg.TypstBinary != "/opt/typst" {
		t.Errorf("TypstBinary = %q", cfg.TypstBinary)
	}
	if cfg.PixelsPerPoint != 2.5 {
		t.Errorf("PixelsPerPoint = %v", cfg.PixelsPerPoint)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d", cfg.RedisDB)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, "qcdraw")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte("not = [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	// A broken config falls back to defaults instead of aborting.
	cfg := LoadConfig()
	if cfg.TypstBinary != "" {
		t.Errorf("TypstBinary = %q, want empty", cfg.TypstBinary)
	}
}

func TestCacheDirPrecedence(t *testing.T) {
	c := New(io.Discard, LogInfo)

	c.Config.CacheDir = "/custom/cache"
	dir, err := c.cacheDir()
	if err != nil || dir != "/custom/cache" {
		t.Errorf("dir = %q err = %v", dir, err)
	}

	c.Config.CacheDir = ""
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")
	dir, err = c.cacheDir()
	if err != nil || dir != filepath.Join("/xdg/cache", "qcdraw") {
		t.Errorf("dir = %q err = %v", dir, err)
	}
}
