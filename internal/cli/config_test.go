package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/collage/pkg/errors"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
size = 2400
padding = 0
background = "#101010"
quality = 92
title_size = 32.0
seed = 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, testLogger())
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.Size == nil || *cfg.Size != 2400 {
		t.Errorf("Size = %v, want 2400", cfg.Size)
	}
	if cfg.Padding == nil || *cfg.Padding != 0 {
		t.Errorf("Padding = %v, want explicit 0", cfg.Padding)
	}
	if cfg.Background == nil || *cfg.Background != "#101010" {
		t.Errorf("Background = %v, want #101010", cfg.Background)
	}
	if cfg.Quality == nil || *cfg.Quality != 92 {
		t.Errorf("Quality = %v, want 92", cfg.Quality)
	}
	if cfg.TitleSize == nil || *cfg.TitleSize != 32.0 {
		t.Errorf("TitleSize = %v, want 32.0", cfg.TitleSize)
	}
	if cfg.Seed == nil || *cfg.Seed != 7 {
		t.Errorf("Seed = %v, want 7", cfg.Seed)
	}

	// Absent keys stay nil so flag defaults apply.
	if cfg.Columns != nil {
		t.Errorf("Columns = %v, want nil for absent key", cfg.Columns)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), testLogger())
	if err == nil {
		t.Fatal("loadConfig() should fail for an explicit missing path")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("size = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(path, testLogger())
	if err == nil {
		t.Fatal("loadConfig() should fail for malformed TOML")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestLoadConfigDefaultPathMissing(t *testing.T) {
	// Point XDG at an empty directory: the default config is optional.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("", testLogger())
	if err != nil {
		t.Fatalf("loadConfig() error = %v, want silent skip", err)
	}
	if cfg == nil {
		t.Fatal("loadConfig() returned nil config")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "collage", "config.toml")
	if got := defaultConfigPath(); got != want {
		t.Errorf("defaultConfigPath() = %q, want %q", got, want)
	}
}
