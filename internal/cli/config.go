package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/collage/pkg/errors"
)

// Config mirrors the root command flags that make sense as persistent
// defaults. Pointer fields distinguish "absent from the file" from an
// explicit zero, so a config can legitimately set padding = 0.
type Config struct {
	Size    *int `toml:"size"`
	Width   *int `toml:"width"`
	Height  *int `toml:"height"`
	Padding *int `toml:"padding"`
	Columns *int `toml:"columns"`
	MaxRows *int `toml:"max_rows"`

	Background *string `toml:"background"`
	Quality    *int    `toml:"quality"`

	TitleSize        *float64 `toml:"title_size"`
	TitleFont        *string  `toml:"title_font"`
	TitleColor       *string  `toml:"title_color"`
	TitleBorder      *int     `toml:"title_border"`
	TitleBorderColor *string  `toml:"title_border_color"`

	Workers *int    `toml:"workers"`
	Seed    *uint64 `toml:"seed"`
}

// loadConfig reads the TOML config file. An explicit path must exist; the
// default path is optional and silently skipped when missing.
func loadConfig(path string, logger *log.Logger) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot read config file %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot parse config file %s", path)
	}
	logger.Debug("loaded config file", "path", path)
	return &cfg, nil
}

// defaultConfigPath returns the XDG config location
// (~/.config/collage/config.toml). Empty when no home is resolvable.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
