package main

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds obocat's persistent settings, loaded from
// $XDG_CONFIG_HOME/obocat/config.yaml if present.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
	// DefaultGlob is the glob pattern "validate" uses when no path is
	// given on the command line.
	DefaultGlob string `yaml:"default_glob"`
}

func defaultConfig() Config {
	return Config{LogLevel: "info", DefaultGlob: "**/*.obo"}
}

// loadConfig reads obocat's YAML config from the XDG config directory,
// and loads a ".env" file from the current directory if present, so
// environment-driven overrides (OBOCAT_LOG_LEVEL, ...) are available
// before flags are parsed. A missing config file is not an error: the
// defaults apply.
func loadConfig() (Config, error) {
	_ = godotenv.Load() // no .env file is the common case, not an error

	cfg := defaultConfig()
	path, err := xdg.ConfigFile(filepath.Join("obocat", "config.yaml"))
	if err == nil {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		case !os.IsNotExist(err):
			return cfg, err
		}
	}
	if v := os.Getenv("OBOCAT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}
