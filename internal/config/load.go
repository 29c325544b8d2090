package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zjrosen/signup/internal/log"
)

// LocalConfigPath is the project-local config, relative to the working
// directory. It is also where a default config is written.
const LocalConfigPath = ".signup/config.yaml"

// UserConfigPath returns ~/.config/signup/config.yaml for home.
func UserConfigPath(home string) string {
	return filepath.Join(home, ".config", "signup", "config.yaml")
}

// NewViper returns a viper instance with the "::" key delimiter, so dotted
// color tokens such as "text.primary" stay single keys under theme.colors,
// and with every default registered.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	d := Defaults()
	v.SetDefault("form::default_country_code", d.Form.DefaultCountryCode)
	v.SetDefault("form::reveal_password", d.Form.RevealPassword)
	v.SetDefault("ui::width", d.UI.Width)
	v.SetDefault("ui::watch_config", d.UI.WatchConfig)
	v.SetDefault("ui::markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("tracing::enabled", d.Tracing.Enabled)
	v.SetDefault("tracing::exporter", d.Tracing.Exporter)
	v.SetDefault("tracing::file_path", d.Tracing.FilePath)
	v.SetDefault("tracing::otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing::sample_rate", d.Tracing.SampleRate)
	return v
}

// Resolve picks the config file to read. Lookup order:
//  1. explicit (the --config flag); it must exist
//  2. <workDir>/.signup/config.yaml
//  3. <home>/.config/signup/config.yaml
//
// It returns "" when nothing was found and no explicit path was given.
func Resolve(explicit, workDir, home string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	candidates := []string{filepath.Join(workDir, LocalConfigPath)}
	if home != "" {
		candidates = append(candidates, UserConfigPath(home))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// Load resolves, reads and validates the config. When no file exists a
// commented default is written to <workDir>/.signup/config.yaml first; if
// that fails the built-in defaults are used and the returned path is "".
func Load(explicit, workDir, home string) (Config, string, error) {
	path, err := Resolve(explicit, workDir, home)
	if err != nil {
		return Config{}, "", err
	}
	if path == "" {
		defaultPath := filepath.Join(workDir, LocalConfigPath)
		if writeErr := WriteDefaultConfig(defaultPath); writeErr != nil {
			log.Warn(log.CatConfig, "Using built-in defaults", "reason", writeErr.Error())
			cfg := Defaults()
			return cfg, "", nil
		}
		path = defaultPath
	}

	cfg, err := ReadFile(path)
	if err != nil {
		return Config{}, path, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, path, fmt.Errorf("invalid config %s: %w", path, err)
	}
	log.Info(log.CatConfig, "Loaded config", "path", path)
	return cfg, path, nil
}

// ReadFile reads a single config file over the defaults without validating it.
func ReadFile(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	cfg.Tracing.FilePath = ExpandHome(cfg.Tracing.FilePath)
	return cfg, nil
}

// ReadTheme re-reads only the theme section of path. Used for live reloads,
// where the rest of the config is deliberately left alone.
func ReadTheme(path string) (ThemeConfig, error) {
	if path == "" {
		return ThemeConfig{}, errors.New("no config file to reload")
	}
	cfg, err := ReadFile(path)
	if err != nil {
		return ThemeConfig{}, err
	}
	return cfg.Theme, nil
}
