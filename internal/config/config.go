// Package config provides configuration types, defaults, loading and
// persistence for signup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
)

// Config holds all configuration options for signup.
type Config struct {
	Form    FormConfig    `mapstructure:"form"`
	UI      UIConfig      `mapstructure:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// FormConfig holds the form's initial values and the country directory.
type FormConfig struct {
	// DefaultCountryCode preselects the phone dial code. One of +1, +44, +91.
	DefaultCountryCode string `mapstructure:"default_country_code"`

	// RevealPassword starts the form with the password shown in clear text.
	RevealPassword bool `mapstructure:"reveal_password"`

	// Countries replaces the built-in country directory when non-empty.
	Countries []CountryConfig `mapstructure:"countries"`
}

// CountryConfig is one directory entry.
type CountryConfig struct {
	Name   string   `mapstructure:"name"`
	Cities []string `mapstructure:"cities"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	Width         int    `mapstructure:"width"`          // Form width in terminal cells
	WatchConfig   bool   `mapstructure:"watch_config"`   // Reload the theme when the config file changes
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light" for the help overlay
}

// MinWidth is the narrowest form ui.width accepts.
const MinWidth = 40

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base.
	// Run 'signup themes' to list them.
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. Empty uses terminal detection.
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens. Both nested YAML and quoted
	// dot notation are accepted:
	//   colors:
	//     status:
	//       error: "#FF0000"
	//     "text.primary": "#FFFFFF"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns Colors with nested maps collapsed to dot-notation
// keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	out := make(map[string]string)
	flattenColors("", t.Colors, out)
	return out
}

func flattenColors(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flattenColors(key, val, out)
		case map[any]any:
			// yaml.v2-style decoders hand back map[any]any.
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if s, ok := mk.(string); ok {
					converted[s] = mv
				}
			}
			flattenColors(key, converted, out)
		}
	}
}

// TracingConfig holds tracing configuration for form submissions.
type TracingConfig struct {
	// Enabled controls whether tracing is active. Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the export backend: none, file, stdout, otlp.
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the file exporter. A leading ~/ is
	// expanded to the home directory.
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the otlp exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns ~/.config/signup/traces/traces.jsonl, or ""
// when the home directory is unknown.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "signup", "traces", "traces.jsonl")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Form: FormConfig{
			DefaultCountryCode: registration.DefaultDialCode,
		},
		UI: UIConfig{
			Width:         64,
			WatchConfig:   true,
			MarkdownStyle: "dark",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Directory builds the country directory: the configured countries when
// present, the built-in directory otherwise.
func (c Config) Directory() (registration.Directory, error) {
	if len(c.Form.Countries) == 0 {
		return registration.DefaultDirectory(), nil
	}
	countries := make([]registration.CountryEntry, len(c.Form.Countries))
	for i, cc := range c.Form.Countries {
		countries[i] = registration.CountryEntry{Name: cc.Name, Cities: cc.Cities}
	}
	return registration.NewDirectory(countries)
}

// Validate checks every section and joins all problems into one error.
func Validate(c Config) error {
	return errors.Join(
		ValidateForm(c.Form),
		ValidateUI(c.UI),
		ValidateTracing(c.Tracing),
	)
}

// ValidateForm checks the dial code and the directory override.
func ValidateForm(form FormConfig) error {
	if form.DefaultCountryCode != "" && !registration.IsDialCode(form.DefaultCountryCode) {
		return fmt.Errorf("form.default_country_code must be one of +1, +44, +91, got %q", form.DefaultCountryCode)
	}
	if len(form.Countries) == 0 {
		return nil
	}
	if _, err := (Config{Form: form}).Directory(); err != nil {
		return fmt.Errorf("form.countries: %w", err)
	}
	return nil
}

// ValidateUI checks user interface options. Zero values use defaults.
func ValidateUI(ui UIConfig) error {
	if ui.Width != 0 && ui.Width < MinWidth {
		return fmt.Errorf("ui.width must be at least %d, got %d", MinWidth, ui.Width)
	}
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Path requirements only apply when tracing is enabled.
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	switch tracing.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
	}

	if !tracing.Enabled {
		return nil
	}
	if tracing.Exporter == "file" && tracing.FilePath == "" {
		return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
	}
	if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# signup configuration

# Form settings
form:
  default_country_code: "+91"   # Preselected phone code: "+1", "+44" or "+91"
  reveal_password: false        # Start with the password visible (toggle with ctrl+r)

  # Replace the built-in country directory (India, USA, Canada, UK).
  # Every country needs at least one city; names must be unique.
  # countries:
  #   - name: India
  #     cities: [Delhi, Mumbai, Bangalore, Kolkata]
  #   - name: Japan
  #     cities: [Tokyo, Osaka]

# UI settings
ui:
  width: 64               # Form width in terminal cells (minimum 40)
  watch_config: true      # Re-apply the theme when this file changes
  # markdown_style: dark  # Help overlay style: "dark" (default) or "light"

# Theme configuration
theme:
  # Use a preset (run 'signup themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default signup theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   status.error: "#FF0000"
  #   button.primary.bg: "#1A5276"

# Submission tracing
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # none, file, stdout, otlp (default: file)
#   file_path: ~/.config/signup/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at configPath with default
// settings and comments, creating the parent directory if needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
