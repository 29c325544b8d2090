package styles

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid an import cycle.
type ThemeConfig struct {
	Preset string
	Mode   string // "light", "dark" or "" for terminal detection
	Colors map[string]string
}

// colorTargets maps each token to the variables it drives.
func colorTargets() map[ColorToken][]*lipgloss.AdaptiveColor {
	return map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:     {&TextPrimaryColor},
		TokenTextSecondary:   {&TextSecondaryColor},
		TokenTextMuted:       {&TextMutedColor},
		TokenTextPlaceholder: {&TextPlaceholderColor},

		TokenBorderDefault: {&BorderDefaultColor},
		TokenBorderFocus:   {&BorderFocusColor},

		TokenStatusSuccess: {&StatusSuccessColor},
		TokenStatusError:   {&StatusErrorColor},

		TokenSelectionIndicator: {&SelectionIndicatorColor},

		TokenButtonText:             {&ButtonTextColor},
		TokenButtonPrimaryBg:        {&ButtonPrimaryBgColor},
		TokenButtonPrimaryFocusBg:   {&ButtonPrimaryFocusBgColor},
		TokenButtonSecondaryBg:      {&ButtonSecondaryBgColor},
		TokenButtonSecondaryFocusBg: {&ButtonSecondaryFocusBgColor},
		TokenButtonDisabledBg:       {&ButtonDisabledBgColor},

		TokenFormBorder:      {&FormTextInputBorderColor},
		TokenFormBorderFocus: {&FormTextInputFocusedBorderColor},
		TokenFormLabel:       {&FormTextInputLabelColor},
		TokenFormLabelFocus:  {&FormTextInputFocusedLabelColor},

		TokenOverlayTitle:  {&OverlayTitleColor},
		TokenOverlayBorder: {&OverlayBorderColor},
	}
}

// ApplyTheme resolves cfg and swaps in the resulting colors:
// default preset, then cfg.Preset, then individual overrides.
// Nothing is changed when cfg is invalid.
func ApplyTheme(cfg ThemeConfig) error {
	colors, err := ResolveColors(cfg)
	if err != nil {
		return err
	}

	switch cfg.Mode {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	for token, targets := range colorTargets() {
		hex, ok := colors[token]
		if !ok {
			continue
		}
		for _, c := range targets {
			*c = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}

	rebuildStyles()
	return nil
}

// ResolveColors computes the final token colors for cfg without applying
// them.
func ResolveColors(cfg ThemeConfig) (map[ColorToken]string, error) {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	switch cfg.Mode {
	case "", "light", "dark":
	default:
		return nil, fmt.Errorf("invalid theme mode %q (must be \"light\" or \"dark\")", cfg.Mode)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !IsValidToken(token) {
			return nil, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}
	return colors, nil
}

// IsValidToken reports whether token is a known color token.
func IsValidToken(token ColorToken) bool {
	_, ok := colorTargets()[token]
	return ok
}

func isValidHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
