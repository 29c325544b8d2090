package styles

import (
	"maps"
	"slices"
)

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// PresetNames returns the preset names sorted, "default" first.
func PresetNames() []string {
	names := slices.Sorted(maps.Keys(Presets))
	if i := slices.Index(names, "default"); i > 0 {
		names = append([]string{"default"}, slices.Delete(names, i, i+1)...)
	}
	return names
}

// DefaultPreset matches the initial values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default signup theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusError:   "#FF8787",

		TokenSelectionIndicator: "#FFFFFF",

		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDisabledBg:       "#2D2D2D",

		TokenFormBorder:      "#8C8C8C",
		TokenFormBorderFocus: "#FFFFFF",
		TokenFormLabel:       "#8C8C8C",
		TokenFormLabelFocus:  "#FFFFFF",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) palette.
// Colors from https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextPlaceholder: "#585B70", // surface2

		TokenBorderDefault: "#6C7086",
		TokenBorderFocus:   "#CDD6F4",

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusError:   "#F38BA8", // red

		TokenSelectionIndicator: "#CDD6F4",

		TokenButtonText:             "#1E1E2E", // base
		TokenButtonPrimaryBg:        "#89B4FA", // blue
		TokenButtonPrimaryFocusBg:   "#B4BEFE", // lavender
		TokenButtonSecondaryBg:      "#45475A", // surface1
		TokenButtonSecondaryFocusBg: "#585B70",
		TokenButtonDisabledBg:       "#313244", // surface0

		TokenFormBorder:      "#6C7086",
		TokenFormBorderFocus: "#CDD6F4",
		TokenFormLabel:       "#6C7086",
		TokenFormLabelFocus:  "#CDD6F4",

		TokenOverlayTitle:  "#CDD6F4",
		TokenOverlayBorder: "#6C7086",
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) palette.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#4C4F69",
		TokenTextSecondary:   "#5C5F77",
		TokenTextMuted:       "#9CA0B0",
		TokenTextPlaceholder: "#ACB0BE",

		TokenBorderDefault: "#9CA0B0",
		TokenBorderFocus:   "#4C4F69",

		TokenStatusSuccess: "#40A02B",
		TokenStatusError:   "#D20F39",

		TokenSelectionIndicator: "#4C4F69",

		TokenButtonText:             "#EFF1F5",
		TokenButtonPrimaryBg:        "#1E66F5",
		TokenButtonPrimaryFocusBg:   "#7287FD",
		TokenButtonSecondaryBg:      "#BCC0CC",
		TokenButtonSecondaryFocusBg: "#ACB0BE",
		TokenButtonDisabledBg:       "#CCD0DA",

		TokenFormBorder:      "#9CA0B0",
		TokenFormBorderFocus: "#4C4F69",
		TokenFormLabel:       "#9CA0B0",
		TokenFormLabelFocus:  "#4C4F69",

		TokenOverlayTitle:  "#4C4F69",
		TokenOverlayBorder: "#9CA0B0",
	},
}

// DraculaPreset follows https://draculatheme.com/contribute
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2",
		TokenTextSecondary:   "#F8F8F2",
		TokenTextMuted:       "#6272A4",
		TokenTextPlaceholder: "#6272A4",

		TokenBorderDefault: "#6272A4",
		TokenBorderFocus:   "#F8F8F2",

		TokenStatusSuccess: "#50FA7B",
		TokenStatusError:   "#FF5555",

		TokenSelectionIndicator: "#F8F8F2",

		TokenButtonText:             "#282A36",
		TokenButtonPrimaryBg:        "#BD93F9",
		TokenButtonPrimaryFocusBg:   "#FF79C6",
		TokenButtonSecondaryBg:      "#44475A",
		TokenButtonSecondaryFocusBg: "#6272A4",
		TokenButtonDisabledBg:       "#44475A",

		TokenFormBorder:      "#6272A4",
		TokenFormBorderFocus: "#F8F8F2",
		TokenFormLabel:       "#6272A4",
		TokenFormLabelFocus:  "#F8F8F2",

		TokenOverlayTitle:  "#F8F8F2",
		TokenOverlayBorder: "#6272A4",
	},
}

// NordPreset follows https://www.nordtheme.com/docs/colors-and-palettes
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4",
		TokenTextSecondary:   "#E5E9F0",
		TokenTextMuted:       "#4C566A",
		TokenTextPlaceholder: "#4C566A",

		TokenBorderDefault: "#4C566A",
		TokenBorderFocus:   "#ECEFF4",

		TokenStatusSuccess: "#A3BE8C",
		TokenStatusError:   "#BF616A",

		TokenSelectionIndicator: "#ECEFF4",

		TokenButtonText:             "#2E3440",
		TokenButtonPrimaryBg:        "#5E81AC",
		TokenButtonPrimaryFocusBg:   "#81A1C1",
		TokenButtonSecondaryBg:      "#434C5E",
		TokenButtonSecondaryFocusBg: "#4C566A",
		TokenButtonDisabledBg:       "#3B4252",

		TokenFormBorder:      "#4C566A",
		TokenFormBorderFocus: "#ECEFF4",
		TokenFormLabel:       "#4C566A",
		TokenFormLabelFocus:  "#ECEFF4",

		TokenOverlayTitle:  "#ECEFF4",
		TokenOverlayBorder: "#4C566A",
	},
}

// HighContrastPreset maximises contrast for low-vision users.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#FFFFFF",
		TokenTextPlaceholder: "#CCCCCC",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusSuccess: "#00FF00",
		TokenStatusError:   "#FF0000",

		TokenSelectionIndicator: "#FFFF00",

		TokenButtonText:             "#000000",
		TokenButtonPrimaryBg:        "#00FFFF",
		TokenButtonPrimaryFocusBg:   "#FFFFFF",
		TokenButtonSecondaryBg:      "#808080",
		TokenButtonSecondaryFocusBg: "#FFFFFF",
		TokenButtonDisabledBg:       "#404040",

		TokenFormBorder:      "#FFFFFF",
		TokenFormBorderFocus: "#FFFF00",
		TokenFormLabel:       "#FFFFFF",
		TokenFormLabelFocus:  "#FFFF00",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",
	},
}
