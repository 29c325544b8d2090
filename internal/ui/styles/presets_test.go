package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	require.Equal(t, "default", names[0])
	require.ElementsMatch(t, []string{
		"default", "catppuccin-mocha", "catppuccin-latte", "dracula", "nord", "high-contrast",
	}, names)
}

func TestPresets_AreComplete(t *testing.T) {
	for name, p := range Presets {
		require.Equal(t, name, p.Name)
		require.NotEmpty(t, p.Description)
		require.Len(t, p.Colors, len(AllTokens()), "preset %s", name)
		for token, hex := range p.Colors {
			require.True(t, IsValidToken(token), "preset %s: %s", name, token)
			require.True(t, isValidHexColor(hex), "preset %s: %s=%s", name, token, hex)
		}
	}
}
