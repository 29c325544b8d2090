package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveThemePreset_PreservesComments(t *testing.T) {
	path := writeConfig(t, t.TempDir(), DefaultConfigTemplate())

	require.NoError(t, SaveThemePreset(path, "dracula"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Start with the password visible")
	require.Contains(t, string(data), "preset: dracula")

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "dracula", cfg.Theme.Preset)
	require.Equal(t, "+91", cfg.Form.DefaultCountryCode)
	require.Equal(t, 64, cfg.UI.Width)
}

func TestSaveThemePreset_ReplacesExisting(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "theme:\n  preset: nord # current\n  mode: dark\nui:\n  width: 50\n")

	require.NoError(t, SaveThemePreset(path, "high-contrast"))

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "high-contrast", cfg.Theme.Preset)
	require.Equal(t, "dark", cfg.Theme.Mode)
	require.Equal(t, 50, cfg.UI.Width)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# current")
}

func TestSaveThemePreset_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, SaveThemePreset(path, "nord"))

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "nord", cfg.Theme.Preset)
}

func TestSetScalar_Errors(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "- a\n- b\n")
	require.ErrorContains(t, SetScalar(path, []string{"theme", "preset"}, "nord"), "not a mapping")
	require.ErrorContains(t, SetScalar(path, nil, "nord"), "empty key path")

	bad := writeConfig(t, t.TempDir(), "theme: [unclosed\n")
	require.ErrorContains(t, SetScalar(bad, []string{"theme", "preset"}, "nord"), "parsing config")
}

func TestSetScalar_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "ui:\n  width: 64\n")
	require.NoError(t, SetScalar(path, []string{"ui", "markdown_style"}, "light"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestPreviewThemePreset_DoesNotWrite(t *testing.T) {
	original := "theme:\n  preset: nord\nui:\n  width: 50\n"
	path := writeConfig(t, t.TempDir(), original)

	before, after, err := PreviewThemePreset(path, "dracula")
	require.NoError(t, err)
	require.Equal(t, original, before)
	require.Contains(t, after, "preset: dracula")
	require.Contains(t, after, "width: 50")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, string(data))
}

func TestPreviewThemePreset_MissingFile(t *testing.T) {
	before, after, err := PreviewThemePreset(filepath.Join(t.TempDir(), "none.yaml"), "nord")
	require.NoError(t, err)
	require.Empty(t, before)
	require.Equal(t, "theme:\n  preset: nord\n", after)
}
