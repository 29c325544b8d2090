package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/presentation"
	"github.com/zjrosen/signup/internal/ui/styles"
)

var (
	themeSet    string
	themeDryRun bool
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List theme presets or select one",
	Long: `List the built-in theme presets. The active preset is marked with *.

With --set, theme.preset is written into the config file. Comments and the
rest of the file are left untouched. A running form picks the change up
when ui.watch_config is on. Add --dry-run to print the change instead.

Examples:
  signup themes
  signup themes --set dracula
  signup themes --set nord --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		home, _ := os.UserHomeDir()
		return runThemes(cmd.OutOrStdout(), cfgFile, workDir, home, themeSet, themeDryRun)
	},
}

func init() {
	themesCmd.Flags().StringVar(&themeSet, "set", "", "preset to write into the config file")
	themesCmd.Flags().BoolVar(&themeDryRun, "dry-run", false, "with --set, print the config change without writing it")
	rootCmd.AddCommand(themesCmd)
}

func runThemes(out io.Writer, explicit, workDir, home, set string, dryRun bool) error {
	path, err := config.Resolve(explicit, workDir, home)
	if err != nil {
		return err
	}

	if set == "" {
		active := ""
		if path != "" {
			theme, err := config.ReadTheme(path)
			if err != nil {
				return err
			}
			active = theme.Preset
		}
		return presentation.NewFormatter(out).FormatThemes(presentation.FromPresets(active))
	}

	if _, ok := styles.Presets[set]; !ok {
		return fmt.Errorf("unknown theme preset %q (run 'signup themes' to list them)", set)
	}
	if dryRun {
		if path == "" {
			path = filepath.Join(workDir, config.LocalConfigPath)
		}
		before, after, err := config.PreviewThemePreset(path, set)
		if err != nil {
			return err
		}
		return presentation.NewFormatter(out).FormatConfigDiff(path, before, after)
	}
	if path == "" {
		path = filepath.Join(workDir, config.LocalConfigPath)
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
	}
	if err := config.SaveThemePreset(path, set); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "theme preset set to %s in %s\n", set, path)
	return err
}
