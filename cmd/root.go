package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/zjrosen/signup/internal/app"
	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
	"github.com/zjrosen/signup/internal/ui/styles"
)

func init() {
	// Probe the background colour once, up front. If the OSC 11 reply
	// arrives after the program owns stdin it is typed into the focused
	// text input. https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version     = "dev"
	cfgFile     string
	debugFlag   bool
	logLevel    string
	countryCode string
)

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "A terminal registration form",
	Long: `A terminal registration form with inline validation.

Fill in name, contact, location and identity fields; the form validates as
you type and shows a summary once submitted.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .signup/config.yaml, then ~/.config/signup/config.yaml)")
	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log to debug.log (or set SIGNUP_DEBUG=1)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "debug",
		"lowest level written to the debug log: debug, info, warn or error")
	rootCmd.Flags().StringVar(&countryCode, "country-code", "",
		"initial phone country code (+1, +44 or +91)")
}

// loadConfig resolves and validates the config relative to the process
// working directory and home.
func loadConfig() (config.Config, string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("getting current directory: %w", err)
	}
	home, _ := os.UserHomeDir()
	return config.Load(cfgFile, workDir, home)
}

// tracingConfig converts the config section for tracing.NewProvider.
func tracingConfig(c config.TracingConfig) tracing.Config {
	return tracing.Config{
		Enabled:      c.Enabled,
		Exporter:     c.Exporter,
		FilePath:     c.FilePath,
		OTLPEndpoint: c.OTLPEndpoint,
		SampleRate:   c.SampleRate,
	}
}

// applyCountryCode overrides the configured dial code with the flag value.
func applyCountryCode(cfg *config.Config, code string) error {
	if code == "" {
		return nil
	}
	if !registration.IsDialCode(code) {
		return fmt.Errorf("--country-code %q: must be one of +1, +44, +91", code)
	}
	cfg.Form.DefaultCountryCode = code
	return nil
}

// startDebugLog opens the debug log at path, dropping entries below level.
func startDebugLog(path, level string) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	cleanup, err := log.Init(path)
	if err != nil {
		return nil, err
	}
	log.SetMinLevel(lvl)
	return cleanup, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if os.Getenv("SIGNUP_DEBUG") != "" || debugFlag {
		cleanup, err := startDebugLog("debug.log", logLevel)
		if err != nil {
			return err
		}
		defer cleanup()
		log.Info(log.CatConfig, "signup starting", "version", version, "log_level", logLevel)
	}

	cfg, configPath, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyCountryCode(&cfg, countryCode); err != nil {
		return err
	}
	if err := styles.ApplyTheme(app.StylesTheme(cfg.Theme)); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	provider, err := tracing.NewProvider(tracingConfig(cfg.Tracing))
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	zone.NewGlobal()
	model, err := app.New(ctx, app.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Tracer:     provider.Tracer(),
	})
	if err != nil {
		return fmt.Errorf("building form: %w", err)
	}

	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
