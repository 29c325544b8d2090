// Package app contains the root application model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/session"
	"github.com/zjrosen/signup/internal/ui/confirm"
	"github.com/zjrosen/signup/internal/ui/form"
	"github.com/zjrosen/signup/internal/ui/help"
	"github.com/zjrosen/signup/internal/ui/styles"
	"github.com/zjrosen/signup/internal/watcher"
)

// ConfigChangedMsg is sent when the watched config file changed on disk.
type ConfigChangedMsg struct{}

// themeReloadedMsg carries the result of re-reading the theme section.
type themeReloadedMsg struct {
	theme config.ThemeConfig
	err   error
}

// Options configure a new application model.
type Options struct {
	Config     config.Config
	ConfigPath string
	Tracer     trace.Tracer
	// IDGenerator overrides session IDs; tests pin it.
	IDGenerator func() string
}

// Model is the root application state.
type Model struct {
	ctx  context.Context
	ctrl *session.Controller

	form      form.Model
	confirm   confirm.Model
	help      help.Model
	showHelp  bool
	onConfirm bool

	width  int
	height int

	configPath string

	// Config watcher for live theme reloads
	watcherHandle *watcher.Watcher
	changes       <-chan struct{}
}

// New creates the application model. The config must already be
// validated; an invalid country directory is returned as an error.
func New(ctx context.Context, opts Options) (Model, error) {
	cfg := opts.Config
	dir, err := cfg.Directory()
	if err != nil {
		return Model{}, err
	}

	ctrl := session.NewController(
		session.Options{
			Directory:      dir,
			DialCode:       cfg.Form.DefaultCountryCode,
			RevealPassword: cfg.Form.RevealPassword,
		},
		session.WithTracer(opts.Tracer),
		session.WithIDGenerator(opts.IDGenerator),
	)

	m := Model{
		ctx:        ctx,
		ctrl:       ctrl,
		form:       form.New(ctx, ctrl, cfg.UI.Width),
		help:       help.New(keys.FormHelp{}, cfg.UI.MarkdownStyle),
		configPath: opts.ConfigPath,
	}

	if cfg.UI.WatchConfig && opts.ConfigPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(opts.ConfigPath))
		if err == nil {
			if ch, err := w.Start(); err == nil {
				m.watcherHandle = w
				m.changes = ch
			} else {
				_ = w.Stop()
				log.ErrorErr(log.CatWatcher, "config watcher start failed", err)
			}
		} else {
			log.ErrorErr(log.CatWatcher, "config watcher init failed", err)
		}
	}

	return m, nil
}

// StylesTheme converts the config theme section for styles.ApplyTheme.
func StylesTheme(t config.ThemeConfig) styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: t.Preset,
		Mode:   t.Mode,
		Colors: t.FlattenedColors(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.listen())
}

// listen waits for the next config change signal.
func (m Model) listen() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ConfigChangedMsg{}
	}
}

// reloadTheme re-reads the theme section off the update loop.
func (m Model) reloadTheme() tea.Cmd {
	path := m.configPath
	return func() tea.Msg {
		theme, err := config.ReadTheme(path)
		return themeReloadedMsg{theme: theme, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form = m.form.SetSize(msg.Width, msg.Height)
		m.confirm = m.confirm.SetSize(msg.Width, msg.Height)
		m.help = m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case ConfigChangedMsg:
		log.Debug(log.CatConfig, "config changed", "path", m.configPath)
		return m, tea.Batch(m.reloadTheme(), m.listen())

	case themeReloadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "theme reload failed", msg.err)
			return m, nil
		}
		if err := styles.ApplyTheme(StylesTheme(msg.theme)); err != nil {
			log.ErrorErr(log.CatConfig, "theme apply failed", err, "preset", msg.theme.Preset)
			return m, nil
		}
		log.Info(log.CatConfig, "theme reloaded", "preset", msg.theme.Preset)
		m.form = m.form.Refresh()
		return m, nil

	case form.SubmittedMsg:
		// Already switched when the submit was routed; kept for
		// submits that reach the session some other way.
		if !m.onConfirm {
			m = m.enterConfirm()
		}
		return m, nil

	case confirm.BackMsg:
		m.ctrl.Dispatch(m.ctx, session.Back{})
		m.onConfirm = false
		m.form = m.form.Reset()
		m.help = m.help.SetKeyMap(keys.FormHelp{})
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Common.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Common.Help) {
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			if key.Matches(msg, keys.Common.Escape) {
				m.showHelp = false
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.ctrl.State().Mode == session.Submitted {
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
	m.form, cmd = m.form.Update(msg)
	if m.ctrl.State().Mode == session.Submitted {
		m = m.enterConfirm()
	}
	return m, cmd
}

// enterConfirm builds the summary from the submitted values so the very
// next frame shows them.
func (m Model) enterConfirm() Model {
	m.confirm = confirm.New(m.ctrl.State().Values).SetSize(m.width, m.height)
	m.help = m.help.SetKeyMap(keys.ConfirmHelp{})
	m.onConfirm = true
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var view string
	if m.ctrl.State().Mode == session.Submitted {
		view = m.confirm.View()
	} else {
		view = m.form.View()
	}

	if m.showHelp {
		view = m.help.Overlay(view)
	}
	return zone.Scan(view)
}

// Session returns the live session state.
func (m Model) Session() session.State {
	return m.ctrl.State()
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
		m.watcherHandle = nil
	}
	return nil
}
