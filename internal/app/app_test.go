package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/session"
	"github.com/zjrosen/signup/internal/ui/confirm"
	"github.com/zjrosen/signup/internal/ui/form"
	"github.com/zjrosen/signup/internal/ui/help"
	"github.com/zjrosen/signup/internal/ui/styles"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// createTestModel builds a Model without a config watcher.
func createTestModel(t *testing.T, configPath string) Model {
	t.Helper()
	cfg := config.Defaults()
	cfg.UI.WatchConfig = false
	cfg.UI.MarkdownStyle = "notty"

	n := 0
	m, err := New(context.Background(), Options{
		Config:     cfg,
		ConfigPath: configPath,
		IDGenerator: func() string {
			n++
			return fmt.Sprintf("session-%d", n)
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return updated.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// fillValid sets every field directly on the controller.
func fillValid(m Model) {
	ctx := context.Background()
	values := []session.Change{
		{Field: registration.FirstName, Value: "Ada"},
		{Field: registration.LastName, Value: "Lovelace"},
		{Field: registration.Username, Value: "ada"},
		{Field: registration.Email, Value: "ada@example.com"},
		{Field: registration.Password, Value: "Abcdefg1!"},
		{Field: registration.PhoneNumber, Value: "9876543210"},
		{Field: registration.Country, Value: "India"},
		{Field: registration.City, Value: "Mumbai"},
		{Field: registration.PanNo, Value: "ABCDE1234F"},
		{Field: registration.AadharNo, Value: "123456789012"},
	}
	for _, ch := range values {
		m.ctrl.Dispatch(ctx, ch)
	}
}

func TestApp_StartsOnForm(t *testing.T) {
	m := createTestModel(t, "")

	view := ansi.Strip(m.View())
	assert.Contains(t, view, form.Title)
	assert.Equal(t, session.Editing, m.Session().Mode)
	assert.Equal(t, "session-1", m.Session().ID)
}

func TestApp_RejectsInvalidDirectory(t *testing.T) {
	cfg := config.Defaults()
	cfg.Form.Countries = []config.CountryConfig{{Name: "Nowhere"}}

	_, err := New(context.Background(), Options{Config: cfg})
	require.Error(t, err)
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := createTestModel(t, "")

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_F1TogglesHelp(t *testing.T) {
	m := createTestModel(t, "")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	require.True(t, m.showHelp)
	assert.Contains(t, ansi.Strip(m.View()), help.Title)

	// Keys other than esc and f1 are swallowed while help is open.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, m.Session().Values[registration.FirstName])

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.False(t, m.showHelp)
}

func TestApp_SubmitShowsConfirmationAndBackResets(t *testing.T) {
	m := createTestModel(t, "")
	fillValid(m)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, form.SubmittedMsg{}, msg)
	m, _ = update(t, m, msg)

	require.Equal(t, session.Submitted, m.Session().Mode)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, confirm.Title)
	assert.Contains(t, view, registration.PasswordMask)
	assert.NotContains(t, view, "Abcdefg1!")
	assert.Contains(t, view, "Mumbai")

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	st := m.Session()
	assert.Equal(t, session.Editing, st.Mode)
	assert.Equal(t, "session-2", st.ID)
	assert.False(t, st.Dirty)
	assert.Empty(t, st.Values[registration.FirstName])
	assert.Contains(t, ansi.Strip(m.View()), form.Title)
}

func TestApp_ThemeReload(t *testing.T) {
	t.Cleanup(func() { _ = styles.ApplyTheme(styles.ThemeConfig{}) })

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  preset: nord\n"), 0o644))

	m := createTestModel(t, path)
	msg := m.reloadTheme()()
	require.IsType(t, themeReloadedMsg{}, msg)

	_, _ = update(t, m, msg)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#BF616A", Dark: "#BF616A"}, styles.StatusErrorColor)
}

func TestApp_ThemeReloadErrorKeepsTheme(t *testing.T) {
	before := styles.StatusErrorColor
	m := createTestModel(t, filepath.Join(t.TempDir(), "missing.yaml"))

	msg := m.reloadTheme()()
	reloaded, ok := msg.(themeReloadedMsg)
	require.True(t, ok)
	require.Error(t, reloaded.err)

	_, cmd := update(t, m, msg)
	assert.Nil(t, cmd)
	assert.Equal(t, before, styles.StatusErrorColor)
}

func TestApp_WatcherSignalsConfigChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: {}\n"), 0o644))

	cfg := config.Defaults()
	m, err := New(context.Background(), Options{Config: cfg, ConfigPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	require.NotNil(t, m.watcherHandle)

	got := make(chan tea.Msg, 1)
	go func() { got <- m.listen()() }()

	require.NoError(t, os.WriteFile(path, []byte("theme:\n  preset: dracula\n"), 0o644))
	select {
	case msg := <-got:
		assert.IsType(t, ConfigChangedMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no ConfigChangedMsg after config write")
	}
}

func TestApp_Program(t *testing.T) {
	m := createTestModel(t, "")
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 60))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), form.Title)
	}, teatest.WithDuration(3*time.Second))

	tm.Type("Ada")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	st := final.Session()
	assert.Equal(t, "Ada", st.Values[registration.FirstName])
	assert.True(t, st.Dirty)
	assert.Equal(t, "This field is required.", st.Errors[registration.LastName])
}

func TestApp_SummaryRendersInFrameAfterSubmit(t *testing.T) {
	m := createTestModel(t, "")
	fillValid(m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	// No SubmittedMsg delivered yet.
	require.Equal(t, session.Submitted, m.Session().Mode)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, confirm.Title)
	assert.Contains(t, view, "Lovelace")
	assert.Contains(t, view, "Mumbai")
	assert.Contains(t, view, registration.PasswordMask)
}

func TestApp_SecondSubmitShowsNewValues(t *testing.T) {
	m := createTestModel(t, "")
	fillValid(m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Equal(t, session.Editing, m.Session().Mode)

	fillValid(m)
	m.ctrl.Dispatch(context.Background(), session.Change{Field: registration.LastName, Value: "Byron"})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Byron")
	assert.NotContains(t, view, "Lovelace")
}
