// Package confirm renders the read-only summary shown after a successful
// submit.
package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const (
	Title       = "Submission Successful!"
	Description = "Here are the details you provided:"
	BackLabel   = "Go Back"

	zoneBackButton = "signup-confirm-back"
)

// BackMsg is sent when the user asks to return to a blank form.
type BackMsg struct{}

// Model is the confirmation view.
type Model struct {
	lines []registration.SummaryLine
	width int
	help  help.Model
}

// New builds the view from the submitted values.
func New(values registration.Values) Model {
	return Model{
		lines: registration.Summary(values),
		help:  help.New(),
	}
}

// SetSize records the available width.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.help.Width = width
	return m
}

// Update handles messages for the confirmation view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Confirm.Back) {
			return m, back
		}
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			if z := zone.Get(zoneBackButton); z != nil && z.InBounds(msg) {
				return m, back
			}
		}
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	}
	return m, nil
}

func back() tea.Msg { return BackMsg{} }

// View renders the summary.
func (m Model) View() string {
	labelWidth := 0
	for _, l := range m.lines {
		labelWidth = max(labelWidth, runewidth.StringWidth(l.Label)+1)
	}

	var b strings.Builder
	b.WriteString(styles.SuccessTitleStyle.Render(Title))
	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle.Render(Description))
	b.WriteString("\n\n")

	for _, l := range m.lines {
		label := runewidth.FillRight(l.Label+":", labelWidth)
		row := styles.SummaryLabelStyle.Render(label) + "  " + styles.ValueStyle.Render(l.Value)
		if m.width > 0 {
			row = lipgloss.NewStyle().MaxWidth(m.width).Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(zone.Mark(zoneBackButton, styles.PrimaryButtonFocusedStyle.Render(BackLabel)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys.ConfirmHelp{}))
	return b.String()
}
