package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/session"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const (
	zoneSubmitButton = "signup-submit"
	zoneFieldPrefix  = "signup-field-"

	// chromeHeight is the title, its gap, and the gap plus help line below
	// the body.
	chromeHeight = 4
)

func fieldZoneID(f registration.Field) string {
	return zoneFieldPrefix + string(f)
}

// View renders the form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(Title))
	b.WriteString("\n\n")
	if m.height > 0 {
		b.WriteString(m.bodyViewport.View())
	} else {
		body, _ := m.renderBody()
		b.WriteString(body)
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys.FormHelp{}))
	return b.String()
}

// contentWidth is the form width after capping to the terminal.
func (m Model) contentWidth() int {
	w := m.formWidth
	if w <= 0 {
		w = config.Defaults().UI.Width
	}
	if m.width > 0 && m.width < w {
		w = m.width
	}
	return max(w, config.MinWidth)
}

// layout re-renders the body into the viewport. With ensureFocus the
// viewport scrolls so the focused slot is visible.
func (m *Model) layout(ensureFocus bool) {
	width := m.contentWidth()
	m.help.Width = width
	for i := range m.fields {
		if m.fields[i].kind == FieldKindText {
			m.fields[i].textInput.Width = max(m.columnWidth(m.fields[i].field, width)-3, 1)
		}
	}

	body, offsets := m.renderBody()
	m.slotOffsets = offsets
	m.bodyViewport.Width = width
	m.bodyViewport.Height = max(m.height-chromeHeight, 3)
	m.bodyViewport.SetContent(body)

	if !ensureFocus || m.focusedIndex >= len(offsets) {
		return
	}
	top := offsets[m.focusedIndex]
	bottom := lipgloss.Height(body)
	if m.focusedIndex+1 < len(offsets) {
		bottom = offsets[m.focusedIndex+1]
	}
	switch {
	case top < m.bodyViewport.YOffset:
		m.bodyViewport.SetYOffset(top)
	case bottom > m.bodyViewport.YOffset+m.bodyViewport.Height:
		m.bodyViewport.SetYOffset(bottom - m.bodyViewport.Height)
	}
}

// columnWidth is the section width a field is drawn at.
func (m Model) columnWidth(f registration.Field, width int) int {
	for _, row := range layoutRows {
		for i, rf := range row {
			if rf != f {
				continue
			}
			if len(row) == 1 {
				return width
			}
			left := (width - 1) / 2
			if row[0] == registration.PhoneCountryCode {
				left = dialCodeWidth
			}
			if i == 0 {
				return left
			}
			return width - 1 - left
		}
	}
	return width
}

// renderBody draws every row and the submit button. offsets holds the first
// line of each focus slot in field order, followed by the submit button.
func (m Model) renderBody() (string, []int) {
	st := m.ctrl.State()
	width := m.contentWidth()

	offsets := make([]int, 0, len(m.fields)+1)
	var rows []string
	line := 0
	for _, row := range layoutRows {
		cols := make([]string, 0, len(row))
		for i, f := range row {
			if i > 0 {
				cols = append(cols, " ")
			}
			cols = append(cols, m.renderColumn(st, f, m.columnWidth(f, width)))
			offsets = append(offsets, line)
		}
		rendered := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
		rows = append(rows, rendered)
		line += lipgloss.Height(rendered)
	}
	offsets = append(offsets, line)
	rows = append(rows, m.renderSubmitButton(st))

	return strings.Join(rows, "\n"), offsets
}

// renderColumn draws one field section with its inline error below it.
func (m Model) renderColumn(st session.State, f registration.Field, width int) string {
	fs := m.stateFor(f)
	focused := m.Focused() == f
	disabled := isDisabled(st, f)

	var row string
	switch fs.kind {
	case FieldKindText:
		row = " " + fs.textInput.View()
	case FieldKindSelect:
		row = " " + renderSelect(f, st.Values[f], focused, disabled)
	}

	hint := ""
	switch {
	case f == registration.Password && st.ShowPassword:
		hint = "ctrl+r hide"
	case f == registration.Password:
		hint = "ctrl+r show"
	case disabled:
		hint = "choose a country"
	}

	section := styles.RenderFormSection([]string{row}, fieldLabels[f], hint, width, focused, styles.BorderFocusColor)
	section = zone.Mark(fieldZoneID(f), section)

	lines := []string{section}
	if msg := st.Errors[f]; msg != "" {
		wrapped := wordwrap.String(msg, max(width-1, 1))
		for _, l := range strings.Split(wrapped, "\n") {
			lines = append(lines, " "+styles.ErrorTextStyle.Render(l))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func renderSelect(f registration.Field, value string, focused, disabled bool) string {
	label := optionLabel(f, value)
	if disabled {
		return styles.PlaceholderStyle.Render(label)
	}
	text := styles.ValueStyle.Render(label)
	if value == "" {
		text = styles.PlaceholderStyle.Render(label)
	}
	if !focused {
		return text
	}
	return styles.SelectionIndicatorStyle.Render("‹") + " " + text + " " + styles.SelectionIndicatorStyle.Render("›")
}

func (m Model) renderSubmitButton(st session.State) string {
	style := styles.PrimaryButtonStyle
	switch {
	case !session.CanSubmit(st):
		style = styles.DisabledButtonStyle
	case m.SubmitFocused():
		style = styles.PrimaryButtonFocusedStyle
	}
	btn := zone.Mark(zoneSubmitButton, style.Render("Submit"))
	if m.SubmitFocused() {
		btn = styles.SelectionIndicatorStyle.Render(">") + " " + btn
	} else {
		btn = "  " + btn
	}
	return btn
}

func (m Model) stateFor(f registration.Field) *fieldState {
	for i := range m.fields {
		if m.fields[i].field == f {
			return &m.fields[i]
		}
	}
	return nil
}
