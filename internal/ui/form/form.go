// Package form implements the registration form view.
//
// The form owns only widget state (text inputs, focus, scrolling). Field
// values, errors and the dirty flag live in the session.Controller; every
// edit, blur and submit is dispatched there and the inputs are re-synced
// from the resulting state.
package form

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/session"
)

// SubmittedMsg is sent after a submit moved the session to Submitted.
type SubmittedMsg struct{}

// Title is the heading of the form view.
const Title = "Register Your Account"

// Model is the registration form state.
type Model struct {
	ctx  context.Context
	ctrl *session.Controller

	fields       []fieldState
	focusedIndex int // index into fields; len(fields) is the submit button

	width, height int
	formWidth     int

	bodyViewport viewport.Model
	slotOffsets  []int
	help         help.Model
}

// New creates a form bound to ctrl. formWidth is the preferred width in
// cells; the terminal width caps it once known.
func New(ctx context.Context, ctrl *session.Controller, formWidth int) Model {
	m := Model{
		ctx:          ctx,
		ctrl:         ctrl,
		formWidth:    formWidth,
		bodyViewport: viewport.New(0, 0),
		help:         help.New(),
	}
	for _, f := range registration.Fields() {
		m.fields = append(m.fields, newFieldState(f))
	}
	m.syncFromState()
	m.focusIndex(0)
	m.layout(true)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize records the terminal dimensions and re-lays out the body.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.layout(true)
	return m
}

// Reset returns the form to its first field after the controller started a
// fresh session.
func (m Model) Reset() Model {
	m.syncFromState()
	m.focusIndex(0)
	m.bodyViewport.GotoTop()
	m.layout(true)
	return m
}

// Refresh re-renders the body, picking up theme changes.
func (m Model) Refresh() Model {
	m.layout(false)
	return m
}

// Focused returns the focused field, or "" when the submit button has focus.
func (m Model) Focused() registration.Field {
	if m.focusedIndex >= 0 && m.focusedIndex < len(m.fields) {
		return m.fields[m.focusedIndex].field
	}
	return ""
}

// SubmitFocused reports whether the submit button has focus.
func (m Model) SubmitFocused() bool {
	return m.focusedIndex == len(m.fields)
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			if z := zone.Get(zoneSubmitButton); z != nil && z.InBounds(msg) {
				return m.submit()
			}
			for i, fs := range m.fields {
				if z := zone.Get(fieldZoneID(fs.field)); z != nil && z.InBounds(msg) {
					if isDisabled(m.ctrl.State(), fs.field) {
						return m, nil
					}
					cmd := m.moveFocus(i)
					return m, cmd
				}
			}
		}
		var cmd tea.Cmd
		m.bodyViewport, cmd = m.bodyViewport.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	}

	// Cursor blink and other input-internal messages.
	if fs := m.focusedField(); fs != nil && fs.kind == FieldKindText {
		var cmd tea.Cmd
		fs.textInput, cmd = fs.textInput.Update(msg)
		m.layout(false)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Submit):
		return m.submit()

	case key.Matches(msg, keys.Form.TogglePassword):
		m.ctrl.Dispatch(m.ctx, session.TogglePassword{})
		m.syncFromState()
		m.layout(false)
		return m, nil

	case key.Matches(msg, keys.Form.Next), key.Matches(msg, keys.Form.Down):
		return m, m.step(1)

	case key.Matches(msg, keys.Form.Prev), key.Matches(msg, keys.Form.Up):
		return m, m.step(-1)

	case key.Matches(msg, keys.Form.Enter):
		if m.SubmitFocused() {
			return m.submit()
		}
		return m, m.step(1)

	case key.Matches(msg, keys.Form.Left), key.Matches(msg, keys.Form.Right):
		if fs := m.focusedField(); fs != nil && fs.kind == FieldKindSelect {
			delta := 1
			if key.Matches(msg, keys.Form.Left) {
				delta = -1
			}
			m.cycleSelect(fs.field, delta)
			return m, nil
		}
	}

	fs := m.focusedField()
	if fs == nil || fs.kind != FieldKindText {
		return m, nil
	}
	var cmd tea.Cmd
	fs.textInput, cmd = fs.textInput.Update(msg)
	if v := fs.textInput.Value(); v != m.ctrl.State().Values[fs.field] {
		m.ctrl.Dispatch(m.ctx, session.Change{Field: fs.field, Value: v})
		m.syncFromState()
	}
	m.layout(false)
	return m, cmd
}

// submit dispatches a submit when the button is enabled.
func (m Model) submit() (Model, tea.Cmd) {
	if !session.CanSubmit(m.ctrl.State()) {
		log.Debug(log.CatUI, "submit ignored, button disabled")
		return m, nil
	}
	st := m.ctrl.Dispatch(m.ctx, session.Submit{})
	m.syncFromState()
	m.layout(false)
	if st.Mode == session.Submitted {
		return m, func() tea.Msg { return SubmittedMsg{} }
	}
	return m, nil
}

func (m *Model) cycleSelect(f registration.Field, delta int) {
	st := m.ctrl.State()
	next := cycleOption(selectOptions(st, f), st.Values[f], delta)
	if next == st.Values[f] {
		return
	}
	m.ctrl.Dispatch(m.ctx, session.Change{Field: f, Value: next})
	m.syncFromState()
	m.layout(false)
}

// step moves focus by delta slots, skipping disabled fields and wrapping
// around the submit button.
func (m *Model) step(delta int) tea.Cmd {
	n := len(m.fields) + 1
	st := m.ctrl.State()
	next := m.focusedIndex
	for range n {
		next = ((next+delta)%n + n) % n
		if next == len(m.fields) || !isDisabled(st, m.fields[next].field) {
			break
		}
	}
	return m.moveFocus(next)
}

// moveFocus blurs the current slot, dispatching a Blur for a field, and
// focuses index.
func (m *Model) moveFocus(index int) tea.Cmd {
	if index == m.focusedIndex {
		return nil
	}
	if fs := m.focusedField(); fs != nil {
		m.ctrl.Dispatch(m.ctx, session.Blur{Field: fs.field})
	}
	cmd := m.focusIndex(index)
	m.syncFromState()
	m.layout(true)
	return cmd
}

func (m *Model) focusIndex(index int) tea.Cmd {
	for i := range m.fields {
		if m.fields[i].kind == FieldKindText {
			m.fields[i].textInput.Blur()
		}
	}
	m.focusedIndex = index
	if fs := m.focusedField(); fs != nil && fs.kind == FieldKindText {
		return fs.textInput.Focus()
	}
	return nil
}

func (m *Model) focusedField() *fieldState {
	if m.focusedIndex >= 0 && m.focusedIndex < len(m.fields) {
		return &m.fields[m.focusedIndex]
	}
	return nil
}

// syncFromState copies controller values into the inputs that differ and
// applies password visibility.
func (m *Model) syncFromState() {
	st := m.ctrl.State()
	for i := range m.fields {
		fs := &m.fields[i]
		if fs.kind != FieldKindText {
			continue
		}
		if fs.textInput.Value() != st.Values[fs.field] {
			fs.textInput.SetValue(st.Values[fs.field])
		}
		if fs.field == registration.Password {
			if st.ShowPassword {
				fs.textInput.EchoMode = textinput.EchoNormal
			} else {
				fs.textInput.EchoMode = textinput.EchoPassword
			}
		}
	}
}
