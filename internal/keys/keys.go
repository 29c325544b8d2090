// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeys are active on every screen.
type CommonKeys struct {
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// FormKeys drive the registration form.
type FormKeys struct {
	Next           key.Binding
	Prev           key.Binding
	Up             key.Binding
	Down           key.Binding
	Left           key.Binding
	Right          key.Binding
	Enter          key.Binding
	Submit         key.Binding
	TogglePassword key.Binding
}

// ConfirmKeys drive the confirmation view.
type ConfirmKeys struct {
	Back key.Binding
}

// Common holds bindings shared by every view.
var Common = CommonKeys{
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "toggle help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Form holds the registration form bindings.
var Form = FormKeys{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous field"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous option"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next option"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "next / press button"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
	TogglePassword: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "show/hide password"),
	),
}

// Confirm holds the confirmation view bindings.
var Confirm = ConfirmKeys{
	Back: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc", "go back"),
	),
}

// FormHelp adapts the form bindings to bubbles/help.KeyMap.
type FormHelp struct{}

// ShortHelp returns the footer bindings.
func (FormHelp) ShortHelp() []key.Binding {
	return []key.Binding{Form.Next, Form.Submit, Form.TogglePassword, Common.Help, Common.Quit}
}

// FullHelp returns every form binding grouped by column.
func (FormHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{Form.Next, Form.Prev, Form.Up, Form.Down},
		{Form.Left, Form.Right, Form.Enter},
		{Form.Submit, Form.TogglePassword, Common.Help, Common.Quit},
	}
}

// ConfirmHelp adapts the confirmation bindings to bubbles/help.KeyMap.
type ConfirmHelp struct{}

// ShortHelp returns the footer bindings.
func (ConfirmHelp) ShortHelp() []key.Binding {
	return []key.Binding{Confirm.Back, Common.Help, Common.Quit}
}

// FullHelp returns every confirmation binding.
func (ConfirmHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{Confirm.Back}, {Common.Help, Common.Quit}}
}
