// Package help contains the help overlay component.
//
// The overlay lists the active key bindings and the field rules as
// markdown rendered by glamour. When glamour cannot render, it falls back
// to the bubbles help full view of the same bindings.
package help

import (
	"context"
	"fmt"
	"strings"

	bubbleshelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/ui/markdown"
	"github.com/zjrosen/signup/internal/ui/overlay"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// Title heads the overlay.
const Title = "Keyboard Shortcuts"

// maxContentWidth caps the rendered markdown width.
const maxContentWidth = 60

var (
	titleStyle   lipgloss.Style
	dividerStyle lipgloss.Style
	boxStyle     lipgloss.Style
	footerStyle  lipgloss.Style
)

func init() {
	rebuildStyles()
	styles.RegisterStyleRebuilder(rebuildStyles)
}

func rebuildStyles() {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor)

	boxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor)

	footerStyle = lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		PaddingLeft(2).
		MarginTop(1)
}

// fieldRules is appended after the key table.
const fieldRules = `## Field rules

- **Password**: 8+ characters with an uppercase letter, a lowercase letter, a number and one of ` + "`!@#$%^&*`" + `
- **Phone number**: exactly 10 digits
- **PAN No.**: five capitals, four digits, one capital (` + "`ABCDE1234F`" + `)
- **Aadhar No.**: exactly 12 digits
- **City** unlocks once a country is chosen
`

// Model holds the help view state.
type Model struct {
	keyMap   bubbleshelp.KeyMap
	style    string
	fallback bubbleshelp.Model
	width    int
	height   int
}

// New creates a help view for keyMap. style is the glamour style name.
func New(keyMap bubbleshelp.KeyMap, style string) Model {
	return Model{
		keyMap:   keyMap,
		style:    style,
		fallback: bubbleshelp.New(),
	}
}

// SetKeyMap swaps the bindings shown, e.g. when the active view changes.
func (m Model) SetKeyMap(keyMap bubbleshelp.KeyMap) Model {
	m.keyMap = keyMap
	return m
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Markdown returns the overlay body as markdown.
func (m Model) Markdown() string {
	var b strings.Builder
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, col := range m.keyMap.FullHelp() {
		for _, binding := range col {
			h := binding.Help()
			if h.Key == "" {
				continue
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n")
	b.WriteString(fieldRules)
	return b.String()
}

func (m Model) contentWidth() int {
	w := maxContentWidth
	if m.width > 0 {
		w = min(w, m.width-6)
	}
	return max(w, 20)
}

// renderBody renders the markdown, falling back to the bubbles full help.
func (m Model) renderBody() string {
	width := m.contentWidth()
	out, err := markdown.RenderCached(context.Background(), width, m.style, m.Markdown())
	if err == nil {
		return strings.TrimRight(out, "\n")
	}
	log.ErrorErr(log.CatUI, "help markdown render failed", err, "style", m.style)

	fb := m.fallback
	fb.Width = width
	fb.ShowAll = true
	return lipgloss.NewStyle().PaddingLeft(2).Render(fb.View(m.keyMap))
}

func (m Model) renderContent() string {
	body := m.renderBody()
	width := max(lipgloss.Width(body), lipgloss.Width(Title)+2)

	var b strings.Builder
	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("f1 or esc to close"))
	return boxStyle.Render(b.String())
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderContent()
	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Center(m.width, m.height, box, background)
}
