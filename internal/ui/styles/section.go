package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rounded border pieces used by RenderFormSection.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderFormSection renders content inside a rounded border with the title
// and optional hint inlined in the top edge: ╭─ Title (hint) ───╮
// Rows wider than the section are truncated so the right edge stays aligned.
func RenderFormSection(content []string, title, hint string, width int, focused bool, focusedBorderColor lipgloss.TerminalColor) string {
	var borderColor lipgloss.TerminalColor = FormTextInputBorderColor
	var titleColor lipgloss.TerminalColor = FormTextInputLabelColor
	if focused {
		borderColor = focusedBorderColor
		titleColor = FormTextInputFocusedLabelColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor)

	innerWidth := max(width-2, 1)

	var top strings.Builder
	if title == "" {
		top.WriteString(borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight))
	} else {
		heading := title
		if hint != "" {
			heading += " (" + hint + ")"
		}
		// "─ " before the heading and " " after it.
		avail := max(innerWidth-3, 1)
		var styled string
		if lipgloss.Width(heading) <= avail {
			styled = titleStyle.Render(title)
			if hint != "" {
				styled += " " + HintStyle.Render("("+hint+")")
			}
		} else {
			heading = TruncateString(heading, avail)
			styled = titleStyle.Render(heading)
		}
		dashes := max(innerWidth-lipgloss.Width(heading)-3, 0)

		top.WriteString(borderStyle.Render(borderTopLeft + borderHorizontal + " "))
		top.WriteString(styled)
		top.WriteString(borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashes) + borderTopRight))
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top.String())
	for _, row := range content {
		row = ansi.Truncate(row, innerWidth, "")
		pad := max(innerWidth-lipgloss.Width(row), 0)
		lines = append(lines, borderStyle.Render(borderVertical)+row+strings.Repeat(" ", pad)+borderStyle.Render(borderVertical))
	}
	lines = append(lines, borderStyle.Render(borderBottomLeft+strings.Repeat(borderHorizontal, innerWidth)+borderBottomRight))

	return strings.Join(lines, "\n")
}
