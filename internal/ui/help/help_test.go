package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/keys"
)

func TestMarkdown_ListsEveryBinding(t *testing.T) {
	md := New(keys.FormHelp{}, "notty").Markdown()

	for _, col := range (keys.FormHelp{}).FullHelp() {
		for _, b := range col {
			assert.Contains(t, md, "`"+b.Help().Key+"`")
			assert.Contains(t, md, b.Help().Desc)
		}
	}
	assert.Contains(t, md, "## Field rules")
}

func TestSetKeyMap_SwitchesBindings(t *testing.T) {
	m := New(keys.FormHelp{}, "notty").SetKeyMap(keys.ConfirmHelp{})
	md := m.Markdown()

	assert.Contains(t, md, "go back")
	assert.NotContains(t, md, "show/hide password")
}

func TestSetSize_ReturnsCopy(t *testing.T) {
	m := New(keys.FormHelp{}, "notty").SetSize(120, 40)
	m2 := m.SetSize(80, 24)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 80, m2.width)
	assert.Equal(t, 24, m2.height)
}

func TestView_RendersMarkdown(t *testing.T) {
	m := New(keys.FormHelp{}, "notty").SetSize(100, 40)
	view := ansi.Strip(m.View())

	require.Contains(t, view, Title)
	require.Contains(t, view, "ctrl+s")
	require.Contains(t, view, "submit")
	require.Contains(t, view, "Field rules")
	require.Contains(t, view, "f1 or esc to close")
}

func TestView_FallsBackWhenStyleMissing(t *testing.T) {
	m := New(keys.FormHelp{}, "/no/such/style.json").SetSize(100, 40)
	view := ansi.Strip(m.View())

	require.Contains(t, view, Title)
	require.Contains(t, view, "ctrl+s")
	require.NotContains(t, view, "Field rules", "fallback shows bindings only")
}

func TestOverlay_KeepsBackgroundOutsideBox(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 100)+"\n", 40), "\n")
	m := New(keys.ConfirmHelp{}, "notty").SetSize(100, 40)

	out := ansi.Strip(m.Overlay(bg))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 40)
	require.Equal(t, strings.Repeat(".", 100), lines[0])
	require.Contains(t, out, Title)
}

func TestView_Stable(t *testing.T) {
	m := New(keys.FormHelp{}, "notty").SetSize(80, 24)
	assert.Equal(t, m.View(), m.View())
}
