package styles

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TruncateString shortens s to at most maxWidth cells, ending in "..." when
// anything was cut. Grapheme clusters are never split, so emoji and
// combining marks survive intact.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	budget := maxWidth - 3
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > budget {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String() + "..."
}
