package styles

import (
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Delhi", 10, "Delhi"},
		{"exact", "Delhi", 5, "Delhi"},
		{"cut", "Los Angeles", 8, "Los A..."},
		{"tiny width", "Manchester", 2, ".."},
		{"zero width", "Manchester", 0, ""},
		{"wide runes", "日本語テキスト", 7, "日本..."},
		{"keeps graphemes whole", "👍🏽👍🏽👍🏽", 5, "👍🏽..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TruncateString(tt.in, tt.width))
		})
	}
}

func TestTruncateString_NeverExceedsWidth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		w := rapid.IntRange(0, 40).Draw(rt, "width")
		require.LessOrEqual(rt, uniseg.StringWidth(TruncateString(s, w)), w)
	})
}
