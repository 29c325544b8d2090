// Package markdown provides styled markdown rendering for the TUI.
package markdown

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/zjrosen/signup/internal/cachemanager"
)

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour TermRenderer at a fixed width.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given width and style.
// style is a glamour standard style name ("dark", "light", "notty");
// empty means "dark". A named style is used instead of WithAutoStyle so
// the renderer never queries the terminal for its background.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(md string) (string, error) {
	return r.renderer.Render(md)
}

type renderInput struct {
	width int
	style string
	md    string
}

var renderCache = cachemanager.NewReadThroughCache[string, string, renderInput](
	cachemanager.NewInMemoryCacheManager[string, string]("markdown", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
	func(_ context.Context, in renderInput) (string, error) {
		r, err := New(in.width, in.style)
		if err != nil {
			return "", err
		}
		return r.Render(in.md)
	},
	cachemanager.DefaultExpiration,
)

// RenderCached renders md at width with style, reusing earlier output for
// the same inputs. Building a glamour renderer is slow enough to be felt
// when the help overlay redraws on every keypress.
func RenderCached(ctx context.Context, width int, style, md string) (string, error) {
	key := fmt.Sprintf("%s|%d|%s", style, width, md)
	return renderCache.Get(ctx, key, renderInput{width: width, style: style, md: md})
}
