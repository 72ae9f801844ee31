// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	filtersOnce sync.Once
	ugcPolicy   *bluemonday.Policy
)

var markdown = goldmark.New()

// registerFilters adds the site's filters to pongo2's global registry.
// pongo2 filters are process-wide, so this runs once.
func registerFilters() {
	filtersOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
		if !pongo2.FilterExists("sanitize") {
			_ = pongo2.RegisterFilter("sanitize", filterSanitize)
		}
		if !pongo2.FilterExists("markdown") {
			_ = pongo2.RegisterFilter("markdown", filterMarkdown)
		}
	})
}

// filterSanitize strips unsafe markup from user-supplied HTML, e.g. a
// banner snippet: {{ banner|sanitize }}.
func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsSafeValue(""), nil
	}
	return pongo2.AsSafeValue(ugcPolicy.Sanitize(in.String())), nil
}

// filterMarkdown renders a short Markdown string to HTML. A lone paragraph
// is unwrapped so the result can sit inside a heading or link.
func filterMarkdown(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsSafeValue(""), nil
	}
	html, err := renderMarkdown(in.String())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:markdown", OrigError: err}
	}
	return pongo2.AsSafeValue(html), nil
}

func renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}
