// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render renders navigation pages through a Jinja-style template.
// Templates are pongo2 templates loaded from the directory holding the page
// template, so includes and extends resolve next to it. Block tags trim their
// trailing newline and leading indentation.
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/Slowist-Lee/navigation/pkg/types"
)

// Template variable names supplied for every page.
const (
	VarCurrentPage = "current_page"
	VarColumn1     = "content_col1"
	VarColumn2     = "content_col2"
)

// Option configures an Engine before the template is loaded.
type Option func(*config)

type config struct {
	autoescape bool
	globals    map[string]any
}

// WithAutoescape toggles HTML autoescaping of {{ }} output. It is off by
// default so global values may carry raw markup. pongo2 keeps this setting
// process-wide.
func WithAutoescape(on bool) Option {
	return func(cfg *config) {
		cfg.autoescape = on
	}
}

// WithGlobals seeds values visible to every render.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for k, v := range data {
			cfg.globals[strings.TrimSpace(k)] = v
		}
	}
}

// Engine holds one loaded page template.
type Engine struct {
	set  *pongo2.TemplateSet
	tpl  *pongo2.Template
	path string
}

// New loads the template at path.
func New(path string, options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if strings.TrimSpace(path) == "" {
		return nil, errors.New("render: template path required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("render: resolving %s: %w", path, err)
	}

	loader, err := pongo2.NewLocalFileSystemLoader(filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("render: create loader: %w", err)
	}

	set := pongo2.NewSet("navigation", loader)
	set.Options.TrimBlocks = true
	set.Options.LStripBlocks = true
	if set.Globals == nil {
		set.Globals = make(pongo2.Context)
	}
	if len(cfg.globals) > 0 {
		set.Globals.Update(pongo2.Context(cfg.globals))
	}

	pongo2.SetAutoescape(cfg.autoescape)
	registerFilters()

	tpl, err := set.FromFile(filepath.Base(abs))
	if err != nil {
		return nil, fmt.Errorf("render: load template %s: %w", path, err)
	}

	return &Engine{set: set, tpl: tpl, path: path}, nil
}

// Path returns the template path the engine was created with.
func (e *Engine) Path() string {
	return e.path
}

// Render executes the template with ctx and writes the result to w.
func (e *Engine) Render(ctx pongo2.Context, w io.Writer) error {
	if e == nil || e.tpl == nil {
		return errors.New("render: engine is nil")
	}
	if err := e.tpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("render: execute %s: %w", e.path, err)
	}
	return nil
}

// RenderPage renders one page's column assignment. currentPage is the output
// file name, exposed for navigation highlighting.
func (e *Engine) RenderPage(currentPage string, cols types.Columns, w io.Writer) error {
	return e.Render(PageContext(currentPage, cols), w)
}

// PageContext builds the per-page template variables. Each card is exposed
// as a mapping with "title" and "links".
func PageContext(currentPage string, cols types.Columns) pongo2.Context {
	return pongo2.Context{
		VarCurrentPage: currentPage,
		VarColumn1:     cardValues(cols.Column1),
		VarColumn2:     cardValues(cols.Column2),
	}
}

func cardValues(cards []types.Card) []map[string]any {
	out := make([]map[string]any, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.TemplateValue())
	}
	return out
}
