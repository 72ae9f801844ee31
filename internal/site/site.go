// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site builds the navigation website: it loads the navigation
// document, balances each page's cards over two columns and renders one HTML
// file per page. Pages are processed sequentially in document order. A failure
// aborts the build and leaves already written pages in place.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/Slowist-Lee/navigation/internal/layout"
	"github.com/Slowist-Lee/navigation/internal/navigation"
	"github.com/Slowist-Lee/navigation/internal/render"
	"github.com/Slowist-Lee/navigation/pkg/types"
)

// PageResult describes one rendered page.
type PageResult struct {
	Name    string `json:"name"`
	Output  string `json:"output"`
	Column1 int    `json:"column1"`
	Column2 int    `json:"column2"`
}

// Result holds the outcome of a build.
type Result struct {
	// MissingInput is set when the navigation document does not exist; no
	// pages were written.
	MissingInput bool
	Pages        []PageResult
}

// PagePlan is the column assignment computed for a page.
type PagePlan struct {
	Page    string        `json:"page"`
	Output  string        `json:"output"`
	Columns types.Columns `json:"columns"`
}

// Build runs a full site build, printing progress to w. A missing navigation
// document is reported on w and returns a Result with MissingInput set and a
// nil error. Any other failure is returned.
func Build(cfg types.SiteConfig, w io.Writer, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.WithDefaults()

	fmt.Fprintln(w, "Starting to build the static site (with auto-columns) ...")

	doc, err := navigation.Load(cfg.Input, cfg.Reserved())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(w, "Error: Could not find the file %s!\n", cfg.Input)
			logger.Debug("navigation document missing", "input", cfg.Input, "error", err)
			return Result{MissingInput: true}, nil
		}
		return Result{}, err
	}
	fmt.Fprintf(w, "Successfully read data source: %s\n", cfg.Input)
	logger.Debug("navigation document loaded",
		"input", cfg.Input,
		"pages", len(doc.Pages),
		"globals", len(doc.Globals))

	engine, err := render.New(cfg.Template, render.WithGlobals(doc.Globals))
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "Successfully loaded template: %s\n", cfg.Template)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}

	balancer := layout.NewBalancer(cfg.Layout)
	var result Result
	for _, page := range doc.Pages {
		pr, err := buildPage(engine, balancer, page, cfg.OutputDir, w, logger)
		if err != nil {
			return result, err
		}
		result.Pages = append(result.Pages, pr)
	}

	fmt.Fprintln(w, "Website build complete!")
	return result, nil
}

func buildPage(engine *render.Engine, balancer layout.Balancer, page types.Page, outDir string, w io.Writer, logger *slog.Logger) (PageResult, error) {
	name := page.OutputName()
	fmt.Fprintf(w, "Processing page: %s...\n", name)

	cols := balancer.Split(page.Cards)
	fmt.Fprintln(w, " Content split into two columns.")

	var buf bytes.Buffer
	if err := engine.RenderPage(name, cols, &buf); err != nil {
		return PageResult{}, fmt.Errorf("rendering %s: %w", name, err)
	}

	outPath := outputPath(outDir, name)
	if err := atomic.WriteFile(outPath, &buf); err != nil {
		return PageResult{}, fmt.Errorf("writing %s: %w", outPath, err)
	}
	// atomic writes through a private temp file.
	if err := os.Chmod(outPath, 0o644); err != nil {
		return PageResult{}, fmt.Errorf("setting mode on %s: %w", outPath, err)
	}
	fmt.Fprintf(w, "Successfully saved to %s.\n", outPath)

	logger.Debug("page rendered",
		"page", page.Name,
		"output", outPath,
		"column1", len(cols.Column1),
		"column2", len(cols.Column2))

	return PageResult{
		Name:    page.Name,
		Output:  outPath,
		Column1: len(cols.Column1),
		Column2: len(cols.Column2),
	}, nil
}

// outputPath joins dir and name without cleaning, so the default output
// directory "." reports pages as ./<name>.html.
func outputPath(dir, name string) string {
	if dir == "" || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// Plan loads the navigation document and returns the column assignment of
// every page without rendering anything.
func Plan(cfg types.SiteConfig) ([]PagePlan, error) {
	cfg = cfg.WithDefaults()

	doc, err := navigation.Load(cfg.Input, cfg.Reserved())
	if err != nil {
		return nil, err
	}

	balancer := layout.NewBalancer(cfg.Layout)
	plans := make([]PagePlan, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		plans = append(plans, PagePlan{
			Page:    page.Name,
			Output:  page.OutputName(),
			Columns: balancer.Split(page.Cards),
		})
	}
	return plans, nil
}
