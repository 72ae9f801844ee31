// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Slowist-Lee/navigation/pkg/types"
)

const navDoc = `page_title: Campus Navigation
logo: img/logo.png
index:
  - A:
      - {title: a1, url: https://a.example.com/1}
      - {title: a2, url: https://a.example.com/2}
      - {title: a3, url: https://a.example.com/3}
      - {title: a4, url: https://a.example.com/4}
      - {title: a5, url: https://a.example.com/5}
  - B: [l, l, l, l, l]
  - C: [l, l, l, l, l]
  - D: [l, l, l, l, l]
  - E: [l, l, l, l, l]
tools:
  - Editors:
      - {title: Overleaf, url: https://www.overleaf.com}
`

const siteTemplate = `<title>{{ page_title }}</title>
<p>{{ current_page }}</p>
<div class="col1">{% for card in content_col1 %}[{{ card.title }}]{% endfor %}</div>
<div class="col2">{% for card in content_col2 %}[{{ card.title }}]{% endfor %}</div>
`

// setupSite writes the navigation document and template into a temp dir and
// returns a config pointing at them.
func setupSite(t *testing.T, doc, tpl string) types.SiteConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := types.SiteConfig{
		Input:     filepath.Join(dir, "navigation.yml"),
		Template:  filepath.Join(dir, "template.html"),
		OutputDir: filepath.Join(dir, "public"),
	}
	if doc != "" {
		require.NoError(t, os.WriteFile(cfg.Input, []byte(doc), 0o644))
	}
	if tpl != "" {
		require.NoError(t, os.WriteFile(cfg.Template, []byte(tpl), 0o644))
	}
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func readPage(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBuild(t *testing.T) {
	cfg := setupSite(t, navDoc, siteTemplate)

	var log bytes.Buffer
	result, err := Build(cfg, &log, discardLogger())
	require.NoError(t, err)
	assert.False(t, result.MissingInput)

	require.Len(t, result.Pages, 2)
	assert.Equal(t, "index", result.Pages[0].Name)
	assert.Equal(t, 2, result.Pages[0].Column1)
	assert.Equal(t, 3, result.Pages[0].Column2)
	assert.Equal(t, "tools", result.Pages[1].Name)

	index := readPage(t, filepath.Join(cfg.OutputDir, "index.html"))
	assert.Contains(t, index, "<title>Campus Navigation</title>")
	assert.Contains(t, index, "<p>index.html</p>")
	assert.Contains(t, index, `<div class="col1">[A][B]</div>`)
	assert.Contains(t, index, `<div class="col2">[C][D][E]</div>`)

	tools := readPage(t, filepath.Join(cfg.OutputDir, "tools.html"))
	assert.Contains(t, tools, "<p>tools.html</p>")
	assert.Contains(t, tools, `<div class="col1">[Editors]</div>`)

	out := log.String()
	assert.Contains(t, out, "Starting to build the static site")
	assert.Contains(t, out, "Successfully read data source: "+cfg.Input)
	assert.Contains(t, out, "Successfully loaded template: "+cfg.Template)
	assert.Contains(t, out, "Processing page: index.html...")
	assert.Contains(t, out, "Processing page: tools.html...")
	assert.True(t, strings.HasSuffix(out, "Website build complete!\n"))
	assert.Less(t, strings.Index(out, "index.html"), strings.Index(out, "tools.html"), "pages must be processed in document order")
}

func TestBuildReservedKeysProduceNoFiles(t *testing.T) {
	cfg := setupSite(t, navDoc, siteTemplate)

	_, err := Build(cfg, &bytes.Buffer{}, discardLogger())
	require.NoError(t, err)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"index.html", "tools.html"}, names)
}

func TestBuildTemplateSeesReservedGlobalsOnly(t *testing.T) {
	tpl := `{{ logo }}|{% if tools %}tools{% endif %}|{% if index %}index{% endif %}`
	cfg := setupSite(t, navDoc, tpl)

	_, err := Build(cfg, &bytes.Buffer{}, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "img/logo.png||", readPage(t, filepath.Join(cfg.OutputDir, "index.html")))
	assert.Equal(t, "img/logo.png||", readPage(t, filepath.Join(cfg.OutputDir, "tools.html")))
}

func TestBuildMissingInput(t *testing.T) {
	cfg := setupSite(t, "", siteTemplate)

	var log bytes.Buffer
	result, err := Build(cfg, &log, discardLogger())
	require.NoError(t, err)
	assert.True(t, result.MissingInput)
	assert.Empty(t, result.Pages)
	assert.Contains(t, log.String(), "Error: Could not find the file "+cfg.Input+"!")

	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "no output should be produced")
}

func TestBuildFailures(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		tpl    string
		errMsg string
	}{
		{
			name:   "missing template",
			doc:    navDoc,
			errMsg: "load template",
		},
		{
			name:   "malformed document",
			doc:    "index: 42\n",
			tpl:    siteTemplate,
			errMsg: "malformed navigation document",
		},
		{
			name:   "template parse error",
			doc:    navDoc,
			tpl:    `{{ current_page|nosuchfilter }}`,
			errMsg: "template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := setupSite(t, tt.doc, tt.tpl)
			_, err := Build(cfg, &bytes.Buffer{}, discardLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestBuildKeepsPagesWrittenBeforeFailure(t *testing.T) {
	// tools.html includes itself by name, which does not exist next to the template.
	tpl := `{% if current_page == "tools.html" %}{% include current_page %}{% endif %}ok`
	cfg := setupSite(t, navDoc, tpl)

	result, err := Build(cfg, &bytes.Buffer{}, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tools.html")

	require.Len(t, result.Pages, 1)
	assert.Equal(t, "ok", readPage(t, filepath.Join(cfg.OutputDir, "index.html")))
	_, statErr := os.Stat(filepath.Join(cfg.OutputDir, "tools.html"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildCustomLayout(t *testing.T) {
	cfg := setupSite(t, navDoc, siteTemplate)
	cfg.Layout = types.LayoutConfig{LineLimit: 100}

	result, err := Build(cfg, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Pages[0].Column1)
	assert.Equal(t, 0, result.Pages[0].Column2)
}

func TestBuildDefaultOutputDir(t *testing.T) {
	cfg := setupSite(t, navDoc, siteTemplate)
	chdir(t, filepath.Dir(cfg.Input))
	cfg = types.SiteConfig{}

	var log bytes.Buffer
	result, err := Build(cfg, &log, discardLogger())
	require.NoError(t, err)

	assert.Contains(t, log.String(), "Successfully saved to ./index.html.")
	assert.Contains(t, log.String(), "Successfully saved to ./tools.html.")
	assert.Equal(t, "./index.html", result.Pages[0].Output)
	assert.FileExists(t, "index.html")
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{dir: ".", want: "./index.html"},
		{dir: "public", want: "public/index.html"},
		{dir: "public/", want: "public/index.html"},
		{dir: "/srv/www", want: "/srv/www/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), outputPath(filepath.FromSlash(tt.dir), "index.html"))
		})
	}
}

func TestPlan(t *testing.T) {
	cfg := setupSite(t, navDoc, "")

	plans, err := Plan(cfg)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, "index", plans[0].Page)
	assert.Equal(t, "index.html", plans[0].Output)
	require.Len(t, plans[0].Columns.Column1, 2)
	assert.Equal(t, "A", plans[0].Columns.Column1[0].Title)
	assert.Len(t, plans[0].Columns.Column2, 3)
}

func TestPlanMissingInput(t *testing.T) {
	cfg := setupSite(t, "", "")
	_, err := Plan(cfg)
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
