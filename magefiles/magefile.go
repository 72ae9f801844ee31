//go:build mage

// Package main contains Mage build targets for the navigation site builder.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"
)

// starterFiles are written by Init when missing.
var starterFiles = map[string]string{
	"navigation.yml": `page_title: Navigation
index:
  - Search:
      - {title: Google, url: https://www.google.com}
      - {title: Bing, url: https://www.bing.com}
`,
	"template.html": `<!DOCTYPE html>
<html>
<head><title>{{ page_title }}</title></head>
<body>
<div class="column">
{% for card in content_col1 %}
  <h2>{{ card.title }}</h2>
  {% for link in card.links %}
  <a href="{{ link.url }}">{{ link.title }}</a>
  {% endfor %}
{% endfor %}
</div>
<div class="column">
{% for card in content_col2 %}
  <h2>{{ card.title }}</h2>
  {% for link in card.links %}
  <a href="{{ link.url }}">{{ link.title }}</a>
  {% endfor %}
{% endfor %}
</div>
</body>
</html>
`,
}

// Init writes a starter navigation.yml and template.html, leaving existing files alone.
func Init() error {
	for _, name := range []string{"navigation.yml", "template.html"} {
		if _, err := os.Stat(name); err == nil {
			fmt.Println("  exists:", name)
			continue
		}
		if err := os.WriteFile(name, []byte(starterFiles[name]), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		fmt.Println("  created:", name)
	}
	return nil
}

const (
	binDir  = "bin"
	binName = "navigation"
	cmdPkg  = "./cmd/navigation"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Site builds the website from navigation.yml in the current directory.
func Site() error {
	return sh.RunV("go", "run", cmdPkg)
}

// Inspect prints the column assignment of every page.
func Inspect() error {
	return sh.RunV("go", "run", cmdPkg, "inspect")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Stats prints project metrics: Go production/test LOC and the word count of
// Markdown and YAML files.
func Stats() error {
	var prodLines, testLines, docWords int
	err := walkProject(".", func(path string, data []byte) {
		switch {
		case strings.HasSuffix(path, "_test.go"):
			testLines += countLines(data)
		case filepath.Ext(path) == ".go":
			prodLines += countLines(data)
		case isDocFile(path):
			docWords += len(strings.Fields(string(data)))
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):          %d\n", docWords)
	return nil
}

// walkProject calls fn with the contents of every Go and documentation file
// under root. Hidden directories, underscore-prefixed directories and bin/
// are skipped, as the go tool does.
func walkProject(root string, fn func(path string, data []byte)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" && !isDocFile(path) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fn(path, data)
		return nil
	})
}

func isDocFile(path string) bool {
	switch filepath.Ext(path) {
	case ".md", ".yaml", ".yml":
		return true
	}
	return false
}

// countLines counts non-blank lines.
func countLines(data []byte) int {
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
