// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package navigation loads the site's navigation document. The document is a
// YAML mapping whose reserved keys carry global template values and whose
// remaining keys each define a page: a sequence of single-entry mappings from
// a category title to its links.
//
//	page_title: Campus Navigation
//	home:
//	  - Search:
//	      - {title: Google, url: https://www.google.com}
//	  - Mail:
//	      - {title: Webmail, url: https://mail.example.edu}
//
// Page and card order follow the document.
package navigation

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/Slowist-Lee/navigation/pkg/types"
)

// ErrMalformed reports a document whose shape does not match the navigation
// model.
var ErrMalformed = errors.New("malformed navigation document")

// Load reads and parses the navigation document at path. A missing file
// yields an error satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string, reserved types.ReservedKeys) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading navigation document: %w", err)
	}
	doc, err := Parse(data, reserved)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a navigation document. Keys in reserved become globals; every
// other top-level key becomes a page, kept in document order.
func Parse(data []byte, reserved types.ReservedKeys) (*types.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	doc := &types.Document{Globals: map[string]any{}}

	// An empty file unmarshals to a zero node.
	if root.Kind == 0 {
		return doc, nil
	}

	top := resolve(&root)
	if top.Kind == yaml.DocumentNode {
		if len(top.Content) == 0 {
			return doc, nil
		}
		top = resolve(top.Content[0])
	}
	if isNull(top) {
		return doc, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping (line %d)", ErrMalformed, top.Line)
	}

	// A repeated key keeps its first position and its last value, as a
	// YAML mapping load does.
	pageIndex := make(map[string]int)
	seen := make(map[string]bool, len(top.Content)/2)
	for i := 0; i+1 < len(top.Content); i += 2 {
		keyNode, valNode := top.Content[i], top.Content[i+1]
		key := keyNode.Value
		if seen[key] {
			slog.Warn("duplicate navigation key, keeping last value", "key", key, "line", keyNode.Line)
		}
		seen[key] = true

		if reserved.Contains(key) {
			var v any
			if err := valNode.Decode(&v); err != nil {
				return nil, fmt.Errorf("decoding %q: %w", key, err)
			}
			doc.Globals[key] = v
			continue
		}

		cards, err := parseCards(key, resolve(valNode))
		if err != nil {
			return nil, err
		}
		if idx, ok := pageIndex[key]; ok {
			doc.Pages[idx].Cards = cards
			continue
		}
		pageIndex[key] = len(doc.Pages)
		doc.Pages = append(doc.Pages, types.Page{Name: key, Cards: cards})
	}
	return doc, nil
}

func parseCards(page string, n *yaml.Node) ([]types.Card, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: page %q must be a sequence of category cards (line %d)", ErrMalformed, page, n.Line)
	}

	cards := make([]types.Card, 0, len(n.Content))
	for _, item := range n.Content {
		card, err := parseCard(page, resolve(item))
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func parseCard(page string, n *yaml.Node) (types.Card, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return types.Card{}, fmt.Errorf("%w: page %q: category card must be a single-entry mapping (line %d)", ErrMalformed, page, n.Line)
	}

	card := types.Card{Title: n.Content[0].Value}
	links := resolve(n.Content[1])
	if isNull(links) {
		return card, nil
	}
	if links.Kind != yaml.SequenceNode {
		return types.Card{}, fmt.Errorf("%w: page %q: category %q must hold a sequence of links (line %d)", ErrMalformed, page, card.Title, links.Line)
	}

	card.Links = make([]types.Link, 0, len(links.Content))
	for _, ln := range links.Content {
		var v any
		if err := ln.Decode(&v); err != nil {
			return types.Card{}, fmt.Errorf("page %q: category %q: decoding link: %w", page, card.Title, err)
		}
		card.Links = append(card.Links, v)
	}
	return card, nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
