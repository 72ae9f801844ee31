// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// Link is one entry of a category card. Its shape (by convention a mapping
// with a title and a URL) is owned by the template; the builder passes it
// through unchanged.
type Link = any

// Card is a titled group of links rendered as one visual block.
type Card struct {
	Title string `json:"title" yaml:"title"`
	Links []Link `json:"links" yaml:"links"`
}

// Weight returns the number of lines the card occupies: its header plus one
// line per link.
func (c Card) Weight(headerWeight int) int {
	return headerWeight + len(c.Links)
}

// TemplateValue exposes the card to templates as {title, links}.
func (c Card) TemplateValue() map[string]any {
	links := c.Links
	if links == nil {
		links = []Link{}
	}
	return map[string]any{
		"title": c.Title,
		"links": links,
	}
}

// Page is a top-level document entry that produces one HTML file.
type Page struct {
	Name  string `json:"name" yaml:"name"`
	Cards []Card `json:"cards" yaml:"cards"`
}

// OutputName returns the file name the page renders to.
func (p Page) OutputName() string {
	return p.Name + ".html"
}

// Document is a parsed navigation file: global template values plus pages in
// document order.
type Document struct {
	Globals map[string]any `json:"globals" yaml:"globals"`
	Pages   []Page         `json:"pages" yaml:"pages"`
}

// Columns is the two-way partition of a page's cards.
type Columns struct {
	Column1 []Card `json:"column1" yaml:"column1"`
	Column2 []Card `json:"column2" yaml:"column2"`
}

// ReservedKeys is the set of top-level keys holding global template data
// rather than pages.
type ReservedKeys map[string]struct{}

// NewReservedKeys builds a set from keys.
func NewReservedKeys(keys ...string) ReservedKeys {
	set := make(ReservedKeys, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// DefaultReservedKeys returns the keys the stock template reads as globals.
func DefaultReservedKeys() ReservedKeys {
	return NewReservedKeys(
		"page_title",
		"column_title",
		"left_column",
		"google",
		"zjuers",
		"logo",
		"banner",
	)
}

// Contains reports whether key is reserved.
func (r ReservedKeys) Contains(key string) bool {
	_, ok := r[key]
	return ok
}

// Keys returns the reserved keys in sorted order.
func (r ReservedKeys) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
