// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout distributes a page's category cards over two columns of
// roughly equal visual height.
package layout

import "github.com/Slowist-Lee/navigation/pkg/types"

// Balancer splits cards into two columns using a line-weight heuristic: a
// card weighs HeaderWeight plus one line per link, and the first column takes
// cards until the next one would push it past LineLimit.
type Balancer struct {
	HeaderWeight int
	LineLimit    int
}

// DefaultBalancer returns a Balancer with the stock header weight (3) and
// line limit (23).
func DefaultBalancer() Balancer {
	return Balancer{
		HeaderWeight: types.DefaultHeaderWeight,
		LineLimit:    types.DefaultLineLimit,
	}
}

// NewBalancer builds a Balancer from layout configuration. Non-positive
// values fall back to the defaults.
func NewBalancer(cfg types.LayoutConfig) Balancer {
	b := DefaultBalancer()
	if cfg.HeaderWeight > 0 {
		b.HeaderWeight = cfg.HeaderWeight
	}
	if cfg.LineLimit > 0 {
		b.LineLimit = cfg.LineLimit
	}
	return b
}

// Split partitions cards into two columns. Column1 is a prefix of cards and
// Column2 the remaining suffix, so concatenating them yields the input.
//
// A card heavier than the limit still goes to Column1 when Column1 is empty.
// Once a card overflows, every later card goes to Column2 without further
// weighing; Column2 is never rebalanced.
func (b Balancer) Split(cards []types.Card) types.Columns {
	cols := types.Columns{
		Column1: make([]types.Card, 0, len(cards)),
		Column2: make([]types.Card, 0),
	}

	lines := 0
	full := false
	for _, card := range cards {
		if full {
			cols.Column2 = append(cols.Column2, card)
			continue
		}

		weight := card.Weight(b.HeaderWeight)
		if lines+weight > b.LineLimit && lines > 0 {
			full = true
			cols.Column2 = append(cols.Column2, card)
			continue
		}
		cols.Column1 = append(cols.Column1, card)
		lines += weight
	}
	return cols
}

// Split partitions cards with the default balancer.
func Split(cards []types.Card) types.Columns {
	return DefaultBalancer().Split(cards)
}
