// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/width"

	"github.com/Slowist-Lee/navigation/internal/site"
	"github.com/Slowist-Lee/navigation/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how each page's cards are split into columns",
	Long: `Inspect loads navigation.yml and prints the column assignment of every
page without rendering the template or writing any files. Use it to check
how a change to a page affects its layout.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := siteConfig()
	if err != nil {
		return err
	}
	plans, err := site.Plan(cfg)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatInspectOutput(cmd.OutOrStdout(), plans, cfg.Layout.HeaderWeight, jsonOutput)
}

func formatInspectOutput(w io.Writer, plans []site.PagePlan, headerWeight int, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plans)
	}

	if len(plans) == 0 {
		fmt.Fprintln(w, "No pages found.")
		return nil
	}

	for _, p := range plans {
		fmt.Fprintf(w, "%s\n", p.Output)
		fmt.Fprintf(w, "  %-6s  %s  %s\n", "Column", fitColumn("Category", titleWidth), "Weight")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 56))
		printColumn(w, 1, p.Columns.Column1, headerWeight)
		printColumn(w, 2, p.Columns.Column2, headerWeight)
		fmt.Fprintf(w, "  column 1: %d lines, column 2: %d lines\n\n",
			totalWeight(p.Columns.Column1, headerWeight), totalWeight(p.Columns.Column2, headerWeight))
	}
	return nil
}

const titleWidth = 40

func printColumn(w io.Writer, n int, cards []types.Card, headerWeight int) {
	for _, c := range cards {
		fmt.Fprintf(w, "  %-6d  %s  %d\n", n, fitColumn(c.Title, titleWidth), c.Weight(headerWeight))
	}
}

// fitColumn truncates s to at most cells terminal columns, marking the cut
// with "...", and pads the result with spaces to exactly cells columns.
func fitColumn(s string, cells int) string {
	if displayWidth(s) > cells {
		limit := cells - 3
		used := 0
		var b strings.Builder
		for _, r := range s {
			rw := runeWidth(r)
			if used+rw > limit {
				break
			}
			b.WriteRune(r)
			used += rw
		}
		s = b.String() + "..."
	}
	return s + strings.Repeat(" ", max(cells-displayWidth(s), 0))
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

// runeWidth is 2 for East Asian wide and fullwidth runes, 1 otherwise.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func totalWeight(cards []types.Card, headerWeight int) int {
	total := 0
	for _, c := range cards {
		total += c.Weight(headerWeight)
	}
	return total
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output the column assignment as JSON")

	rootCmd.AddCommand(inspectCmd)
}
