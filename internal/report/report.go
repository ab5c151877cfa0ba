// Package report renders the human-readable scan summary printed after
// a navigation run.
package report

import (
	"fmt"
	"io"
	"sort"

	"howmanyq-sitegen/internal/nav"
)

// Write renders the scan summary for a navigation document: the
// numbered tool listing, per-category counts, and sharing coverage.
func Write(w io.Writer, doc *nav.Document) {
	fmt.Fprintf(w, "Discovered tools: %d\n", doc.Statistics.TotalTools)
	fmt.Fprintln(w, "------------------------------")

	for i, tool := range doc.Tools {
		sharing := " "
		if tool.SharingEnabled {
			sharing = "+"
		}
		fmt.Fprintf(w, "%2d. [%s] %s (%s)\n", i+1, sharing, tool.Title, tool.Category)
		fmt.Fprintf(w, "    %s\n", tool.URL)
	}

	fmt.Fprintf(w, "\nCategories: %d\n", doc.Statistics.TotalCategories)
	for _, key := range categoryOrder(doc) {
		cat := doc.Categories[key]
		fmt.Fprintf(w, "  %s %s: %d tools\n", cat.Icon, cat.Name, len(cat.Tools))
	}

	sharingCount := 0
	for _, tool := range doc.Tools {
		if tool.SharingEnabled {
			sharingCount++
		}
	}
	fmt.Fprintf(w, "\nTools with sharing enabled: %d/%d\n", sharingCount, doc.Statistics.TotalTools)
	if doc.Statistics.TotalTools > 0 {
		coverage := float64(sharingCount) / float64(doc.Statistics.TotalTools) * 100
		fmt.Fprintf(w, "Sharing coverage: %.1f%%\n", coverage)
	}
}

// categoryOrder lists category keys in the order the tool sequence
// first reaches them, matching how aggregation creates categories.
// Keys a stale document carries without any backing tool are appended
// sorted so the listing stays deterministic.
func categoryOrder(doc *nav.Document) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, tool := range doc.Tools {
		if !seen[tool.Category] {
			seen[tool.Category] = true
			keys = append(keys, tool.Category)
		}
	}

	var orphans []string
	for key := range doc.Categories {
		if !seen[key] {
			orphans = append(orphans, key)
		}
	}
	sort.Strings(orphans)
	return append(keys, orphans...)
}
