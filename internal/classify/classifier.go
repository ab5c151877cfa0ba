// Package classify derives a tool's category and display metadata from
// its folder name.
package classify

import (
	"howmanyq-sitegen/internal/taxonomy"
)

// Classifier assigns folder keyword sequences to taxonomy categories.
type Classifier struct {
	tax     *taxonomy.Taxonomy
	markers map[string]map[string]bool
}

// NewClassifier builds a classifier over the given taxonomy.
func NewClassifier(tax *taxonomy.Taxonomy) *Classifier {
	markers := make(map[string]map[string]bool, len(tax.Categories))
	for _, cat := range tax.Categories {
		set := make(map[string]bool, len(cat.Markers))
		for _, m := range cat.Markers {
			set[m] = true
		}
		markers[cat.Key] = set
	}
	return &Classifier{tax: tax, markers: markers}
}

// Categorize scores the keyword sequence against every category's
// marker set and returns the best match. Matching is exact-string
// membership: singular/plural variants do not match their counterparts.
// Ties go to the earlier-declared category, and a zero score everywhere
// falls back to the taxonomy's default. Always returns a valid
// category key.
func (c *Classifier) Categorize(keywords []string) string {
	best := ""
	bestScore := 0

	for _, cat := range c.tax.Categories {
		score := 0
		set := c.markers[cat.Key]
		for _, kw := range keywords {
			if set[kw] {
				score++
			}
		}
		// Strict > keeps the first-declared winner on ties.
		if score > bestScore {
			best = cat.Key
			bestScore = score
		}
	}

	if bestScore == 0 {
		return c.tax.DefaultCategory
	}
	return best
}
