package nav

import (
	"fmt"
	"strings"
	"time"

	"howmanyq-sitegen/internal/taxonomy"
)

const (
	// SchemaVersion is the navigation document schema version.
	SchemaVersion = "1.0"
	// GeneratorName identifies this generator in document metadata.
	GeneratorName = "HowManyQ Navigation Generator v1.0"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Aggregator groups discovered tools into categories and assembles the
// navigation document.
type Aggregator struct {
	tax *taxonomy.Taxonomy

	// Now supplies the wall clock for document timestamps. Injectable
	// so aggregation output is deterministic under test.
	Now func() time.Time

	// ScanID tags the run in document metadata; empty omits the field.
	ScanID string
}

// NewAggregator builds an aggregator over the given taxonomy, reading
// the real clock.
func NewAggregator(tax *taxonomy.Taxonomy) *Aggregator {
	return &Aggregator{tax: tax, Now: time.Now}
}

// Aggregate produces the navigation document for a tool sequence.
// Tools keep their discovery order, both in the flat list and within
// each category; the first tool seen in a category creates it.
// Timestamps come from the aggregator's clock at call time, not from
// file modification times.
func (a *Aggregator) Aggregate(tools []Tool) *Document {
	if tools == nil {
		tools = []Tool{} // an empty site still serializes "tools": []
	}
	categories := make(map[string]Category)

	for _, tool := range tools {
		cat, ok := categories[tool.Category]
		if !ok {
			cat = Category{
				Name:        titleCase(tool.Category),
				Description: fmt.Sprintf(a.tax.CategoryDescription, tool.Category),
				Icon:        a.tax.Icon(tool.Category),
			}
		}
		cat.Tools = append(cat.Tools, tool)
		categories[tool.Category] = cat
	}

	now := a.Now()

	return &Document{
		Tools:      tools,
		Categories: categories,
		Statistics: Statistics{
			TotalTools:      len(tools),
			TotalCategories: len(categories),
			LastUpdated:     now.Format(dateLayout),
			LastScan:        now.Format(dateTimeLayout),
		},
		Metadata: Metadata{
			Version:   SchemaVersion,
			Generator: GeneratorName,
			ScanTime:  now.Format(dateTimeLayout),
			ScanID:    a.ScanID,
		},
	}
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
