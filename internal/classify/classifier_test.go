package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"howmanyq-sitegen/internal/taxonomy"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   []string
	}{
		{"underscores", "christmas_countdown", []string{"christmas", "countdown"}},
		{"hyphens", "how-many-steps", []string{"how", "many", "steps"}},
		{"mixed case", "How_Many_Cups_In_A_Gallon", []string{"how", "many", "cups", "in", "a", "gallon"}},
		{"duplicates preserved", "cups_to_cups", []string{"cups", "to", "cups"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.folder))
		})
	}
}

func TestCategorize(t *testing.T) {
	c := NewClassifier(taxonomy.Default())

	tests := []struct {
		folder string
		want   string
	}{
		// christmas is a time marker
		{"christmas_countdown", "time"},
		// cups matches volume; gallon (singular) does not match the
		// gallons marker, so the score stays 1 and volume still wins
		{"how_many_cups_in_a_gallon", "volume"},
		// no marker matches at all falls back to the default
		{"gallon_counter", "measurement"},
		{"random_thing", "measurement"},
		// ounces is declared in both volume and weight; volume is
		// declared first and takes the tie
		{"ounces_converter", "volume"},
		// two weight markers beat one volume marker
		{"pounds_and_kilograms_in_ounces", "weight"},
		{"steps_per_day", "measurement"},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			got := c.Categorize(ExtractKeywords(tt.folder))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorizeTieBreakDeclarationOrder(t *testing.T) {
	tax := &taxonomy.Taxonomy{
		Categories: []taxonomy.Category{
			{Key: "first", Markers: []string{"alpha", "beta"}},
			{Key: "second", Markers: []string{"gamma", "delta"}},
		},
		DefaultCategory: "second",
	}
	c := NewClassifier(tax)

	// One keyword from each category: equal scores, first declared wins.
	assert.Equal(t, "first", c.Categorize([]string{"alpha", "gamma"}))

	// Same folder with the declaration order flipped flips the winner.
	flipped := &taxonomy.Taxonomy{
		Categories: []taxonomy.Category{
			{Key: "second", Markers: []string{"gamma", "delta"}},
			{Key: "first", Markers: []string{"alpha", "beta"}},
		},
		DefaultCategory: "first",
	}
	assert.Equal(t, "second", NewClassifier(flipped).Categorize([]string{"alpha", "gamma"}))
}

func TestCategorizeNeverEmpty(t *testing.T) {
	c := NewClassifier(taxonomy.Default())

	for _, keywords := range [][]string{nil, {}, {""}, {"zzz"}, {"cups"}} {
		got := c.Categorize(keywords)
		assert.NotEmpty(t, got)
	}
}
