package classify

import (
	"fmt"
	"strings"
	"unicode"

	"howmanyq-sitegen/internal/taxonomy"
)

// Synthesizer derives display metadata (title, description, share
// text, id) from a folder name and its category.
type Synthesizer struct {
	tax *taxonomy.Taxonomy
}

// NewSynthesizer builds a synthesizer over the given taxonomy.
func NewSynthesizer(tax *taxonomy.Taxonomy) *Synthesizer {
	return &Synthesizer{tax: tax}
}

// Title generates a human-readable title from a folder name.
// Underscores and hyphens become spaces; every word is capitalized
// except the minor words, which stay lower-case even in leading
// position (so "how_many_days" titles as "How Many Days" but
// "a_day_counter" titles as "a Day Counter" — historical behavior,
// kept as-is).
func (s *Synthesizer) Title(folderName string) string {
	cleaned := strings.ReplaceAll(folderName, "_", " ")
	cleaned = strings.ReplaceAll(cleaned, "-", " ")

	words := strings.Fields(cleaned)
	for i, word := range words {
		if s.tax.MinorWords[strings.ToLower(word)] {
			words[i] = strings.ToLower(word)
		} else {
			words[i] = capitalize(word)
		}
	}
	return strings.Join(words, " ")
}

// Description generates a sentence for the tool from its title and
// category, using the category's description template or the generic
// fallback.
func (s *Synthesizer) Description(title, category string) string {
	tmpl, ok := s.tax.Descriptions[category]
	if !ok {
		tmpl = s.tax.DescriptionFallback
	}
	return fmt.Sprintf(tmpl, title)
}

// ShareText generates the promotional share sentence. The share
// template set is independent of the description set: a category
// missing here uses the share fallback regardless of whether it has a
// description template.
func (s *Synthesizer) ShareText(folderName, title, category string) string {
	tmpl, ok := s.tax.ShareTexts[category]
	if !ok {
		tmpl = s.tax.ShareTextFallback
	}
	return fmt.Sprintf(tmpl, title)
}

// ToolID derives the tool's identifier from its folder name: all
// non-alphanumeric characters stripped, lower-cased. Collisions across
// a run indicate bad source data and are not handled here.
func (s *Synthesizer) ToolID(folderName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(folderName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest,
// matching the original title casing (acronyms flatten: "BMI" → "Bmi").
func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
