// Package taxonomy holds the fixed classification data for the site:
// category marker sets, icons, metadata templates, and the folder
// exclusion list. The data is passed into the classifier and
// synthesizer at construction time so tests can substitute their own
// tables without touching global state.
package taxonomy

// Category is one bucket of the topical taxonomy. Declaration order in
// Taxonomy.Categories is significant: it is the tie-break rule when two
// categories score equally.
type Category struct {
	Key     string
	Markers []string
}

// Taxonomy is the immutable classification configuration.
type Taxonomy struct {
	// Categories in declaration order. Earlier wins score ties.
	Categories []Category

	// DefaultCategory is used when no category scores above zero.
	DefaultCategory string

	// Icons maps category keys to a display glyph.
	Icons map[string]string

	// DefaultIcon is used for category keys absent from Icons.
	DefaultIcon string

	// Descriptions maps category keys to description templates. The
	// template receives the tool title.
	Descriptions map[string]string

	// DescriptionFallback is the template for unmapped categories.
	DescriptionFallback string

	// ShareTexts maps category keys to share-text templates. This map
	// is independent of Descriptions: the two sets are not guaranteed
	// to share keys, and each falls back on its own.
	ShareTexts map[string]string

	// ShareTextFallback is the share-text template for unmapped
	// categories.
	ShareTextFallback string

	// CategoryDescription is the template for a category's own
	// description; it receives the category key.
	CategoryDescription string

	// MinorWords are kept lower-case during title casing, even when
	// leading.
	MinorWords map[string]bool

	// ExcludedEntries are site-root entries that are never tools.
	ExcludedEntries map[string]bool

	// SharingMarkers are literal substrings whose presence in a page
	// source indicates the sharing feature is wired up.
	SharingMarkers []string
}

// Default returns the production taxonomy for the HowManyQ site.
func Default() *Taxonomy {
	return &Taxonomy{
		Categories: []Category{
			{Key: "time", Markers: []string{"christmas", "days", "weeks", "months", "hours", "minutes", "seconds"}},
			{Key: "volume", Markers: []string{"ounces", "cups", "gallons", "liters", "pints", "quarts", "ml", "tbsp", "tsp"}},
			{Key: "weight", Markers: []string{"pounds", "ounces", "grams", "kilograms", "tons", "calories"}},
			{Key: "length", Markers: []string{"feet", "inches", "meters", "miles", "yards", "centimeters", "millimeters"}},
			{Key: "measurement", Markers: []string{"steps", "bmi", "temperature", "fitness"}},
		},
		DefaultCategory: "measurement",

		Icons: map[string]string{
			"time":        "⏰",
			"volume":      "🧪",
			"weight":      "⚖️",
			"length":      "📏",
			"measurement": "📊",
			"calculator":  "🧮",
			"countdown":   "⏳",
			"conversions": "🔄",
		},
		DefaultIcon: "🧮",

		Descriptions: map[string]string{
			"time":        "Calculate and convert time-related measurements from your %s query",
			"volume":      "Convert between different volume units based on your %s question",
			"weight":      "Convert between different weight and mass units for your %s needs",
			"length":      "Convert between different length and distance units from your %s",
			"measurement": "Get accurate measurements and calculations for your %s question",
			"calculator":  "Quick and accurate calculations for your %s query",
			"countdown":   "Real-time countdown and time calculation for your %s",
			"conversions": "Unit conversion tool for your %s measurements",
		},
		DescriptionFallback: "Find accurate answers to your %s question",

		ShareTexts: map[string]string{
			"time":        "Check out this %s calculator! 🕐",
			"volume":      "Convert volumes easily with this %s tool! 🧪",
			"weight":      "Calculate weights with this %s calculator! ⚖️",
			"length":      "Measure distances with this %s tool! 📏",
			"measurement": "Get accurate measurements with this %s calculator! 📊",
		},
		ShareTextFallback: "Try this amazing %s calculator! 🧮",

		CategoryDescription: "Tools for %s calculations and conversions",

		MinorWords: map[string]bool{
			"a": true, "an": true, "the": true, "of": true, "in": true,
			"to": true, "for": true, "with": true, "by": true,
		},

		ExcludedEntries: map[string]bool{
			".DS_Store":                       true,
			"导航首页开发计划.md":                     true,
			"高级灰设计改造计划.md":                    true,
			"create_folders.py":               true,
			"navigation_development_plan.md":  true,
			"questions.md":                    true,
			"todo.md":                         true,
			"todo_list.md":                    true,
		},

		SharingMarkers: []string{
			"share-utils.js",
			"HowManyQShare",
			"shareCountdown",
			"shareOnTwitter",
			"shareOnFacebook",
			"copyResults",
			`class="share-section"`,
			`id="shareButtons"`,
		},
	}
}

// Icon returns the glyph for a category key, or the default icon when
// the key is unmapped.
func (t *Taxonomy) Icon(category string) string {
	if icon, ok := t.Icons[category]; ok {
		return icon
	}
	return t.DefaultIcon
}
