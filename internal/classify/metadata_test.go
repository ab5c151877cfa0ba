package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"howmanyq-sitegen/internal/taxonomy"
)

func TestTitle(t *testing.T) {
	s := NewSynthesizer(taxonomy.Default())

	tests := []struct {
		folder string
		want   string
	}{
		{"christmas_countdown", "Christmas Countdown"},
		{"how_many_cups_in_a_gallon", "How Many Cups in a Gallon"},
		{"how-many-days-until-christmas", "How Many Days Until Christmas"},
		// A leading minor word stays lower-case. Historical behavior,
		// reproduced deliberately.
		{"the_best_calculator", "the Best Calculator"},
		// Acronyms flatten under per-word capitalization.
		{"bmi_calculator", "Bmi Calculator"},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Title(tt.folder))
		})
	}
}

func TestTitleIdempotent(t *testing.T) {
	s := NewSynthesizer(taxonomy.Default())

	for _, folder := range []string{"how_many_cups_in_a_gallon", "christmas_countdown", "the_best_calculator"} {
		once := s.Title(folder)
		assert.Equal(t, once, s.Title(once))
	}
}

func TestDescription(t *testing.T) {
	s := NewSynthesizer(taxonomy.Default())

	assert.Equal(t,
		"Calculate and convert time-related measurements from your Christmas Countdown query",
		s.Description("Christmas Countdown", "time"))

	// Unmapped category uses the generic fallback.
	assert.Equal(t,
		"Find accurate answers to your Mystery Tool question",
		s.Description("Mystery Tool", "unmapped"))
}

func TestShareText(t *testing.T) {
	s := NewSynthesizer(taxonomy.Default())

	assert.Equal(t,
		"Check out this Christmas Countdown calculator! 🕐",
		s.ShareText("christmas_countdown", "Christmas Countdown", "time"))

	// countdown has a description template but no share template; the
	// two sets fall back independently.
	assert.Equal(t,
		"Try this amazing New Year Countdown calculator! 🧮",
		s.ShareText("new_year_countdown", "New Year Countdown", "countdown"))
}

func TestToolID(t *testing.T) {
	s := NewSynthesizer(taxonomy.Default())

	tests := []struct {
		folder string
		want   string
	}{
		{"christmas_countdown", "christmascountdown"},
		{"How-Many-Days", "howmanydays"},
		{"cups2gallons", "cups2gallons"},
		// Non-ASCII letters are stripped along with punctuation.
		{"café_counter", "cafcounter"},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			got := s.ToolID(tt.folder)
			assert.Equal(t, tt.want, got)
			// Applying the derivation to its own output is a no-op.
			assert.Equal(t, got, s.ToolID(got))
		})
	}
}

func TestToolIDCollisionFree(t *testing.T) {
	s := NewSynthesizer(taxonomy.Default())

	folders := []string{
		"christmas_countdown",
		"how_many_cups_in_a_gallon",
		"how_many_steps_in_a_mile",
		"bmi_calculator",
	}

	seen := make(map[string]bool)
	for _, folder := range folders {
		id := s.ToolID(folder)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}
