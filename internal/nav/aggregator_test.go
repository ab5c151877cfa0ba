package nav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"howmanyq-sitegen/internal/taxonomy"
)

func fixedClock() time.Time {
	return time.Date(2025, 11, 6, 20, 12, 18, 0, time.UTC)
}

func sampleTools() []Tool {
	return []Tool{
		{ID: "christmascountdown", Title: "Christmas Countdown", Category: "time", FolderName: "christmas_countdown"},
		{ID: "howmanycupsinagallon", Title: "How Many Cups in a Gallon", Category: "volume", FolderName: "how_many_cups_in_a_gallon"},
		{ID: "howmanydaysuntilsummer", Title: "How Many Days Until Summer", Category: "time", FolderName: "how_many_days_until_summer"},
	}
}

func newTestAggregator() *Aggregator {
	a := NewAggregator(taxonomy.Default())
	a.Now = fixedClock
	return a
}

func TestAggregate(t *testing.T) {
	doc := newTestAggregator().Aggregate(sampleTools())

	assert.Equal(t, 3, doc.Statistics.TotalTools)
	assert.Equal(t, 2, doc.Statistics.TotalCategories)
	assert.Equal(t, "2025-11-06", doc.Statistics.LastUpdated)
	assert.Equal(t, "2025-11-06 20:12:18", doc.Statistics.LastScan)
	assert.Equal(t, "2025-11-06 20:12:18", doc.Metadata.ScanTime)
	assert.Equal(t, SchemaVersion, doc.Metadata.Version)
	assert.Equal(t, GeneratorName, doc.Metadata.Generator)

	// Flat list keeps discovery order.
	require.Len(t, doc.Tools, 3)
	assert.Equal(t, "christmascountdown", doc.Tools[0].ID)

	// Discovery order is preserved within a category.
	timeCat, ok := doc.Categories["time"]
	require.True(t, ok)
	assert.Equal(t, "Time", timeCat.Name)
	assert.Equal(t, "Tools for time calculations and conversions", timeCat.Description)
	assert.Equal(t, "⏰", timeCat.Icon)
	require.Len(t, timeCat.Tools, 2)
	assert.Equal(t, "christmascountdown", timeCat.Tools[0].ID)
	assert.Equal(t, "howmanydaysuntilsummer", timeCat.Tools[1].ID)

	// A category with zero tools never appears.
	_, hasWeight := doc.Categories["weight"]
	assert.False(t, hasWeight)
}

func TestAggregateEmpty(t *testing.T) {
	doc := newTestAggregator().Aggregate(nil)

	assert.NotNil(t, doc.Tools)
	assert.Empty(t, doc.Tools)
	assert.Equal(t, 0, doc.Statistics.TotalTools)
	assert.Equal(t, 0, doc.Statistics.TotalCategories)
}

func TestAggregateScanID(t *testing.T) {
	a := newTestAggregator()
	a.ScanID = "run-42"

	assert.Equal(t, "run-42", a.Aggregate(nil).Metadata.ScanID)
}
