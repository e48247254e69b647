package title_test

import (
	"testing"

	"complainthub/backend/internal/models"
	"complainthub/backend/internal/title"

	"github.com/stretchr/testify/assert"
)

// TestForCount_Boundaries verifies the band edges: 0-3 Newcomer,
// 4-9 Active Contributor, 10+ Veteran Complainer.
func TestForCount_Boundaries(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "Newcomer"},
		{3, "Newcomer"},
		{4, "Active Contributor"},
		{9, "Active Contributor"},
		{10, "Veteran Complainer"},
		{11, "Veteran Complainer"},
		{100, "Veteran Complainer"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, title.DefaultBands.ForCount(tt.count), "count=%d", tt.count)
	}
}

// TestForCount_NilMaxIsUnbounded verifies that a band without an upper
// limit matches every count above its minimum.
func TestForCount_NilMaxIsUnbounded(t *testing.T) {
	max := 5
	bands := title.Bands{
		{Title: "Junior", MinComplaints: 0, MaxComplaints: &max},
		{Title: "Senior", MinComplaints: 6, MaxComplaints: nil},
	}

	assert.Equal(t, "Junior", bands.ForCount(5))
	assert.Equal(t, "Senior", bands.ForCount(6))
	assert.Equal(t, "Senior", bands.ForCount(1000))
}

// TestForCount_PicksHighestMatchingMin verifies that overlapping bands
// resolve to the one with the highest lower bound.
func TestForCount_PicksHighestMatchingMin(t *testing.T) {
	bands := title.Bands{
		{Title: "Broad", MinComplaints: 0, MaxComplaints: nil},
		{Title: "Narrow", MinComplaints: 10, MaxComplaints: nil},
	}

	assert.Equal(t, "Broad", bands.ForCount(9))
	assert.Equal(t, "Narrow", bands.ForCount(10))
}

// TestForCount_BelowLowestBandFallsBack covers the seeded data, whose
// Newcomer band starts at 1: a count of zero still maps to the lowest
// band instead of having no title.
func TestForCount_BelowLowestBandFallsBack(t *testing.T) {
	three := 3
	nine := 9
	bands := title.Bands{
		{Title: "Newcomer", MinComplaints: 1, MaxComplaints: &three},
		{Title: "Active Contributor", MinComplaints: 4, MaxComplaints: &nine},
		{Title: "Veteran Complainer", MinComplaints: 10},
	}

	assert.Equal(t, "Newcomer", bands.ForCount(0))
}

// TestForCount_EmptyBandsUseDefaults verifies the engine stays total
// before the reference table is seeded.
func TestForCount_EmptyBandsUseDefaults(t *testing.T) {
	var empty title.Bands
	assert.Equal(t, "Newcomer", empty.ForCount(0))
	assert.Equal(t, "Veteran Complainer", empty.ForCount(10))
}

// TestFromModels verifies the reference rows convert losslessly.
func TestFromModels(t *testing.T) {
	nine := 9
	rows := []models.UserTitle{
		{Title: "Active Contributor", MinComplaints: 4, MaxComplaints: &nine, Color: "#3b82f6", Description: "Active user with 4-9 complaints"},
		{Title: "Veteran Complainer", MinComplaints: 10, MaxComplaints: nil},
	}

	bands := title.FromModels(rows)
	assert.Len(t, bands, 2)
	assert.Equal(t, "Active Contributor", bands[0].Title)
	assert.Equal(t, 4, bands[0].MinComplaints)
	assert.Equal(t, 9, *bands[0].MaxComplaints)
	assert.Nil(t, bands[1].MaxComplaints)
	assert.Equal(t, "Active Contributor", bands.ForCount(7))
}
