// Package title derives a user's reputation title from their complaint
// count. The configurable band table (user_titles) is the single source of
// truth; DefaultBands mirrors the seeded data so the lookup stays total
// even before the table is populated.
package title

import "complainthub/backend/internal/models"

// Band is one count range mapped to a title label.
type Band struct {
	Title         string
	MinComplaints int
	MaxComplaints *int // nil means unbounded
	Color         string
	Description   string
}

// Bands is an ordered set of bands. Ordering is not required for
// correctness; ForCount always picks the band with the highest
// MinComplaints whose range contains the count.
type Bands []Band

// DefaultBands matches the seeded reference data: Newcomer for fewer than
// 4 complaints, Active Contributor for 4-9, Veteran Complainer for 10+.
var DefaultBands = Bands{
	{Title: "Newcomer", MinComplaints: 0, MaxComplaints: intPtr(3), Color: "#10b981", Description: "New to the platform with 1-3 complaints"},
	{Title: "Active Contributor", MinComplaints: 4, MaxComplaints: intPtr(9), Color: "#3b82f6", Description: "Active user with 4-9 complaints"},
	{Title: "Veteran Complainer", MinComplaints: 10, MaxComplaints: nil, Color: "#8b5cf6", Description: "Experienced user with 10+ complaints"},
}

// ForCount maps a complaint count to its title label. It is a pure
// function of the count, so titles self-correct after deletions. Counts
// below every band fall back to the lowest band's title.
func (b Bands) ForCount(count int) string {
	if len(b) == 0 {
		return DefaultBands.ForCount(count)
	}

	var best *Band
	for i := range b {
		band := &b[i]
		if count < band.MinComplaints {
			continue
		}
		if band.MaxComplaints != nil && count > *band.MaxComplaints {
			continue
		}
		if best == nil || band.MinComplaints > best.MinComplaints {
			best = band
		}
	}
	if best != nil {
		return best.Title
	}

	// Count is below every band (the seeded Newcomer band starts at 1).
	lowest := &b[0]
	for i := range b {
		if b[i].MinComplaints < lowest.MinComplaints {
			lowest = &b[i]
		}
	}
	return lowest.Title
}

// FromModels converts the persisted user_titles rows into Bands.
func FromModels(rows []models.UserTitle) Bands {
	bands := make(Bands, 0, len(rows))
	for _, r := range rows {
		bands = append(bands, Band{
			Title:         r.Title,
			MinComplaints: r.MinComplaints,
			MaxComplaints: r.MaxComplaints,
			Color:         r.Color,
			Description:   r.Description,
		})
	}
	return bands
}

func intPtr(v int) *int { return &v }
