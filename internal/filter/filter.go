package filter

import (
	"time"

	"github.com/ballclub/team-results/internal/game"
)

// Range is an inclusive calendar date range.
type Range struct {
	Start time.Time
	End   time.Time
}

// Matches reports whether a record's date falls within the range.
func (r Range) Matches(rec game.Record) bool {
	return !rec.Date.Before(r.Start) && !rec.Date.After(r.End)
}

// Apply returns the records whose dates fall within the range, preserving
// their original order.
func (r Range) Apply(records []game.Record) []game.Record {
	filtered := make([]game.Record, 0, len(records))
	for _, rec := range records {
		if r.Matches(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
